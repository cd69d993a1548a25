package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/slidekit/pkg/errors"
	"github.com/matzehuels/slidekit/pkg/io"
)

func (s *Server) requireStore(w http.ResponseWriter) bool {
	if s.store == nil {
		writeError(w, s.logger, errors.New(errors.ErrCodeUnsupported, "no template store configured"))
		return false
	}
	return true
}

func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	ids, err := s.store.List(r.Context())
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"templates": ids})
}

func (s *Server) handleGetTemplate(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	t, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handlePutTemplate(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	id := chi.URLParam(r, "id")
	t, err := io.ReadJSON(r.Body)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	if err := s.store.Put(r.Context(), id, t); err != nil {
		writeError(w, s.logger, err)
		return
	}
	s.logger.Debug("template stored", "id", id, "slides", len(t.Slides))
	writeJSON(w, http.StatusOK, map[string]any{"id": id, "slides": len(t.Slides)})
}

func (s *Server) handleDeleteTemplate(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, s.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
