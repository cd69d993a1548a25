package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/slidekit/pkg/doc"
	"github.com/matzehuels/slidekit/pkg/errors"
	"github.com/matzehuels/slidekit/pkg/layouts"
	"github.com/matzehuels/slidekit/pkg/presets"
	"github.com/matzehuels/slidekit/pkg/theme"
)

func (s *Server) handleLayouts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"categories": layouts.Categories()})
}

type layoutResponse struct {
	layouts.Layout
	Doc *doc.Node `json:"doc"`
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	l, err := layouts.ByID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	d, err := l.Doc()
	if err != nil {
		writeError(w, s.logger, errors.Wrap(errors.ErrCodeInternal, err, "layout %s", l.ID))
		return
	}
	writeJSON(w, http.StatusOK, layoutResponse{Layout: l, Doc: d})
}

func (s *Server) handlePresets(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "count")
	n, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, s.logger, errors.New(errors.ErrCodeInvalidInput, "column count %q is not a number", raw))
		return
	}
	list := presets.ForColumnCount(n)
	if list == nil {
		writeError(w, s.logger, errors.New(errors.ErrCodeNotFound, "no presets for %d columns", n))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"count": n, "presets": list})
}

func (s *Server) handleThemes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"default": s.cfg.Theme,
		"themes":  theme.Builtin(),
	})
}
