package api

import (
	stderrors "errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/slidekit/pkg/dnd"
	"github.com/matzehuels/slidekit/pkg/doc"
	"github.com/matzehuels/slidekit/pkg/doc/transform"
	"github.com/matzehuels/slidekit/pkg/editor"
	"github.com/matzehuels/slidekit/pkg/errors"
	"github.com/matzehuels/slidekit/pkg/schema"
)

type normalizeRequest struct {
	Doc *doc.Node `json:"doc"`
}

type normalizeResponse struct {
	Doc       *doc.Node `json:"doc"`
	Collapsed int       `json:"collapsed"`
	Resynced  int       `json:"resynced"`
}

func (s *Server) handleNormalize(w http.ResponseWriter, r *http.Request) {
	var req normalizeRequest
	if err := decode(r, &req); err != nil {
		writeError(w, s.logger, err)
		return
	}
	if err := doc.Validate(req.Doc); err != nil {
		writeError(w, s.logger, err)
		return
	}
	tr := doc.NewTransaction(req.Doc).SetMeta(transform.MetaOrigin, transform.OriginNormalize)
	stats := transform.NormalizeRows(tr)
	writeJSON(w, http.StatusOK, normalizeResponse{Doc: tr.Doc(), Collapsed: stats.Collapsed, Resynced: stats.Resynced})
}

type edgesRequest struct {
	Doc        *doc.Node   `json:"doc"`
	Target     int         `json:"target"`
	SourceType schema.Type `json:"sourceType"`
}

type edgesResponse struct {
	Target dnd.NodeInfo `json:"target"`
	Edges  dnd.EdgeSet  `json:"edges"`
}

func (s *Server) handleEdges(w http.ResponseWriter, r *http.Request) {
	var req edgesRequest
	if err := decode(r, &req); err != nil {
		writeError(w, s.logger, err)
		return
	}
	if err := doc.Validate(req.Doc); err != nil {
		writeError(w, s.logger, err)
		return
	}
	if req.SourceType == schema.Unknown {
		writeError(w, s.logger, errors.New(errors.ErrCodeInvalidInput, "sourceType is missing or not a block type"))
		return
	}
	info, ok := dnd.InfoAt(req.Doc, req.Target)
	if !ok {
		writeError(w, s.logger, errors.New(errors.ErrCodeInvalidPosition, "no block at %d", req.Target))
		return
	}
	writeJSON(w, http.StatusOK, edgesResponse{
		Target: info,
		Edges:  dnd.AllowedEdges(info, req.SourceType, s.cfg.Policy),
	})
}

type nearestRequest struct {
	Box     dnd.Rect    `json:"box"`
	Point   dnd.Point   `json:"point"`
	Allowed dnd.EdgeSet `json:"allowed"`
}

type nearestResponse struct {
	Edge  string `json:"edge,omitempty"`
	Found bool   `json:"found"`
}

func (s *Server) handleNearestEdge(w http.ResponseWriter, r *http.Request) {
	var req nearestRequest
	if err := decode(r, &req); err != nil {
		writeError(w, s.logger, err)
		return
	}
	var resp nearestResponse
	if e, ok := dnd.NearestEdge(req.Box, req.Point, req.Allowed, s.cfg.Nearest); ok {
		resp = nearestResponse{Edge: e.String(), Found: true}
	}
	writeJSON(w, http.StatusOK, resp)
}

type dropRequest struct {
	Doc    *doc.Node `json:"doc"`
	Source int       `json:"source"`
	Target int       `json:"target"`
	Edge   dnd.Edge  `json:"edge"`
}

// editResponse reports the document after an edit. Applied is false when
// the edit was rejected as a no-op or disallowed; Doc is then unchanged.
type editResponse struct {
	Doc     *doc.Node `json:"doc"`
	Applied bool      `json:"applied"`
	Version int       `json:"version"`
	Case    string    `json:"case,omitempty"`
	Reason  string    `json:"reason,omitempty"`
}

func (s *Server) handleDrop(w http.ResponseWriter, r *http.Request) {
	var req dropRequest
	if err := decode(r, &req); err != nil {
		writeError(w, s.logger, err)
		return
	}
	if req.Edge == 0 {
		writeError(w, s.logger, errors.New(errors.ErrCodeInvalidEdge, "edge is required"))
		return
	}
	ed, err := editor.New(req.Doc, editor.WithLogger(s.logger))
	if err != nil {
		writeError(w, s.logger, err)
		return
	}

	source, ok := dnd.InfoAt(req.Doc, req.Source)
	if !ok {
		writeError(w, s.logger, errors.New(errors.ErrCodeInvalidPosition, "no block at source %d", req.Source))
		return
	}
	target, ok := dnd.InfoAt(req.Doc, req.Target)
	if !ok {
		writeError(w, s.logger, errors.New(errors.ErrCodeInvalidPosition, "no block at target %d", req.Target))
		return
	}
	if !dnd.AllowedEdges(target, source.Type, s.cfg.Policy).Has(req.Edge) {
		writeJSON(w, http.StatusOK, editResponse{
			Doc:    ed.Doc(),
			Reason: "edge " + req.Edge.String() + " does not accept " + source.Type.String(),
		})
		return
	}

	rw, err := ed.Drop(dnd.Drop{Source: source, Target: target, Edge: req.Edge})
	s.writeEdit(w, ed, rw.Case.String(), err)
}

type columnsRequest struct {
	Doc    *doc.Node `json:"doc"`
	Row    int       `json:"row"`
	Index  int       `json:"index"`
	Widths []float64 `json:"widths,omitempty"`
	Delta  float64   `json:"delta,omitempty"`
}

func (s *Server) handleColumns(w http.ResponseWriter, r *http.Request) {
	op := chi.URLParam(r, "op")
	var req columnsRequest
	if err := decode(r, &req); err != nil {
		writeError(w, s.logger, err)
		return
	}

	var edit func(*doc.Transaction) error
	switch op {
	case "add":
		edit = func(tr *doc.Transaction) error { return transform.AddColumn(tr, req.Row, req.Index, s.cfg.Policy) }
	case "remove":
		edit = func(tr *doc.Transaction) error { return transform.RemoveColumn(tr, req.Row, req.Index) }
	case "widths":
		edit = func(tr *doc.Transaction) error { return transform.SetColumnWidths(tr, req.Row, req.Widths) }
	case "resize":
		edit = func(tr *doc.Transaction) error { return transform.ResizeColumns(tr, req.Row, req.Index, req.Delta) }
	default:
		writeError(w, s.logger, errors.New(errors.ErrCodeNotFound, "unknown column operation %q", op))
		return
	}

	ed, err := editor.New(req.Doc, editor.WithLogger(s.logger))
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	err = ed.Apply(transform.OriginColumns, edit)
	if stderrors.Is(err, transform.ErrInvalidWidths) {
		writeError(w, s.logger, errors.New(errors.ErrCodeInvalidInput, "%v", err))
		return
	}
	s.writeEdit(w, ed, "", err)
}

// writeEdit reports the editor state after an edit attempt. Rejections are
// a normal outcome; anything else is a server error.
func (s *Server) writeEdit(w http.ResponseWriter, ed *editor.Editor, kind string, err error) {
	resp := editResponse{Doc: ed.Doc(), Version: ed.Version()}
	switch {
	case err == nil:
		resp.Applied = true
		resp.Case = kind
	case transform.IsRejected(err):
		resp.Reason = err.Error()
	default:
		writeError(w, s.logger, errors.Wrap(errors.ErrCodeInternal, err, "edit failed"))
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
