package dnd

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/matzehuels/slidekit/pkg/doc"
	"github.com/matzehuels/slidekit/pkg/observability"
)

var (
	// ErrNoSource is returned by [Tracker.Start] when no block starts at the
	// source position.
	ErrNoSource = errors.New("no draggable block at position")

	// ErrSessionClosed is returned when a session that already ended or was
	// cancelled receives another event.
	ErrSessionClosed = errors.New("drag session closed")
)

// TargetID identifies a registered drop target.
type TargetID string

// PosFunc reports the current position of a drop target's block, or false
// when the block is gone.
type PosFunc func() (int, bool)

// BoundsFunc reports the current on-screen bounding box of a drop target.
type BoundsFunc func() (Rect, bool)

type target struct {
	pos    PosFunc
	bounds BoundsFunc
}

// Drop is a completed gesture: the dragged block, the block it landed on and
// the side it landed at. Both snapshots were taken from the live document
// when the gesture ended.
type Drop struct {
	Source NodeInfo `json:"source"`
	Target NodeInfo `json:"target"`
	Edge   Edge     `json:"edge"`
}

// Tracker keeps the drop targets of one editor view and starts drag
// sessions against the live document.
//
// Registration is safe for concurrent use; sessions are not.
type Tracker struct {
	live   func() *doc.Node
	policy Policy
	opts   NearestOptions

	mu      sync.RWMutex
	targets map[TargetID]target
}

// NewTracker returns a tracker that reads the current document through live.
func NewTracker(live func() *doc.Node, policy Policy, opts NearestOptions) *Tracker {
	return &Tracker{
		live:    live,
		policy:  policy,
		opts:    opts,
		targets: make(map[TargetID]target),
	}
}

// Register adds a drop target and returns its id.
func (t *Tracker) Register(pos PosFunc, bounds BoundsFunc) TargetID {
	id := TargetID(uuid.NewString())
	t.mu.Lock()
	t.targets[id] = target{pos: pos, bounds: bounds}
	t.mu.Unlock()
	return id
}

// Unregister removes a drop target. Unknown ids are ignored.
func (t *Tracker) Unregister(id TargetID) {
	t.mu.Lock()
	delete(t.targets, id)
	t.mu.Unlock()
}

// Len returns the number of registered targets.
func (t *Tracker) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.targets)
}

func (t *Tracker) lookup(id TargetID) (target, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	tg, ok := t.targets[id]
	return tg, ok
}

// info resolves a registered target against the live document.
func (t *Tracker) info(id TargetID) (target, NodeInfo, bool) {
	tg, ok := t.lookup(id)
	if !ok {
		return target{}, NodeInfo{}, false
	}
	pos, ok := tg.pos()
	if !ok {
		return target{}, NodeInfo{}, false
	}
	info, ok := InfoAt(t.live(), pos)
	return tg, info, ok
}

// Start begins a gesture dragging the block at sourcePos.
func (t *Tracker) Start(sourcePos int) (*Session, error) {
	info, ok := InfoAt(t.live(), sourcePos)
	if !ok {
		return nil, ErrNoSource
	}
	observability.Drag().OnDragStart(info.Type.String())
	return &Session{tracker: t, Source: info}, nil
}

// Session is the state of one drag gesture, from start to drop or cancel.
type Session struct {
	tracker *Tracker

	// Source is the dragged block as it was when the gesture started.
	Source NodeInfo

	targetID TargetID
	edge     Edge
	closed   bool
}

// Move handles the pointer hovering over target id at p. It updates the
// session's drop cursor and returns the active edge, or false when the
// target rejects the dragged block at this point.
func (s *Session) Move(id TargetID, p Point) (Edge, bool) {
	if s.closed {
		return 0, false
	}
	tg, info, ok := s.tracker.info(id)
	if !ok {
		s.clear()
		return 0, false
	}
	box, ok := tg.bounds()
	if !ok {
		s.clear()
		return 0, false
	}
	allowed := AllowedEdges(info, s.Source.Type, s.tracker.policy)
	edge, ok := NearestEdge(box, p, allowed, s.tracker.opts)
	if !ok {
		s.clear()
		return 0, false
	}
	s.targetID, s.edge = id, edge
	return edge, true
}

// Cursor returns the current drop target and edge, if any.
func (s *Session) Cursor() (TargetID, Edge, bool) {
	if s.edge == 0 {
		return "", 0, false
	}
	return s.targetID, s.edge, true
}

// End finishes the gesture over target id. It returns the drop to commit, or
// false when the gesture ended outside the active drop target or the blocks
// involved no longer exist.
func (s *Session) End(id TargetID) (Drop, bool, error) {
	if s.closed {
		return Drop{}, false, ErrSessionClosed
	}
	defer s.close()

	if s.edge == 0 || id != s.targetID {
		observability.Drag().OnDragCancel("no drop target")
		return Drop{}, false, nil
	}
	_, targetInfo, ok := s.tracker.info(id)
	if !ok {
		observability.Drag().OnDragCancel("target gone")
		return Drop{}, false, nil
	}
	source, ok := InfoAt(s.tracker.live(), s.Source.Pos)
	if !ok || source.Type != s.Source.Type {
		observability.Drag().OnDragCancel("source gone")
		return Drop{}, false, nil
	}
	if !AllowedEdges(targetInfo, source.Type, s.tracker.policy).Has(s.edge) {
		observability.Drag().OnDragCancel("edge not allowed")
		return Drop{}, false, nil
	}

	drop := Drop{Source: source, Target: targetInfo, Edge: s.edge}
	observability.Drag().OnDrop(source.Type.String(), targetInfo.Type.String(), s.edge.String())
	return drop, true, nil
}

// Cancel abandons the gesture. It is safe to call more than once.
func (s *Session) Cancel() {
	if s.closed {
		return
	}
	s.close()
	observability.Drag().OnDragCancel("cancelled")
}

// Closed reports whether the gesture has ended.
func (s *Session) Closed() bool { return s.closed }

func (s *Session) clear() { s.targetID, s.edge = "", 0 }

func (s *Session) close() {
	s.clear()
	s.closed = true
}
