package dnd

import (
	"fmt"
	"strings"
)

// Edge is a side of a drop target's bounding box.
type Edge int

// Edges in evaluation order. Ties between equally near edges resolve to the
// earliest one.
const (
	Top Edge = iota + 1
	Right
	Bottom
	Left
)

var edgeNames = map[Edge]string{Top: "TOP", Right: "RIGHT", Bottom: "BOTTOM", Left: "LEFT"}

// Order lists the edges in evaluation order.
var Order = [4]Edge{Top, Right, Bottom, Left}

func (e Edge) String() string {
	if s, ok := edgeNames[e]; ok {
		return s
	}
	return "NONE"
}

// ParseEdge parses an edge name, case-insensitively.
func ParseEdge(s string) (Edge, error) {
	for _, e := range Order {
		if strings.EqualFold(s, edgeNames[e]) {
			return e, nil
		}
	}
	return 0, fmt.Errorf("unknown edge %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (e Edge) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Edge) UnmarshalText(b []byte) error {
	v, err := ParseEdge(string(b))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// Vertical reports whether e places the dragged block above or below the
// target.
func (e Edge) Vertical() bool { return e == Top || e == Bottom }

// Leading reports whether e inserts before the target (TOP, LEFT) rather
// than after it.
func (e Edge) Leading() bool { return e == Top || e == Left }

// EdgeSet records which edges of a target accept a drop.
type EdgeSet struct {
	Top    bool `json:"TOP"`
	Right  bool `json:"RIGHT"`
	Bottom bool `json:"BOTTOM"`
	Left   bool `json:"LEFT"`
}

var (
	noEdges       = EdgeSet{}
	allEdges      = EdgeSet{Top: true, Right: true, Bottom: true, Left: true}
	verticalEdges = EdgeSet{Top: true, Bottom: true}
	sideEdges     = EdgeSet{Right: true, Left: true}
)

// Has reports whether e is in the set.
func (s EdgeSet) Has(e Edge) bool {
	switch e {
	case Top:
		return s.Top
	case Right:
		return s.Right
	case Bottom:
		return s.Bottom
	case Left:
		return s.Left
	}
	return false
}

// Any reports whether at least one edge is allowed.
func (s EdgeSet) Any() bool { return s != noEdges }

// Edges lists the allowed edges in evaluation order.
func (s EdgeSet) Edges() []Edge {
	var out []Edge
	for _, e := range Order {
		if s.Has(e) {
			out = append(out, e)
		}
	}
	return out
}

func (s EdgeSet) String() string {
	edges := s.Edges()
	if len(edges) == 0 {
		return "none"
	}
	names := make([]string, len(edges))
	for i, e := range edges {
		names[i] = e.String()
	}
	return strings.Join(names, ",")
}
