package dnd

import "math"

// Point is a pointer position in viewport pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is a bounding box in viewport pixels.
type Rect struct {
	Top    float64 `json:"top"`
	Left   float64 `json:"left"`
	Bottom float64 `json:"bottom"`
	Right  float64 `json:"right"`
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical extent of r.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// NearestOptions tunes [NearestEdge]. The zero value selects
// [DefaultNearestOptions].
type NearestOptions struct {
	// ActivationDistance is the farthest a side may be from the pointer and
	// still be picked.
	ActivationDistance float64 `toml:"activation_distance" json:"activationDistance"`

	// BiasMax and BiasRatio size the penalty added to the left and right
	// distances of boxes wider than tall: min(BiasMax, width*BiasRatio),
	// never more than a quarter of the box height.
	BiasMax   float64 `toml:"bias_max" json:"biasMax"`
	BiasRatio float64 `toml:"bias_ratio" json:"biasRatio"`
}

// DefaultNearestOptions returns a 50px activation distance and a horizontal
// bias of at most 50px or a tenth of the box width.
func DefaultNearestOptions() NearestOptions {
	return NearestOptions{ActivationDistance: 50, BiasMax: 50, BiasRatio: 0.1}
}

// NearestEdge picks the allowed side of box closest to p.
//
// On boxes wider than tall the left and right distances are inflated by the
// horizontal bias for ranking, so wide, short blocks favour TOP and BOTTOM
// unless the pointer is clearly at a side. Sides whose actual distance
// exceeds the activation distance are ignored. Equal ranks resolve in the
// order TOP, RIGHT, BOTTOM, LEFT. It returns false when no side qualifies.
func NearestEdge(box Rect, p Point, allowed EdgeSet, opts NearestOptions) (Edge, bool) {
	if opts == (NearestOptions{}) {
		opts = DefaultNearestOptions()
	}

	var bias float64
	if w, h := box.Width(), box.Height(); h > 0 && w/h > 1 {
		bias = min(opts.BiasMax, w*opts.BiasRatio, h/4)
	}

	dist := map[Edge]float64{
		Top:    math.Abs(p.Y - box.Top),
		Right:  math.Abs(p.X - box.Right),
		Bottom: math.Abs(p.Y - box.Bottom),
		Left:   math.Abs(p.X - box.Left),
	}

	var (
		best  Edge
		bestD = math.Inf(1)
	)
	for _, e := range Order {
		d := dist[e]
		if !allowed.Has(e) || d > opts.ActivationDistance {
			continue
		}
		if !e.Vertical() {
			d += bias
		}
		if d < bestD {
			best, bestD = e, d
		}
	}
	return best, best != 0
}
