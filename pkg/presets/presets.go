// Package presets lists the named column-width layouts offered for rows of
// two to four columns.
package presets

import (
	"math"
	"slices"
)

// Tolerance is the largest difference between two widths still considered
// equal when matching a row against a preset.
const Tolerance = 0.01

// Preset is a named set of column width ratios.
type Preset struct {
	ID     string    `json:"id"`
	Label  string    `json:"label"`
	Widths []float64 `json:"widths"`
}

var byCount = map[int][]Preset{
	2: {
		{ID: "2-equal", Label: "Equal (50% - 50%)", Widths: []float64{1, 1}},
		{ID: "2-left-heavy", Label: "Large - Small (75% - 25%)", Widths: []float64{1.5, 0.5}},
		{ID: "2-right-heavy", Label: "Small - Large (25% - 75%)", Widths: []float64{0.5, 1.5}},
	},
	3: {
		{ID: "3-equal", Label: "Equal (33% each)", Widths: []float64{1, 1, 1}},
		{ID: "3-left-heavy", Label: "Large - Small - Small", Widths: []float64{2, 1, 1}},
		{ID: "3-center-heavy", Label: "Small - Large - Small", Widths: []float64{1, 2, 1}},
		{ID: "3-right-heavy", Label: "Small - Small - Large", Widths: []float64{1, 1, 2}},
	},
	4: {
		{ID: "4-equal", Label: "Equal (25% each)", Widths: []float64{1, 1, 1, 1}},
		{ID: "4-first-heavy", Label: "Large - Small - Small - Small", Widths: []float64{2, 1, 1, 1}},
		{ID: "4-last-heavy", Label: "Small - Small - Small - Large", Widths: []float64{1, 1, 1, 2}},
	},
}

// ForColumnCount returns copies of the presets for rows with n columns, or
// nil when there are none.
func ForColumnCount(n int) []Preset {
	presets := byCount[n]
	out := make([]Preset, len(presets))
	for i, p := range presets {
		out[i] = p.clone()
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Counts returns the column counts that have presets, ascending.
func Counts() []int {
	counts := make([]int, 0, len(byCount))
	for n := range byCount {
		counts = append(counts, n)
	}
	slices.Sort(counts)
	return counts
}

// ByID looks up a preset by id.
func ByID(id string) (Preset, bool) {
	for _, presets := range byCount {
		for _, p := range presets {
			if p.ID == id {
				return p.clone(), true
			}
		}
	}
	return Preset{}, false
}

// Current returns the preset matching a row of n columns with the given
// widths. Missing widths count as 1.
func Current(n int, widths []float64) (Preset, bool) {
	for _, p := range byCount[n] {
		if p.matches(widths) {
			return p.clone(), true
		}
	}
	return Preset{}, false
}

func (p Preset) matches(widths []float64) bool {
	for i, w := range p.Widths {
		actual := 1.0
		if i < len(widths) {
			actual = widths[i]
		}
		if math.Abs(actual-w) > Tolerance {
			return false
		}
	}
	return true
}

func (p Preset) clone() Preset {
	p.Widths = slices.Clone(p.Widths)
	return p
}
