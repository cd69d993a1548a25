package presets

import "testing"

func TestForColumnCount(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{1, 0}, {2, 3}, {3, 4}, {4, 3}, {5, 0},
	}
	for _, tt := range tests {
		got := ForColumnCount(tt.n)
		if len(got) != tt.want {
			t.Errorf("ForColumnCount(%d) = %d presets, want %d", tt.n, len(got), tt.want)
		}
		for _, p := range got {
			if len(p.Widths) != tt.n {
				t.Errorf("preset %s has %d widths, want %d", p.ID, len(p.Widths), tt.n)
			}
		}
	}

	ForColumnCount(2)[0].Widths[0] = 99
	if ForColumnCount(2)[0].Widths[0] != 1 {
		t.Error("ForColumnCount returned shared widths")
	}
}

func TestCurrent(t *testing.T) {
	tests := []struct {
		name   string
		n      int
		widths []float64
		want   string
	}{
		{"equal", 2, []float64{1, 1}, "2-equal"},
		{"within tolerance", 2, []float64{1.505, 0.495}, "2-left-heavy"},
		{"outside tolerance", 2, []float64{1.52, 0.48}, ""},
		{"missing widths count as 1", 3, nil, "3-equal"},
		{"partially missing", 3, []float64{2}, "3-left-heavy"},
		{"center heavy", 3, []float64{1, 2, 1}, "3-center-heavy"},
		{"last heavy", 4, []float64{1, 1, 1, 2}, "4-last-heavy"},
		{"no presets for one column", 1, []float64{1}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := Current(tt.n, tt.widths)
			if tt.want == "" {
				if ok {
					t.Errorf("Current() = %s, want no match", p.ID)
				}
				return
			}
			if !ok || p.ID != tt.want {
				t.Errorf("Current() = %q, %v; want %q", p.ID, ok, tt.want)
			}
		})
	}
}

func TestByID(t *testing.T) {
	p, ok := ByID("3-right-heavy")
	if !ok || p.Label != "Small - Small - Large" {
		t.Errorf("ByID(3-right-heavy) = %+v, %v", p, ok)
	}
	if _, ok := ByID("5-equal"); ok {
		t.Error("ByID(5-equal) found a preset")
	}
	if got := Counts(); len(got) != 3 || got[0] != 2 || got[2] != 4 {
		t.Errorf("Counts() = %v, want [2 3 4]", got)
	}
}
