package doc

// Range is a replaced span in a [StepMap]: OldSize positions starting at
// Start were replaced by NewSize positions.
type Range struct {
	Start   int
	OldSize int
	NewSize int
}

// StepMap records how a single step moved positions.
type StepMap struct {
	Ranges []Range
}

// EmptyMap is the identity map produced by steps that do not change
// positions, such as attribute updates.
var EmptyMap = StepMap{}

// Map maps pos through m with a forward bias: a position at an insertion
// point ends up after the inserted content.
func (m StepMap) Map(pos int) int {
	p, _ := m.MapResult(pos, 1)
	return p
}

// MapResult maps pos through m. assoc decides which side a position at an
// insertion point sticks to: negative keeps it before the inserted content,
// otherwise it moves after. A position at the start of a replaced range maps
// to the start of the replacement and one at its end maps to the end.
// deleted reports whether pos lay strictly inside a replaced range.
func (m StepMap) MapResult(pos, assoc int) (mapped int, deleted bool) {
	diff := 0
	for _, r := range m.Ranges {
		if r.Start > pos {
			break
		}
		end := r.Start + r.OldSize
		if pos <= end {
			side := assoc
			switch {
			case r.OldSize == 0:
			case pos == r.Start:
				side = -1
			case pos == end:
				side = 1
			}
			mapped = r.Start + diff
			if side >= 0 {
				mapped += r.NewSize
			}
			return mapped, pos > r.Start && pos < end
		}
		diff += r.NewSize - r.OldSize
	}
	return pos + diff, false
}

// Mapping is a sequence of step maps applied in order.
type Mapping struct {
	maps []StepMap
}

// Append adds m to the end of the mapping.
func (mp *Mapping) Append(m StepMap) { mp.maps = append(mp.maps, m) }

// Len returns the number of step maps.
func (mp *Mapping) Len() int { return len(mp.maps) }

// Maps returns the step maps in application order.
func (mp *Mapping) Maps() []StepMap { return mp.maps }

// Slice returns a mapping holding the maps from index from onward. It maps
// positions taken after the first from steps were applied.
func (mp *Mapping) Slice(from int) *Mapping {
	if from > len(mp.maps) {
		from = len(mp.maps)
	}
	return &Mapping{maps: mp.maps[from:len(mp.maps):len(mp.maps)]}
}

// Map maps pos through every step map with a forward bias.
func (mp *Mapping) Map(pos int) int {
	p, _ := mp.MapResult(pos, 1)
	return p
}

// MapResult maps pos through every step map. deleted reports whether any
// step removed the content around pos.
func (mp *Mapping) MapResult(pos, assoc int) (int, bool) {
	deleted := false
	for _, m := range mp.maps {
		var d bool
		pos, d = m.MapResult(pos, assoc)
		deleted = deleted || d
	}
	return pos, deleted
}
