package schema

import "slices"

// MaxColumnsPerRow caps the number of columns a row may hold.
const MaxColumnsPerRow = 4

// Rule describes the children a container accepts.
// Max of zero means unbounded.
type Rule struct {
	Accepts []Type
	Min     int
	Max     int
}

// Allows reports whether child may appear inside a node governed by r.
func (r Rule) Allows(child Type) bool { return slices.Contains(r.Accepts, child) }

// content lists the block types allowed as direct content of documents and columns.
var content = []Type{Paragraph, Heading, Image, Chart, BulletList, OrderedList}

var rules = map[Type]Rule{
	Doc:         {Accepts: append([]Type{Row}, content...), Min: 1},
	Row:         {Accepts: []Type{Column}, Min: 1, Max: MaxColumnsPerRow},
	Column:      {Accepts: content, Min: 1},
	ListItem:    {Accepts: []Type{Paragraph}, Min: 1, Max: 1},
	BulletList:  {Accepts: []Type{ListItem}, Min: 1},
	OrderedList: {Accepts: []Type{ListItem}, Min: 1},
	Paragraph:   {Accepts: []Type{Text}},
	Heading:     {Accepts: []Type{Text}},
	Image:       {},
	Chart:       {},
	Text:        {},
}

// RuleFor returns the containment rule for parent.
func RuleFor(parent Type) (Rule, bool) {
	r, ok := rules[parent]
	return r, ok
}

// Accepts reports whether child may be placed directly inside parent.
func Accepts(parent, child Type) bool {
	r, ok := rules[parent]
	return ok && r.Allows(child)
}
