package schema

// Type identifies a block type. The zero value is [Unknown].
type Type int

const (
	Unknown Type = iota
	Doc
	Row
	Column
	Paragraph
	Heading
	Image
	Chart
	BulletList
	OrderedList
	ListItem
	Text
)

// names holds the persisted JSON name of every known type.
var names = [...]string{
	Unknown:     "unknown",
	Doc:         "doc",
	Row:         "row",
	Column:      "column",
	Paragraph:   "paragraph",
	Heading:     "heading",
	Image:       "image",
	Chart:       "chart",
	BulletList:  "bulletList",
	OrderedList: "orderedList",
	ListItem:    "listItem",
	Text:        "text",
}

// All lists every known type in declaration order.
var All = []Type{Doc, Row, Column, Paragraph, Heading, Image, Chart, BulletList, OrderedList, ListItem, Text}

// String returns the persisted name of t.
func (t Type) String() string {
	if t < 0 || int(t) >= len(names) {
		return names[Unknown]
	}
	return names[t]
}

// ParseType maps a persisted type name back to its [Type].
// It returns Unknown and false for names outside the schema.
func ParseType(name string) (Type, bool) {
	for _, t := range All {
		if names[t] == name {
			return t, true
		}
	}
	return Unknown, false
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown names decode to
// Unknown without error; validation rejects them later with a path.
func (t *Type) UnmarshalText(b []byte) error {
	*t, _ = ParseType(string(b))
	return nil
}

// IsLeaf reports whether t is atomic slide content: heading, paragraph or image.
func IsLeaf(t Type) bool {
	switch t {
	case Heading, Paragraph, Image:
		return true
	}
	return false
}

// IsList reports whether t is a bullet or ordered list.
func IsList(t Type) bool {
	switch t {
	case BulletList, OrderedList:
		return true
	}
	return false
}

// IsListItem reports whether t is a list item.
func IsListItem(t Type) bool { return t == ListItem }

// CanConvertToListItem reports whether a block of type t becomes a list item
// when dropped next to one.
func CanConvertToListItem(t Type) bool {
	switch t {
	case Paragraph, Heading, ListItem:
		return true
	}
	return false
}

// IsColumnable reports whether t may be wrapped into a column when a new row
// is formed around it.
func IsColumnable(t Type) bool { return IsLeaf(t) || IsList(t) }

// IsContainer reports whether t exists only to hold other blocks.
func IsContainer(t Type) bool { return t == Row || t == Column }

// IsTextBlock reports whether t holds inline text.
func IsTextBlock(t Type) bool { return t == Paragraph || t == Heading }

// IsAtom reports whether t is a block without content. Atoms occupy a single
// position in the document.
func IsAtom(t Type) bool { return t == Image || t == Chart }
