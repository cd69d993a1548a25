package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/matzehuels/slidekit/pkg/doc"
	"github.com/matzehuels/slidekit/pkg/errors"
	"github.com/matzehuels/slidekit/pkg/theme"
)

// Slide is one page of a deck.
type Slide struct {
	ID      string    `json:"id"`
	Content *doc.Node `json:"content"`
}

// UnmarshalJSON accepts content as a document snapshot or an HTML string,
// under either "content" or the older "contentJSON" key.
func (s *Slide) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID          string          `json:"id"`
		Content     json.RawMessage `json:"content"`
		ContentJSON json.RawMessage `json:"contentJSON"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.ID = raw.ID
	s.Content = nil

	content := raw.Content
	if isNull(content) {
		content = raw.ContentJSON
	}
	if isNull(content) {
		return nil
	}
	if content[0] == '"' {
		var markup string
		if err := json.Unmarshal(content, &markup); err != nil {
			return err
		}
		d, err := ParseHTMLString(markup)
		if err != nil {
			return err
		}
		s.Content = d
		return nil
	}
	var d doc.Node
	if err := json.Unmarshal(content, &d); err != nil {
		return err
	}
	s.Content = &d
	return nil
}

func isNull(b json.RawMessage) bool {
	b = bytes.TrimSpace(b)
	return len(b) == 0 || bytes.Equal(b, []byte("null"))
}

// SlidesTemplate is the exchange format for whole decks.
type SlidesTemplate struct {
	Theme  theme.Theme `json:"theme"`
	Slides []Slide     `json:"slides"`
}

// NewTemplate builds a template from documents, assigning fresh slide ids.
func NewTemplate(th theme.Theme, docs ...*doc.Node) *SlidesTemplate {
	t := &SlidesTemplate{Theme: th, Slides: make([]Slide, len(docs))}
	for i, d := range docs {
		t.Slides[i] = Slide{ID: uuid.NewString(), Content: d}
	}
	return t
}

// Validate checks the theme and every slide. It fills in a default theme
// and missing slide ids, so it must not run concurrently with readers.
func (t *SlidesTemplate) Validate() error {
	if t.Theme.Name == "" {
		t.Theme = theme.Default()
	} else if err := t.Theme.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidTemplate, err, "theme")
	}
	if len(t.Slides) == 0 {
		return errors.New(errors.ErrCodeInvalidTemplate, "template has no slides")
	}
	seen := make(map[string]bool, len(t.Slides))
	for i := range t.Slides {
		s := &t.Slides[i]
		if s.ID == "" {
			s.ID = uuid.NewString()
		}
		if seen[s.ID] {
			return errors.New(errors.ErrCodeInvalidTemplate, "slide %d: duplicate id %q", i, s.ID)
		}
		seen[s.ID] = true
		if s.Content == nil {
			return errors.New(errors.ErrCodeInvalidTemplate, "slide %d (%s): missing content", i, s.ID)
		}
		if err := doc.Validate(s.Content); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidTemplate, err, "slide %d (%s)", i, s.ID)
		}
	}
	return nil
}

// WriteJSON encodes a template as indented JSON and writes it to w.
// The output can be re-imported with [ReadJSON].
func WriteJSON(t *SlidesTemplate, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a template to a JSON file at path.
func ExportJSON(t *SlidesTemplate, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(t, f)
}

// ReadJSON decodes and validates a template from r. Any failure carries
// code [errors.ErrCodeInvalidTemplate]. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*SlidesTemplate, error) {
	var t SlidesTemplate
	if err := json.NewDecoder(r).Decode(&t); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTemplate, err, "decode")
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// ImportJSON reads a template file at path.
func ImportJSON(path string) (*SlidesTemplate, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
