// Package deck manages the ordered slides of a presentation and tracks
// which one is being edited.
//
// A deck always holds at least one slide. It is not safe for concurrent
// use; like the editor it is owned by a single goroutine.
package deck

import (
	"slices"

	"github.com/google/uuid"

	"github.com/matzehuels/slidekit/pkg/doc"
	"github.com/matzehuels/slidekit/pkg/errors"
	"github.com/matzehuels/slidekit/pkg/io"
	"github.com/matzehuels/slidekit/pkg/theme"
)

// Deck is an ordered list of slides plus the active selection.
type Deck struct {
	Theme theme.Theme

	slides []io.Slide
	active string
}

// New returns a deck holding docs, or a single blank slide when docs is
// empty. The first slide is active.
func New(th theme.Theme, docs ...*doc.Node) (*Deck, error) {
	if len(docs) == 0 {
		docs = []*doc.Node{blank()}
	}
	return FromTemplate(io.NewTemplate(th, docs...))
}

// FromTemplate returns a deck over the slides of t. The template is
// validated first.
func FromTemplate(t *io.SlidesTemplate) (*Deck, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	d := &Deck{Theme: t.Theme, slides: slices.Clone(t.Slides)}
	d.active = d.slides[0].ID
	return d, nil
}

func blank() *doc.Node { return doc.NewDoc(doc.Paragraph()) }

// Template snapshots the deck for export.
func (d *Deck) Template() *io.SlidesTemplate {
	return &io.SlidesTemplate{Theme: d.Theme, Slides: d.Slides()}
}

// Slides returns the slides in order.
func (d *Deck) Slides() []io.Slide { return slices.Clone(d.slides) }

// Len returns the number of slides.
func (d *Deck) Len() int { return len(d.slides) }

// Get returns the slide with the given id.
func (d *Deck) Get(id string) (io.Slide, bool) {
	i := d.index(id)
	if i < 0 {
		return io.Slide{}, false
	}
	return d.slides[i], true
}

// Active returns the slide being edited.
func (d *Deck) Active() io.Slide {
	return d.slides[d.index(d.active)]
}

// ActiveID returns the id of the slide being edited.
func (d *Deck) ActiveID() string { return d.active }

// SetActive selects the slide to edit.
func (d *Deck) SetActive(id string) error {
	if d.index(id) < 0 {
		return notFound(id)
	}
	d.active = id
	return nil
}

// Add appends a slide and makes it active. A nil content adds a blank
// slide.
func (d *Deck) Add(content *doc.Node) (string, error) {
	if content == nil {
		content = blank()
	}
	if err := doc.Validate(content); err != nil {
		return "", err
	}
	s := io.Slide{ID: uuid.NewString(), Content: content}
	d.slides = append(d.slides, s)
	d.active = s.ID
	return s.ID, nil
}

// Update replaces the content of the active slide.
func (d *Deck) Update(content *doc.Node) error {
	if err := doc.Validate(content); err != nil {
		return err
	}
	d.slides[d.index(d.active)].Content = content
	return nil
}

// Delete removes a slide. The last remaining slide cannot be deleted.
// Deleting the active slide activates the first remaining one.
func (d *Deck) Delete(id string) error {
	i := d.index(id)
	if i < 0 {
		return notFound(id)
	}
	if len(d.slides) == 1 {
		return errors.New(errors.ErrCodeInvalidInput, "cannot delete the only slide")
	}
	d.slides = slices.Delete(d.slides, i, i+1)
	if d.active == id {
		d.active = d.slides[0].ID
	}
	return nil
}

// Move places the slide with the given id at index, shifting the others.
func (d *Deck) Move(id string, index int) error {
	i := d.index(id)
	if i < 0 {
		return notFound(id)
	}
	if index < 0 || index >= len(d.slides) {
		return errors.New(errors.ErrCodeInvalidInput, "slide index %d out of range [0,%d)", index, len(d.slides))
	}
	s := d.slides[i]
	d.slides = slices.Insert(slices.Delete(d.slides, i, i+1), index, s)
	return nil
}

func (d *Deck) index(id string) int {
	return slices.IndexFunc(d.slides, func(s io.Slide) bool { return s.ID == id })
}

func notFound(id string) error {
	return errors.New(errors.ErrCodeSlideNotFound, "slide %q not found", id)
}
