// Package editor hosts the live state of one slide: the current document,
// the transactions applied to it and the plugins that react to them.
//
// An [Editor] is driven from a single goroutine. Every change goes through
// [Editor.Dispatch]; after each transaction the registered plugins may
// append follow-up transactions, which is how row normalization runs after
// every structural edit.
package editor

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/slidekit/pkg/dnd"
	"github.com/matzehuels/slidekit/pkg/doc"
	"github.com/matzehuels/slidekit/pkg/doc/transform"
	"github.com/matzehuels/slidekit/pkg/observability"
)

// maxAppendRounds bounds how often plugins may append to one dispatch.
const maxAppendRounds = 8

// ErrStaleTransaction is returned by [Editor.Dispatch] when the transaction
// was not started from the editor's current document.
var ErrStaleTransaction = errors.New("transaction does not start from the current document")

// Plugin reacts to applied transactions.
type Plugin interface {
	// Name identifies the plugin in logs.
	Name() string
	// AppendTransaction may return a transaction on next that is applied
	// right after trs, or nil.
	AppendTransaction(trs []*doc.Transaction, prev, next *doc.Node) *doc.Transaction
}

// Option configures an [Editor].
type Option func(*Editor)

// WithPlugins registers additional plugins after the built-in ones.
func WithPlugins(p ...Plugin) Option {
	return func(e *Editor) { e.plugins = append(e.plugins, p...) }
}

// WithoutNormalization disables the row normalization plugin.
func WithoutNormalization() Option {
	return func(e *Editor) { e.normalize = false }
}

// WithLogger sets the logger. The default is log.Default().
func WithLogger(l *log.Logger) Option {
	return func(e *Editor) { e.logger = l }
}

// Editor holds the current document of a slide.
type Editor struct {
	doc       *doc.Node
	version   int
	plugins   []Plugin
	normalize bool
	logger    *log.Logger
}

// New returns an editor on d. The document must satisfy the schema.
func New(d *doc.Node, opts ...Option) (*Editor, error) {
	if err := doc.Validate(d); err != nil {
		return nil, err
	}
	e := &Editor{doc: d, normalize: true}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = log.Default()
	}
	if e.normalize {
		e.plugins = append([]Plugin{transform.NormalizePlugin{}}, e.plugins...)
	}
	return e, nil
}

// Doc returns the current document.
func (e *Editor) Doc() *doc.Node { return e.doc }

// Version counts the transactions applied so far, including appended ones.
func (e *Editor) Version() int { return e.version }

// Transaction starts a transaction on the current document.
func (e *Editor) Transaction() *doc.Transaction { return doc.NewTransaction(e.doc) }

// Dispatch applies tr and then lets the plugins append follow-up
// transactions until none does. It returns every applied transaction.
func (e *Editor) Dispatch(tr *doc.Transaction) ([]*doc.Transaction, error) {
	if tr.Before() != e.doc {
		return nil, ErrStaleTransaction
	}
	if tr.Empty() {
		return nil, nil
	}
	start := time.Now()
	applied := []*doc.Transaction{tr}
	e.apply(tr)

	pending := applied
	for round := 0; len(pending) > 0; round++ {
		if round == maxAppendRounds {
			return applied, fmt.Errorf("plugins still appending after %d rounds", maxAppendRounds)
		}
		var appended []*doc.Transaction
		for _, p := range e.plugins {
			prev := pending[0].Before()
			next := p.AppendTransaction(pending, prev, e.doc)
			if next == nil || next.Empty() {
				continue
			}
			if next.Before() != e.doc {
				e.logger.Warn("dropping stale plugin transaction", "plugin", p.Name())
				continue
			}
			e.logger.Debug("plugin appended transaction", "plugin", p.Name(), "steps", len(next.Steps()))
			e.apply(next)
			appended = append(appended, next)
		}
		applied = append(applied, appended...)
		pending = appended
	}

	steps := 0
	for _, a := range applied {
		steps += len(a.Steps())
	}
	observability.Editor().OnDispatch(steps, tr.DocChanged(), time.Since(start))
	return applied, nil
}

func (e *Editor) apply(tr *doc.Transaction) {
	e.doc = tr.Doc()
	e.version++
}

// Drop commits a finished drag gesture. Expected rejections (stale
// positions, drops onto themselves, schema violations) leave the document
// unchanged and are reported through the returned error; check them with
// [transform.IsRejected].
func (e *Editor) Drop(drop dnd.Drop) (transform.Rewrite, error) {
	tr := e.Transaction().SetMeta(transform.MetaOrigin, transform.OriginDrop)
	rw, err := transform.Commit(tr, drop)
	if err != nil {
		e.reject("drop", err)
		return rw, err
	}
	_, err = e.Dispatch(tr)
	return rw, err
}

// Move drags the block at source onto edge of the block at target.
func (e *Editor) Move(source, target int, edge dnd.Edge) (transform.Rewrite, error) {
	tr := e.Transaction().SetMeta(transform.MetaOrigin, transform.OriginDrop)
	rw, err := transform.Move(tr, source, target, edge)
	if err != nil {
		e.reject("move", err)
		return rw, err
	}
	_, err = e.Dispatch(tr)
	return rw, err
}

// Apply runs edit on a fresh transaction and dispatches the result.
func (e *Editor) Apply(op string, edit func(*doc.Transaction) error) error {
	tr := e.Transaction().SetMeta(transform.MetaOrigin, op)
	if err := edit(tr); err != nil {
		e.reject(op, err)
		return err
	}
	_, err := e.Dispatch(tr)
	return err
}

func (e *Editor) reject(op string, err error) {
	if transform.IsRejected(err) {
		e.logger.Debug("edit rejected", "op", op, "reason", err)
	} else {
		e.logger.Warn("edit failed", "op", op, "err", err)
	}
	observability.Editor().OnRejected(op, err)
}

// Tracker returns a drag tracker reading this editor's live document.
func (e *Editor) Tracker(policy dnd.Policy, opts dnd.NearestOptions) *dnd.Tracker {
	return dnd.NewTracker(e.Doc, policy, opts)
}
