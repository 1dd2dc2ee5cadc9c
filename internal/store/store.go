// Package store implements the in-memory entity stores and their
// mutation operations. Each store owns one ordered collection; all
// mutations are copy-on-write over the backing slice, so slices handed
// out by List remain valid after later mutations.
//
// Stores are not safe for concurrent use. The application runs a
// single-threaded command loop; every mutation runs to completion
// before the next one is dispatched.
package store

import (
	"errors"
	"time"

	"github.com/sprintdeck/sprintdeck/internal/model"
)

// ErrNotFound is returned when a mutation or lookup targets an
// identifier that is not in the collection. Callers can distinguish
// "nothing happened" from a successful mutation.
var ErrNotFound = errors.New("not found")

// Entity is the contract every stored record satisfies.
type Entity interface {
	EntityID() string
}

// settings carries the injectable collaborators shared by all stores.
type settings struct {
	now   func() time.Time
	newID func() string
}

// Option configures a store at construction time.
type Option func(*settings)

// WithClock overrides the timestamp source, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(s *settings) { s.now = now }
}

// WithIDSource overrides the identifier generator, for deterministic tests.
func WithIDSource(newID func() string) Option {
	return func(s *settings) { s.newID = newID }
}

func newSettings(opts []Option) settings {
	s := settings{
		now:   func() time.Time { return time.Now().UTC() },
		newID: model.NewID,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Store holds the authoritative collection for one entity type plus the
// transient current-selection state.
type Store[E Entity] struct {
	settings
	items   []E
	current *E
}

// New returns an empty store.
func New[E Entity](opts ...Option) *Store[E] {
	return &Store[E]{settings: newSettings(opts)}
}

// Seed replaces the whole collection, preserving the given order.
func (s *Store[E]) Seed(items []E) {
	s.items = append([]E(nil), items...)
}

// List returns the collection in insertion order. The returned slice is
// a copy; callers may reorder it freely.
func (s *Store[E]) List() []E {
	return append([]E(nil), s.items...)
}

// Len returns the number of records in the collection.
func (s *Store[E]) Len() int { return len(s.items) }

// Get returns the record with the given identifier, or ErrNotFound.
// Not-found is a normal outcome the caller must handle, not a failure.
func (s *Store[E]) Get(id string) (E, error) {
	for _, e := range s.items {
		if e.EntityID() == id {
			return e, nil
		}
	}
	var zero E
	return zero, ErrNotFound
}

// SetCurrent marks a record as the focused entity. It has no effect on
// the collection itself.
func (s *Store[E]) SetCurrent(e E) {
	s.current = &e
}

// Current returns the focused entity, if any.
func (s *Store[E]) Current() (E, bool) {
	if s.current == nil {
		var zero E
		return zero, false
	}
	return *s.current, true
}

// ClearCurrent clears the focused entity.
func (s *Store[E]) ClearCurrent() {
	s.current = nil
}

// insert appends a record, keeping insertion order.
func (s *Store[E]) insert(e E) {
	s.items = insertItem(s.items, e)
}

// apply replaces the record with the given id by fn's result. The
// collection is untouched when the id is absent.
func (s *Store[E]) apply(id string, fn func(E) E) (E, error) {
	next, updated, ok := updateItem(s.items, id, fn)
	if !ok {
		var zero E
		return zero, ErrNotFound
	}
	s.items = next
	return updated, nil
}

// remove deletes the record with the given id.
func (s *Store[E]) remove(id string) error {
	next, ok := removeItem(s.items, id)
	if !ok {
		return ErrNotFound
	}
	s.items = next
	if s.current != nil && (*s.current).EntityID() == id {
		s.current = nil
	}
	return nil
}

// --- pure collection reducers ---

func insertItem[E Entity](items []E, e E) []E {
	next := make([]E, len(items), len(items)+1)
	copy(next, items)
	return append(next, e)
}

func updateItem[E Entity](items []E, id string, fn func(E) E) ([]E, E, bool) {
	for i, e := range items {
		if e.EntityID() != id {
			continue
		}
		next := append([]E(nil), items...)
		next[i] = fn(e)
		return next, next[i], true
	}
	var zero E
	return items, zero, false
}

func removeItem[E Entity](items []E, id string) ([]E, bool) {
	for i, e := range items {
		if e.EntityID() != id {
			continue
		}
		next := make([]E, 0, len(items)-1)
		next = append(next, items[:i]...)
		next = append(next, items[i+1:]...)
		return next, true
	}
	return items, false
}
