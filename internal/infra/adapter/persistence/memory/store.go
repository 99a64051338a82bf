// Package memory implements the repository interfaces on top of a single
// in-process Store. The Store owns the author, magazine and article registries
// for the lifetime of the process (or of a test) and is torn down with Close.
package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"magazine-catalog/internal/domain/entity"
)

var (
	// ErrStoreClosed is returned by every repository call after Close.
	ErrStoreClosed = errors.New("store closed")

	// ErrAlreadyRegistered is returned when an entity with the same ID is created twice.
	ErrAlreadyRegistered = errors.New("entity already registered")
)

// registry is an insertion-ordered collection with an ID index.
type registry[T any] struct {
	items []T
	index map[uuid.UUID]int
}

func newRegistry[T any]() registry[T] {
	return registry[T]{index: make(map[uuid.UUID]int)}
}

func (r *registry[T]) add(id uuid.UUID, item T) error {
	if _, ok := r.index[id]; ok {
		return ErrAlreadyRegistered
	}
	r.index[id] = len(r.items)
	r.items = append(r.items, item)
	return nil
}

func (r *registry[T]) get(id uuid.UUID) (T, bool) {
	i, ok := r.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return r.items[i], true
}

func (r *registry[T]) has(id uuid.UUID) bool {
	_, ok := r.index[id]
	return ok
}

// snapshot returns a copy so callers can range without holding the lock.
func (r *registry[T]) snapshot() []T {
	out := make([]T, len(r.items))
	copy(out, r.items)
	return out
}

// Store is the process-wide owner of the catalog registries.
//
// The collections are guarded by an RWMutex; the entities themselves are not,
// so concurrent mutation of a single entity must be coordinated by the caller.
type Store struct {
	mu        sync.RWMutex
	closed    bool
	authors   registry[*entity.Author]
	magazines registry[*entity.Magazine]
	articles  registry[*entity.Article]
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		authors:   newRegistry[*entity.Author](),
		magazines: newRegistry[*entity.Magazine](),
		articles:  newRegistry[*entity.Article](),
	}
}

// Close empties every registry. Later repository calls fail with ErrStoreClosed.
// Closing an already closed store is a no-op.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	s.authors = newRegistry[*entity.Author]()
	s.magazines = newRegistry[*entity.Magazine]()
	s.articles = newRegistry[*entity.Article]()
	return nil
}

// read runs fn under the read lock after checking ctx and the closed flag.
func (s *Store) read(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrStoreClosed
	}
	return fn()
}

// write runs fn under the write lock after checking ctx and the closed flag.
func (s *Store) write(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}
	return fn()
}
