package core

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Executor computes the result of a dialog. It may block; ResolveWith runs it
// on the caller's goroutine.
type Executor func(ctx context.Context) (any, error)

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator replaces uuid.NewString as the entry id source.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithLogger sets the logger used for store events.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

type listener struct {
	id uint64
	fn func()
}

// Store owns the global modal stack and the resolving flags. All methods are
// safe for concurrent use; every mutation is one critical section, and
// listeners are called after it is committed, outside the lock.
type Store struct {
	mu        sync.Mutex
	stack     entryStack
	resolving map[string]bool
	snap      *Snapshot
	listeners []listener
	nextSub   uint64
	newID     func() string
	log       *slog.Logger
}

// NewStore returns an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		resolving: map[string]bool{},
		newID:     uuid.NewString,
		log:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	s.snap = newSnapshot(nil, nil)
	return s
}

// Open pushes a new entry on top of the stack and returns its pending result.
// It never fails; the future settles when the entry is closed.
func (s *Store) Open(namespace, key string, payload any) *Future {
	s.mu.Lock()
	id := s.newID()
	if id == "" || s.stack.IndexOf(id) >= 0 {
		id = uuid.NewString()
	}
	e := &entry{
		Entry:  Entry{ID: id, Key: key, Namespace: namespace, Payload: payload},
		future: newFuture(id),
	}
	s.stack.Push(e)
	depth := s.stack.Len()
	fns := s.commitLocked()
	s.mu.Unlock()

	s.log.Debug("modal opened", "id", id, "namespace", namespace, "key", key, "depth", depth)
	notify(fns)
	return e.future
}

// CloseByID removes the entry with id and settles its future with result.
// Unknown ids are a no-op: nothing changes and nobody is notified.
func (s *Store) CloseByID(id string, result any) bool {
	s.mu.Lock()
	e := s.stack.RemoveAt(s.stack.IndexOf(id))
	if e == nil {
		s.mu.Unlock()
		return false
	}
	delete(s.resolving, id)
	fns := s.commitLocked()
	s.mu.Unlock()

	s.finish(e, result, fns)
	return true
}

// CloseTop removes the global top entry, whatever its namespace, and settles
// its future with result. No-op on an empty stack.
func (s *Store) CloseTop(result any) bool {
	s.mu.Lock()
	e := s.stack.Pop()
	if e == nil {
		s.mu.Unlock()
		return false
	}
	delete(s.resolving, e.ID)
	fns := s.commitLocked()
	s.mu.Unlock()

	s.finish(e, result, fns)
	return true
}

// ResolveWith marks id as resolving, runs exec and closes the entry with its
// result. The flag is cleared on every exit path. When exec fails the entry
// stays open and its future stays pending; the error is returned so the
// caller can show it and retry.
func (s *Store) ResolveWith(ctx context.Context, id string, exec Executor) error {
	if err := s.markResolving(id); err != nil {
		return err
	}
	defer s.clearResolving(id)

	var result any
	if exec != nil {
		v, err := exec(ctx)
		if err != nil {
			s.log.Warn("modal executor failed", "id", id, "error", err)
			return fmt.Errorf("resolve modal %s: %w", id, err)
		}
		result = v
	}
	s.CloseByID(id, result)
	return nil
}

// Subscribe registers fn to run after every committed mutation. The returned
// function removes it and may be called more than once.
func (s *Store) Subscribe(fn func()) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	s.mu.Lock()
	s.nextSub++
	id := s.nextSub
	s.listeners = append(s.listeners, listener{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.listeners = slices.DeleteFunc(s.listeners, func(l listener) bool { return l.id == id })
		})
	}
}

// Snapshot returns the current immutable state.
func (s *Store) Snapshot() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

func (s *Store) markResolving(id string) error {
	s.mu.Lock()
	if s.stack.IndexOf(id) < 0 {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if s.resolving[id] {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrAlreadyResolving, id)
	}
	s.resolving[id] = true
	fns := s.commitLocked()
	s.mu.Unlock()

	notify(fns)
	return nil
}

func (s *Store) clearResolving(id string) {
	s.mu.Lock()
	if !s.resolving[id] {
		s.mu.Unlock()
		return
	}
	delete(s.resolving, id)
	fns := s.commitLocked()
	s.mu.Unlock()

	notify(fns)
}

func (s *Store) finish(e *entry, result any, fns []func()) {
	s.log.Debug("modal closed", "id", e.ID, "namespace", e.Namespace, "key", e.Key)
	notify(fns)
	e.future.settle(result)
}

// commitLocked publishes a new snapshot and returns the listeners to notify.
func (s *Store) commitLocked() []func() {
	s.snap = newSnapshot(s.stack.views(), s.resolving)
	fns := make([]func(), len(s.listeners))
	for i, l := range s.listeners {
		fns[i] = l.fn
	}
	return fns
}

func notify(fns []func()) {
	for _, fn := range fns {
		fn()
	}
}
