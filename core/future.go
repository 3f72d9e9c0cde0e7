package core

import (
	"context"
	"sync"
)

// Future is the pending result of Store.Open. It settles exactly once, when
// its entry is closed, and never carries an error: a declined dialog is a
// normal result (usually nil or false).
type Future struct {
	id    string
	done  chan struct{}
	once  sync.Once
	value any
}

func newFuture(id string) *Future {
	return &Future{id: id, done: make(chan struct{})}
}

// ID returns the id of the entry this future belongs to.
func (f *Future) ID() string { return f.id }

// Done is closed once the future has settled.
func (f *Future) Done() <-chan struct{} { return f.done }

// Value returns the settled result and whether the future has settled.
func (f *Future) Value() (any, bool) {
	select {
	case <-f.done:
		return f.value, true
	default:
		return nil, false
	}
}

// Await blocks until the future settles or ctx is done. Giving up on the
// wait does not close the entry; it stays on the stack.
func (f *Future) Await(ctx context.Context) (any, error) {
	select {
	case <-f.done:
		return f.value, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (f *Future) settle(v any) bool {
	settled := false
	f.once.Do(func() {
		f.value = v
		close(f.done)
		settled = true
	})
	return settled
}

// AwaitAs waits for f and converts the result to R. The boolean is false when
// the entry was closed with a value of another type (or none at all).
func AwaitAs[R any](ctx context.Context, f *Future) (R, bool, error) {
	var zero R
	v, err := f.Await(ctx)
	if err != nil {
		return zero, false, err
	}
	r, ok := v.(R)
	return r, ok, nil
}
