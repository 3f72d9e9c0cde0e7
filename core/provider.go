package core

import (
	"context"
	"fmt"
)

type storeKey struct{}

// WithStore returns a context that carries store for the helpers below.
func WithStore(ctx context.Context, store *Store) context.Context {
	return context.WithValue(ctx, storeKey{}, store)
}

// FromContext returns the store carried by ctx.
func FromContext(ctx context.Context) (*Store, bool) {
	if ctx == nil {
		return nil, false
	}
	s, ok := ctx.Value(storeKey{}).(*Store)
	return s, ok && s != nil
}

// MustFromContext is FromContext for call sites that cannot work without a
// store. It panics with ErrNoStore.
func MustFromContext(ctx context.Context) *Store {
	s, ok := FromContext(ctx)
	if !ok {
		panic(fmt.Errorf("%w: context has no store, wrap it with core.WithStore", ErrNoStore))
	}
	return s
}

// ControllerFromContext builds a controller on the context's store.
func ControllerFromContext(ctx context.Context, namespace string) Controller {
	return NewController(MustFromContext(ctx), namespace)
}

// SlotFromContext resolves a slot on the context's store.
func SlotFromContext(ctx context.Context, namespace, key string) (Slot, bool) {
	return MustFromContext(ctx).Slot(namespace, key)
}
