package core

import (
	"context"
	"fmt"
)

// Slot is the handle a renderer uses for the addressable entry of a
// namespace/key pair. It is a value taken from one snapshot; look it up again
// after the store changes.
type Slot struct {
	ID          string
	Namespace   string
	Key         string
	Payload     any
	Position    int
	IsTop       bool
	IsResolving bool

	store *Store
	snap  *Snapshot
}

// Slot resolves namespace/key against the current snapshot.
func (s *Store) Slot(namespace, key string) (Slot, bool) {
	if s == nil {
		panic(fmt.Errorf("%w: slot %s/%s", ErrNoStore, namespace, key))
	}
	return SlotIn(s, s.Snapshot(), namespace, key)
}

// SlotIn resolves namespace/key against snap. The top-down scan means a newer
// entry with the same address shadows older ones.
func SlotIn(store *Store, snap *Snapshot, namespace, key string) (Slot, bool) {
	if store == nil {
		panic(fmt.Errorf("%w: slot %s/%s", ErrNoStore, namespace, key))
	}
	e, pos, ok := snap.Find(namespace, key)
	if !ok {
		return Slot{}, false
	}
	return Slot{
		ID:          e.ID,
		Namespace:   e.Namespace,
		Key:         e.Key,
		Payload:     e.Payload,
		Position:    pos,
		IsTop:       pos == snap.Len()-1,
		IsResolving: snap.IsResolving(e.ID),
		store:       store,
		snap:        snap,
	}, true
}

// Close closes the slot's entry with result.
func (sl Slot) Close(result any) bool {
	return sl.mustStore().CloseByID(sl.ID, result)
}

// ResolveWith runs exec for the slot's entry. See Store.ResolveWith.
func (sl Slot) ResolveWith(ctx context.Context, exec Executor) error {
	return sl.mustStore().ResolveWith(ctx, sl.ID, exec)
}

// PreviousPayload returns the payload of the nearest entry below this one in
// the same namespace.
func (sl Slot) PreviousPayload() (any, bool) {
	if sl.snap == nil {
		return nil, false
	}
	return sl.snap.PreviousPayload(sl.Namespace, sl.Position)
}

func (sl Slot) mustStore() *Store {
	if sl.store == nil {
		panic(fmt.Errorf("%w: zero Slot", ErrNoStore))
	}
	return sl.store
}

// PayloadAs returns the slot payload as P.
func PayloadAs[P any](sl Slot) (P, bool) {
	p, ok := sl.Payload.(P)
	return p, ok
}

// PreviousPayloadAs is PreviousPayload converted to P.
func PreviousPayloadAs[P any](sl Slot) (P, bool) {
	var zero P
	v, ok := sl.PreviousPayload()
	if !ok {
		return zero, false
	}
	p, ok := v.(P)
	return p, ok
}
