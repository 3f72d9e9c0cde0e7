package core

import (
	"context"
	"errors"
	"testing"
)

func expectNoStorePanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrNoStore) {
			t.Fatalf("expected ErrNoStore panic, got %v", r)
		}
	}()
	fn()
}

func TestControllerOutsideProviderPanics(t *testing.T) {
	expectNoStorePanic(t, func() { ControllerFromContext(context.Background(), "main") })
	expectNoStorePanic(t, func() { NewController(nil, "main") })
	expectNoStorePanic(t, func() { Controller{}.Open("profile", nil) })
}

func TestSlotOutsideProviderPanics(t *testing.T) {
	expectNoStorePanic(t, func() { SlotFromContext(context.Background(), "main", "profile") })
	expectNoStorePanic(t, func() { Slot{ID: "x"}.Close(nil) })
	var s *Store
	expectNoStorePanic(t, func() { s.Slot("main", "profile") })
}

func TestProviderSharesOneStore(t *testing.T) {
	store := NewStore()
	ctx := WithStore(context.Background(), store)

	got, ok := FromContext(ctx)
	if !ok || got != store {
		t.Fatalf("expected store from context")
	}
	ctrl := ControllerFromContext(ctx, "main")
	if ctrl.Namespace() != "main" {
		t.Fatalf("namespace mismatch: %s", ctrl.Namespace())
	}
	f := ctrl.Open("profile", "payload")
	slot, ok := SlotFromContext(ctx, "main", "profile")
	if !ok || slot.ID != f.ID() {
		t.Fatalf("slot should address the controller's entry")
	}
	if _, ok := SlotFromContext(ctx, "other", "profile"); ok {
		t.Fatalf("namespaces must not collide")
	}
}

func TestIndependentStoresDoNotShareState(t *testing.T) {
	a, b := NewStore(), NewStore()
	NewController(a, "main").Open("profile", nil)
	if b.Snapshot().Len() != 0 {
		t.Fatalf("stores must be independent")
	}
}
