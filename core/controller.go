package core

import "fmt"

// Controller opens dialogs under one fixed namespace.
type Controller struct {
	store     *Store
	namespace string
}

// NewController binds namespace to store. A nil store is a wiring mistake and
// panics with ErrNoStore.
func NewController(store *Store, namespace string) Controller {
	if store == nil {
		panic(fmt.Errorf("%w: controller %q", ErrNoStore, namespace))
	}
	return Controller{store: store, namespace: namespace}
}

// Namespace returns the bound namespace.
func (c Controller) Namespace() string { return c.namespace }

// Open forwards to Store.Open with the bound namespace.
func (c Controller) Open(key string, payload any) *Future {
	if c.store == nil {
		panic(fmt.Errorf("%w: zero Controller", ErrNoStore))
	}
	return c.store.Open(c.namespace, key, payload)
}
