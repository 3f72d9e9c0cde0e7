package core

// Entry is the read-only view of one pending dialog request.
type Entry struct {
	ID        string
	Key       string
	Namespace string
	Payload   any
}

// Matches reports whether the entry is addressed by namespace and key.
func (e Entry) Matches(namespace, key string) bool {
	return e.Namespace == namespace && e.Key == key
}

// entry is the store-owned record. The future is the caller's continuation and
// never leaves the store.
type entry struct {
	Entry
	future *Future
}
