// Package core contains the modal stack store and the read-side helpers built
// on it.
//
// Allowed here:
// - the Store: one ordered stack of pending dialog entries shared by every
//   namespace, plus the per-entry resolving flags
// - change subscription and immutable snapshots
// - namespace controllers, slot lookup and the context-scoped provider
//
// Not allowed here:
// - rendering, key handling or any bubbletea types (see package app)
// - persistence of stack state
package core
