// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (panels, stacked popup compositor)
//
// Not allowed here:
// - key handling, store access or dialog state
package widgets
