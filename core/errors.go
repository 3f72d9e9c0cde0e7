package core

import "errors"

var (
	// ErrNoStore is raised (as a panic) when a controller or slot is used
	// without a Store. It signals a wiring mistake at the call site.
	ErrNoStore = errors.New("core: no modal store in scope")

	// ErrNotFound is returned by ResolveWith when the id is not on the stack.
	ErrNotFound = errors.New("core: modal entry not found")

	// ErrAlreadyResolving is returned by ResolveWith when another resolution
	// for the same entry is still in flight.
	ErrAlreadyResolving = errors.New("core: modal entry is already resolving")
)
