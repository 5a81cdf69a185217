package domain

import "errors"

// Domain errors represent business logic failures.
// The taxonomy is deliberately narrow: routine non-matches (unknown path,
// unresolvable segment, empty input) are not errors at all and yield
// empty results. Only genuinely invalid invocations surface as errors.
var (
	// ErrInvalidInput indicates a programmer error such as a nil corpus.
	// This is the only failure class that propagates to the caller as a
	// hard error.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates a requested entity does not exist.
	// Used by corpus adapters for lookups and removals, never by the
	// search core for unmatched paths.
	ErrNotFound = errors.New("not found")
)
