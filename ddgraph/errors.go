package ddgraph

import "errors"

// Sentinel errors returned by this package. Callers should use errors.Is,
// never string comparison, to classify a failure.
var (
	// ErrInternal marks a state the algorithms never expect to reach. A
	// caller seeing this should treat it as a bug, not a bad input. No
	// function in this module returns it: an out-of-range OpID panics in Op
	// or yields ErrUnknownOp from Lookup, and a relaxation pass that cannot
	// drain returns pathcalc.ErrNotAcyclic.
	ErrInternal = errors.New("ddgraph: internal invariant violated")

	// ErrUnknownOp is returned when an OpID does not index a live Operation.
	ErrUnknownOp = errors.New("ddgraph: unknown operation id")
)
