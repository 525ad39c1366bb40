package engine

import "errors"

// ErrNoMachines is returned by New when the graph carries no machines at
// all, which makes a machine-order search meaningless.
var ErrNoMachines = errors.New("engine: graph has no machines")
