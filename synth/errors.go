package synth

import "errors"

// ErrInvalidSize is returned by Generate when the requested shape is not a
// valid problem: G >= 1 and M >= G must hold.
var ErrInvalidSize = errors.New("synth: invalid operation/machine count")
