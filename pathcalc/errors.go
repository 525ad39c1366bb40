package pathcalc

import "errors"

// ErrNotAcyclic is returned when a pass cannot drain its queue because the
// arc set it was asked to traverse (technological, optionally plus the live
// machine order) contains a cycle. The ingestion layer is expected to have
// already rejected a cyclic technological graph; seeing this error during
// the search itself points at a bug in the sequencing-edge bookkeeping.
var ErrNotAcyclic = errors.New("pathcalc: arc set is not acyclic")
