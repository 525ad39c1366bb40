// Package engine drives the branch-and-bound search: it ties together
// pathcalc, seqedge, machbound and soltree into a single-threaded,
// cooperatively-yielding control loop (enumerate free edges, try
// deepening, bound, backtrack if the bound rules out improvement).
// Engine.Run drains the search to completion;
// Engine.Iterate performs exactly one control-loop step for
// callers (a GUI, a test) that want to drive the search themselves and
// inspect state between steps.
//
// Engine holds no goroutines of its own. RequestPause and RequestCancel set
// atomic flags that are only ever observed at iteration boundaries, per the
// concurrency contract: a caller running the engine on its own goroutine may
// call these from any other goroutine without additional synchronisation,
// but must not call Iterate or Run concurrently with itself.
package engine
