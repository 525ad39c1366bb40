// Package pathcalc computes longest paths (critical paths) over a
// ddgraph.Graph. A forward pass measures, for every operation, the longest
// path length from Source to that operation's start; a backward pass
// measures the longest path from an operation's end to Sink. Both passes
// can optionally include the live machine-order arcs alongside the
// technological arcs, since the bound needs technology-only paths while
// evaluation needs the full graph.
//
// Every comparison that decides whether a new path is strictly longer than
// the current best uses ddgraph.Epsilon, never a bare >. This keeps the
// critical-predecessor pointer, and therefore every decision the engine
// derives from it, stable across platforms with slightly different
// floating point rounding.
package pathcalc
