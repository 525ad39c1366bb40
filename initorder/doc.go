// Package initorder builds the first feasible machine-order overlay for a
// ddgraph.Graph: a greedy, machine-by-machine dispatch that seeds
// ddgraph.Operation.MachinePrev/MachineNext before the branch-and-bound
// search ever runs.
//
// The dispatch rule: every machine tracks the
// earliest-available time of its already-scheduled operations (c) and the
// smallest release-plus-duration bound among its waiting candidates (h). At
// each step the machine with the smallest h is chosen, and within that
// machine the candidate with the smallest release time is dispatched,
// breaking near-ties in favour of the candidate with the most slack to the
// sink. This is a pure scheduling heuristic, not a search: it never
// backtracks, and its output is only ever a starting point for engine's
// iterative improvement.
package initorder
