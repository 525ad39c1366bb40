// Package seqedge models the sequencing (machine-order) arcs the search
// chooses between, and the operations the branch-and-bound loop performs
// on them: conjugation (flipping an arc's direction to move forward in the
// decision tree), fixing (committing an orientation as a technological arc
// so later passes treat it as settled), and their inverses for
// backtracking.
//
// A free edge is a machine-order transition on the current critical path
// whose orientation the solver can still contest. Free edges are
// discovered by walking the critical-path predecessor chain from Sink back
// to Source (ddgraph.Operation.CriticalPrev), computing for each candidate
// the three delta quantities a, b and c, and keeping the largest: the
// amount a conjugation would actually move the makespan by.
package seqedge
