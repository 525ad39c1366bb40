// Package synth generates random, guaranteed-acyclic Directed Disjunctive
// Graph problems for stress and regression testing. Machine assignment is
// round-robin or uniform depending on the instance's shape, durations are
// sampled uniformly, and technological predecessors are added
// probabilistically and then partially cleared. A final cycle-breaking pass
// guarantees the output is always a valid (acyclic) Problem.
package synth
