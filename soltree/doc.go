// Package soltree maintains the decision tree the branch-and-bound search
// walks: a stack of nodes, each carrying the free-edge list available for
// branching at that point. Moving forward fixes the chosen edge and pushes
// a new node; backtracking undoes the most recent reversible choice and
// pops back to the parent, which keeps whatever free edges it has not yet
// spent. The node stack and the fixed-edge stack advance and retreat
// together, so the depth above the root always equals the number of
// choices whose alternative orientation is still unexplored.
package soltree
