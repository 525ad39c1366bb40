// Package ddgraph holds the arena representation of a Directed Disjunctive
// Graph: a flat slice of Operation values addressed by compact OpID indices,
// plus the Source and Sink sentinels every graph carries.
//
// Operations never hold pointers to each other. Every relationship
// (technological precedence, the live machine order, the best machine
// order found so far, the critical-path predecessor) is stored as an OpID
// index into the same Operations slice, or NoOp when absent. An arena of
// indices is simpler to copy, snapshot and reason about than a web of live
// pointers, while keeping the same O(1) neighbour-walk cost.
package ddgraph
