// Package ingest validates a Problem description and materialises it into a
// ddgraph.Graph: the adapter between an external, already-tokenised problem
// (see textfmt and synth, which produce Problem values) and the graph model
// the rest of this module searches over.
//
// FromProblem assumes nothing about where a Problem came from; it
// revalidates every structural invariant an upstream parser claims to have
// checked (a permutation of operation ids, consistent machine assignment,
// positive durations, distinct non-self predecessors), since trusting an
// upstream parser without checking would make a malformed file's error
// surface someone else's problem. Once the graph is built it runs a rigid,
// path-reconstructing cycle check over the technological arcs and fails
// with ErrCyclic, the only failure mode the engine cannot be asked to
// recover from, before any search ever sees the graph.
package ingest
