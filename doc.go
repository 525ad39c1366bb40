// Package ddg is a branch-and-bound solver for job-shop scheduling problems
// modeled as a Directed Disjunctive Graph (DDG).
//
// A DDG represents a set of machine operations as nodes joined by two kinds
// of arcs: technological (precedence) arcs fixed by the job routing, and
// machine-order (sequencing) arcs chosen by the solver to resolve which
// operation goes first on each shared machine. The solver's job is to pick a
// sequencing order on every machine that minimises the makespan, the
// longest path from the graph's Source to its Sink.
//
// The module is organized as a chain of focused packages, each owning one
// stage of the search:
//
//	ddgraph/   - the operation/connection arena (Source, Sink, machine lists)
//	pathcalc/  - forward and backward longest-path (critical path) evaluation
//	initorder/ - the greedy initial machine-order builder
//	seqedge/   - sequencing edges: conjugation, fixed-edge stack, free edges
//	machbound/ - the single-machine lower/upper bound
//	soltree/   - the decision tree of sequencing choices explored so far
//	engine/    - the control loop tying the above into a branch-and-bound search
//	ingest/    - turning a validated problem description into a graph
//	textfmt/   - the tokenised problem file format read and written by the CLI
//	synth/     - a seedable random problem generator for stress testing
//	cmd/ddgsolve/ - a CLI front-end over engine, ingest, textfmt and synth
//
// Library consumers normally only need ingest, engine and textfmt:
//
//	p, err := textfmt.ReadProblem(r)
//	g, err := ingest.FromProblem(p)
//	e, err := engine.New(g, engine.DefaultOptions())
//	_, err = e.BuildInitialOrder()
//	_, err = e.ComputeLowerBound()
//	sol, err := e.Run(context.Background())
//
//	go get github.com/fejozsi/ddg-go
package ddg
