package ingest

import (
	"fmt"

	"github.com/fejozsi/ddg-go/ddgraph"
)

// FromProblem validates p end to end and builds a ddgraph.Graph from it. It
// fails with ErrBadInput for any structural or value problem
// and with ErrCyclic if the resulting technological graph contains a cycle.
func FromProblem(p Problem) (*ddgraph.Graph, error) {
	if err := validateCounts(p); err != nil {
		return nil, err
	}
	if err := validateMachineOrder(p); err != nil {
		return nil, err
	}
	if err := validateOperations(p); err != nil {
		return nil, err
	}

	g, err := build(p)
	if err != nil {
		return nil, err
	}

	if cyc := detectCycle(g); cyc != nil {
		return nil, fmt.Errorf("%w: %v", ErrCyclic, cyc)
	}
	return g, nil
}

// validateCounts checks stage-1 structural sizes: M, G and MachineCounts,
// before anything downstream needs to index by them.
func validateCounts(p Problem) error {
	if p.M < 1 {
		return fmt.Errorf("%w: M must be >= 1, got %d", ErrBadInput, p.M)
	}
	if p.G < 1 || p.G > p.M {
		return fmt.Errorf("%w: G must be in 1..M, got %d (M=%d)", ErrBadInput, p.G, p.M)
	}
	if len(p.MachineCounts) != p.G {
		return fmt.Errorf("%w: expected %d machine counts, got %d", ErrBadInput, p.G, len(p.MachineCounts))
	}
	sum := 0
	for i, c := range p.MachineCounts {
		if c < 1 {
			return fmt.Errorf("%w: machine %d has non-positive operation count %d", ErrBadInput, i+1, c)
		}
		sum += c
	}
	if sum != p.M {
		return fmt.Errorf("%w: machine counts sum to %d, want %d", ErrBadInput, sum, p.M)
	}
	return nil
}

// validateMachineOrder checks that the grouped-by-machine identifier record
// is a permutation of 1..M consistent with MachineCounts' grouping sizes.
func validateMachineOrder(p Problem) error {
	if len(p.MachineOrder) != p.M {
		return fmt.Errorf("%w: expected %d operation ids in machine order, got %d", ErrBadInput, p.M, len(p.MachineOrder))
	}
	seen := make(map[int]bool, p.M)
	for _, id := range p.MachineOrder {
		if id < 1 || id > p.M {
			return fmt.Errorf("%w: machine-order id %d out of range 1..%d", ErrBadInput, id, p.M)
		}
		if seen[id] {
			return fmt.Errorf("%w: machine-order id %d repeated", ErrBadInput, id)
		}
		seen[id] = true
	}
	return nil
}

// validateOperations checks stage-3: each OperationInput record's id
// range/uniqueness, machine assignment, positive duration, and predecessor
// list, and cross-checks machine assignment against MachineOrder's
// grouping.
func validateOperations(p Problem) error {
	if len(p.Operations) != p.M {
		return fmt.Errorf("%w: expected %d operation records, got %d", ErrBadInput, p.M, len(p.Operations))
	}

	machineOf := make(map[int]int, p.M) // operation id -> 1-based machine, from MachineOrder grouping
	idx := 0
	for m, count := range p.MachineCounts {
		for i := 0; i < count; i++ {
			machineOf[p.MachineOrder[idx]] = m + 1
			idx++
		}
	}

	seenIDs := make(map[int]bool, p.M)
	for _, op := range p.Operations {
		if op.ID < 1 || op.ID > p.M {
			return fmt.Errorf("%w: operation id %d out of range 1..%d", ErrBadInput, op.ID, p.M)
		}
		if seenIDs[op.ID] {
			return fmt.Errorf("%w: operation id %d duplicated", ErrBadInput, op.ID)
		}
		seenIDs[op.ID] = true

		if op.Machine < 1 || op.Machine > p.G {
			return fmt.Errorf("%w: operation %d assigned to machine %d out of range 1..%d", ErrBadInput, op.ID, op.Machine, p.G)
		}
		if want := machineOf[op.ID]; want != op.Machine {
			return fmt.Errorf("%w: operation %d assigned to machine %d, but machine order groups it under machine %d", ErrBadInput, op.ID, op.Machine, want)
		}
		if op.Duration <= 0 {
			return fmt.Errorf("%w: operation %d has non-positive duration %v", ErrBadInput, op.ID, op.Duration)
		}

		seenPred := make(map[int]bool, len(op.Predecessors))
		for _, pred := range op.Predecessors {
			if pred == op.ID {
				return fmt.Errorf("%w: operation %d lists itself as a predecessor", ErrBadInput, op.ID)
			}
			if pred < 1 || pred > p.M {
				return fmt.Errorf("%w: operation %d has predecessor %d out of range 1..%d", ErrBadInput, op.ID, pred, p.M)
			}
			if seenPred[pred] {
				return fmt.Errorf("%w: operation %d lists predecessor %d twice", ErrBadInput, op.ID, pred)
			}
			seenPred[pred] = true
		}
	}
	if len(seenIDs) != p.M {
		return fmt.Errorf("%w: operation records do not cover every id 1..%d", ErrBadInput, p.M)
	}
	return nil
}

// build materialises a validated Problem into a ddgraph.Graph: one
// Operation per record (external 1-based id -> ddgraph.OpID offset by the
// two sentinels), every predecessor arc, and Source/Sink attachment for
// operations with no technological predecessor/successor.
func build(p Problem) (*ddgraph.Graph, error) {
	g := ddgraph.New(p.G)

	// External id i (1-based) maps to ddgraph.OpID(i+1), since OpID 0/1 are
	// Source/Sink.
	byID := make(map[int]ddgraph.OpID, p.M)
	opByID := make(map[int]OperationInput, p.M)
	for _, op := range p.Operations {
		opByID[op.ID] = op
	}
	for id := 1; id <= p.M; id++ {
		op := opByID[id]
		opID := g.AddOperation(op.Machine-1, op.Duration)
		byID[id] = opID
	}
	for id := 1; id <= p.M; id++ {
		op := opByID[id]
		for _, pred := range op.Predecessors {
			g.AddTechnological(byID[pred], byID[id])
		}
	}
	for id := 1; id <= p.M; id++ {
		opID := byID[id]
		op := g.Op(opID)
		if len(op.Preds) == 0 {
			g.AddTechnological(ddgraph.SourceID, opID)
		}
		if len(op.Succs) == 0 {
			g.AddTechnological(opID, ddgraph.SinkID)
		}
	}
	return g, nil
}

// detectCycle runs a colour-marking DFS over the technological Succs arcs
// and returns the first cycle found as an ordered list of OpIDs (closing on
// the repeated id), or nil if the graph is acyclic. A path-reconstructing
// check run once after construction, distinct from pathcalc's
// BFS-relaxation cycle detection used during the search itself.
func detectCycle(g *ddgraph.Graph) []ddgraph.OpID {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make([]int8, len(g.Operations))
	var path []ddgraph.OpID
	var found []ddgraph.OpID

	var visit func(id ddgraph.OpID)
	visit = func(id ddgraph.OpID) {
		if found != nil {
			return
		}
		color[id] = gray
		path = append(path, id)
		for _, s := range g.Op(id).Succs {
			if found != nil {
				return
			}
			switch color[s] {
			case gray:
				start := 0
				for i, p := range path {
					if p == s {
						start = i
						break
					}
				}
				found = append(append([]ddgraph.OpID{}, path[start:]...), s)
				return
			case white:
				visit(s)
			}
		}
		if found == nil {
			color[id] = black
			path = path[:len(path)-1]
		}
	}

	for id := range g.Operations {
		if color[id] == white {
			visit(ddgraph.OpID(id))
		}
		if found != nil {
			return found
		}
	}
	return nil
}
