package pathcalc

import "github.com/fejozsi/ddg-go/ddgraph"

// Run clears the graph's path state and runs both a forward and a backward
// pass, optionally including the live machine-order arcs. This is the
// combined shape both the evaluator and the bound use: a fresh critical-path
// measurement in both directions before inspecting Makespan() or walking
// CriticalPrev.
func Run(g *ddgraph.Graph, includeMachineArcs bool) error {
	if err := Forward(g, includeMachineArcs); err != nil {
		return err
	}
	return Backward(g, includeMachineArcs)
}

// Forward computes, for every operation, the longest path length from
// Source to that operation's start (FwdBefore), and records the critical
// predecessor. CriticalPrev moves only on strict improvement beyond
// Epsilon, so on a tie the earlier-arriving predecessor keeps the pointer;
// technological successors are relaxed before the machine successor, which
// means a machine arc shadowed by an equal technological arc is never
// marked as the critical edge. The free-edge enumerator relies on exactly
// that: a fixed sequencing decision (recorded as a technological arc)
// stops being a branching candidate.
//
// Forward clears all path state first; Backward leaves the forward
// results in place so the two compose into one measurement.
func Forward(g *ddgraph.Graph, includeMachineArcs bool) error {
	g.Reset()
	g.ResetDegrees(includeMachineArcs)
	queue := make([]ddgraph.OpID, 0, len(g.Operations))
	for i := range g.Operations {
		if g.Operations[i].ReadyIn() {
			queue = append(queue, ddgraph.OpID(i))
		}
	}
	processed := 0

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		processed++
		op := g.Op(id)
		arrival := op.FwdBefore + op.Duration

		relax := func(succID ddgraph.OpID, viaMachineEdge bool) {
			succ := g.Op(succID)
			if arrival > succ.FwdBefore+ddgraph.Epsilon {
				succ.FwdBefore = arrival
				succ.CriticalPrev = id
				succ.CriticalIsMachineEdge = viaMachineEdge
			}
			succ.DecrementIn()
			if succ.ReadyIn() {
				queue = append(queue, succID)
			}
		}
		for _, s := range op.Succs {
			relax(s, false)
		}
		if includeMachineArcs && op.MachineNext != ddgraph.NoOp {
			relax(op.MachineNext, true)
		}
	}
	if processed != len(g.Operations) {
		return ErrNotAcyclic
	}
	return nil
}

// Backward computes, for every operation, the longest path length from that
// operation's end to Sink (BackBefore). It does not set CriticalPrev; the
// critical path is always read off the forward pass.
func Backward(g *ddgraph.Graph, includeMachineArcs bool) error {
	g.ResetDegrees(includeMachineArcs)
	queue := make([]ddgraph.OpID, 0, len(g.Operations))
	for i := range g.Operations {
		if g.Operations[i].ReadyOut() {
			queue = append(queue, ddgraph.OpID(i))
		}
	}
	processed := 0

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		processed++
		op := g.Op(id)
		tail := op.BackBefore + op.Duration

		relax := func(predID ddgraph.OpID) {
			pred := g.Op(predID)
			if tail > pred.BackBefore+ddgraph.Epsilon {
				pred.BackBefore = tail
			}
			pred.DecrementOut()
			if pred.ReadyOut() {
				queue = append(queue, predID)
			}
		}
		for _, p := range op.Preds {
			relax(p)
		}
		if includeMachineArcs && op.MachinePrev != ddgraph.NoOp {
			relax(op.MachinePrev)
		}
	}
	if processed != len(g.Operations) {
		return ErrNotAcyclic
	}
	return nil
}

// SecondForward returns the longest completion time among the ways of
// reaching id other than through its machine predecessor: the best
// technological predecessor, or the operation two steps back on the
// machine (which would become the machine predecessor if the edge in
// question were reversed). Requires a completed Forward pass.
func SecondForward(g *ddgraph.Graph, id ddgraph.OpID) float64 {
	op := g.Op(id)
	best := 0.0
	if op.MachinePrev != ddgraph.NoOp {
		if pp := g.Op(op.MachinePrev).MachinePrev; pp != ddgraph.NoOp {
			best = g.Op(pp).FwdBefore + g.Op(pp).Duration
		}
	}
	for _, p := range op.Preds {
		if after := g.Op(p).FwdBefore + g.Op(p).Duration; after > best+ddgraph.Epsilon {
			best = after
		}
	}
	return best
}

// SecondBackward is the mirror of SecondForward: the longest tail from id's
// end to Sink avoiding its machine successor. Requires a completed
// Backward pass.
func SecondBackward(g *ddgraph.Graph, id ddgraph.OpID) float64 {
	op := g.Op(id)
	best := 0.0
	if op.MachineNext != ddgraph.NoOp {
		if nn := g.Op(op.MachineNext).MachineNext; nn != ddgraph.NoOp {
			best = g.Op(nn).BackBefore + g.Op(nn).Duration
		}
	}
	for _, s := range op.Succs {
		if tail := g.Op(s).BackBefore + g.Op(s).Duration; tail > best+ddgraph.Epsilon {
			best = tail
		}
	}
	return best
}
