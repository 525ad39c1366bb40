package initorder

import (
	"math"

	"github.com/fejozsi/ddg-go/ddgraph"
	"github.com/fejozsi/ddg-go/pathcalc"
)

// machineState tracks one machine's dispatch bookkeeping while Build walks
// the graph: c is the completion time of the last operation appended to
// this machine, h is the smallest release-plus-duration bound among the
// machine's currently waiting candidates, and tail is the last scheduled
// operation (ddgraph.NoOp before the machine has received its first one).
type machineState struct {
	candidates []ddgraph.OpID
	c          float64
	h          float64
	tail       ddgraph.OpID
}

// Build installs a first feasible machine order into g (MachinePrev/
// MachineNext for every operation). g must already have its
// technological arcs and Source/Sink attachment in place; Build runs a
// machine-arc-free backward pass itself to obtain the back_before values
// its tie-break rule needs.
//
// Build never backtracks: a technological cycle makes it unable to drain
// its ready-queue, reported as pathcalc.ErrNotAcyclic. Ingestion is
// expected to have already rejected a cyclic graph, so seeing this error
// here indicates a bug upstream.
func Build(g *ddgraph.Graph) error {
	g.Reset()
	if err := pathcalc.Backward(g, false); err != nil {
		return err
	}
	g.ResetDegrees(false)

	states := make([]machineState, len(g.Machines))
	for i := range states {
		states[i].h = math.MaxFloat64
		states[i].tail = ddgraph.NoOp
	}

	source := g.Op(ddgraph.SourceID)
	source.FwdBefore = 0
	for _, id := range source.Succs {
		op := g.Op(id)
		op.DecrementIn()
		op.FwdBefore = 0
		enqueue(states, op, id)
	}

	sinkReached := false
	for !sinkReached {
		idx := pickMachine(states)
		if states[idx].h == math.MaxFloat64 {
			return pathcalc.ErrNotAcyclic
		}
		op, opID := pickCandidate(g, &states[idx])

		prev := states[idx].tail
		if prev != ddgraph.NoOp {
			g.Op(prev).MachineNext = opID
		}
		op.MachinePrev = prev
		states[idx].tail = opID

		c := op.FwdBefore + op.Duration
		states[idx].c = c

		states[idx].h = math.MaxFloat64
		for _, candID := range states[idx].candidates {
			cand := g.Op(candID)
			if c > cand.FwdBefore {
				cand.FwdBefore = c
			}
			if bound := cand.FwdBefore + cand.Duration; bound < states[idx].h {
				states[idx].h = bound
			}
		}

		for _, succID := range op.Succs {
			succ := g.Op(succID)
			if c > succ.FwdBefore {
				succ.FwdBefore = c
			}
			succ.DecrementIn()
			if !succ.ReadyIn() {
				continue
			}
			if succID == ddgraph.SinkID {
				sinkReached = true
				continue
			}
			enqueue(states, succ, succID)
		}
	}

	return nil
}

// enqueue adds op to its machine's candidate set, pulling its release time
// up to the machine's own clock and tightening the machine's h bound.
func enqueue(states []machineState, op *ddgraph.Operation, id ddgraph.OpID) {
	st := &states[op.Machine]
	if st.c > op.FwdBefore {
		op.FwdBefore = st.c
	}
	st.candidates = append(st.candidates, id)
	if bound := op.FwdBefore + op.Duration; bound < st.h {
		st.h = bound
	}
}

// pickMachine returns the index of the machine with the smallest h,
// keeping the earliest index on ties.
func pickMachine(states []machineState) int {
	best := 0
	for i := 1; i < len(states); i++ {
		if states[i].h < states[best].h {
			best = i
		}
	}
	return best
}

// pickCandidate removes and returns the next operation to schedule on
// machine st: among the candidates whose release time is at most st.h minus
// Epsilon, the one with the largest back_before (most slack to the sink),
// breaking ties by smaller fwd_before then smaller duration.
func pickCandidate(g *ddgraph.Graph, st *machineState) (*ddgraph.Operation, ddgraph.OpID) {
	bestPos := -1
	for i, id := range st.candidates {
		op := g.Op(id)
		if op.FwdBefore > st.h-ddgraph.Epsilon {
			continue
		}
		if bestPos == -1 {
			bestPos = i
			continue
		}
		best := g.Op(st.candidates[bestPos])
		switch {
		case op.BackBefore > best.BackBefore+ddgraph.Epsilon:
			bestPos = i
		case op.BackBefore < best.BackBefore-ddgraph.Epsilon:
		case op.FwdBefore < best.FwdBefore-ddgraph.Epsilon:
			bestPos = i
		case op.FwdBefore > best.FwdBefore+ddgraph.Epsilon:
		case op.Duration < best.Duration:
			bestPos = i
		}
	}
	id := st.candidates[bestPos]
	st.candidates = append(st.candidates[:bestPos], st.candidates[bestPos+1:]...)
	return g.Op(id), id
}
