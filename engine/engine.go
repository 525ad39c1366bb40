package engine

import (
	"context"
	"math"
	"sync/atomic"
	"time"

	"github.com/fejozsi/ddg-go/ddgraph"
	"github.com/fejozsi/ddg-go/initorder"
	"github.com/fejozsi/ddg-go/machbound"
	"github.com/fejozsi/ddg-go/pathcalc"
	"github.com/fejozsi/ddg-go/seqedge"
	"github.com/fejozsi/ddg-go/soltree"
)

// Engine drives one branch-and-bound search over a single ddgraph.Graph. It
// owns no goroutines; RequestPause/RequestCancel set flags only observed at
// the next iteration boundary.
type Engine struct {
	g    *ddgraph.Graph
	tree *soltree.Tree
	opts Options

	counters Counters

	bestMakespan float64
	// reference is the bar a lower bound has to clear to prune: the best
	// makespan minus Epsilon, or effectively infinite until the first
	// incumbent is adopted.
	reference       float64
	initialLower    float64
	hopedUpperBound float64
	pastPureSearch  bool

	started     time.Time
	initialised bool
	paused      atomic.Bool
	canceled    atomic.Bool
}

// New builds an Engine ready to search g. g must already have a feasible
// initial machine order installed (see BuildInitialOrder) before Run or
// Iterate is called the first time; New does not build one itself so
// callers can inspect or log the bare graph first.
func New(g *ddgraph.Graph, opts Options) (*Engine, error) {
	if len(g.Machines) == 0 {
		return nil, ErrNoMachines
	}
	if opts.Logger == nil {
		opts.Logger = DefaultOptions().Logger
	}
	if opts.HopedUpperBoundFactor == 0 {
		opts.HopedUpperBoundFactor = DefaultHopedUpperBoundFactor
	}
	return &Engine{
		g:            g,
		tree:         soltree.New(),
		opts:         opts,
		bestMakespan: math.MaxFloat64,
		reference:    math.MaxFloat64,
		started:      time.Now(),
	}, nil
}

// BuildInitialOrder installs a feasible machine order on g via the greedy
// dispatch heuristic (package initorder), then runs a forward pass and
// returns the resulting makespan. Must be called once before the first
// Run/Iterate, unless the caller has already installed an order some other
// way (e.g. one read back from a serialized Solution).
func (e *Engine) BuildInitialOrder() (float64, error) {
	if err := initorder.Build(e.g); err != nil {
		return 0, err
	}
	if err := pathcalc.Forward(e.g, true); err != nil {
		return 0, err
	}
	return e.g.Makespan(), nil
}

// ComputeLowerBound runs the single-machine bound over every machine on
// machine-arc-free path lengths and records the result as the search's
// initial lower bound and the base of the hoped-upper-bound threshold.
// Must be called once, before the first iteration.
func (e *Engine) ComputeLowerBound() (float64, error) {
	res, err := machbound.Aggregate(e.g, math.MaxFloat64)
	if err != nil {
		return 0, err
	}
	e.initialLower = res.Lower
	e.hopedUpperBound = res.Lower * e.opts.HopedUpperBoundFactor
	return res.Lower, nil
}

// RequestPause asks the engine to stop after completing its current
// iteration, keeping all search state so a later Run picks up where it
// left off. Safe to call from any goroutine.
func (e *Engine) RequestPause() { e.paused.Store(true) }

// RequestCancel asks the engine to unwind any unresolved fixed edges and
// stop at the next iteration boundary. Safe to call from any goroutine.
func (e *Engine) RequestCancel() { e.canceled.Store(true) }

// Counters returns a copy of the engine's current search statistics.
func (e *Engine) Counters() Counters { return e.counters }

// BestMakespan returns the best makespan adopted so far: math.MaxFloat64
// until the first Run or Iterate call adopts the installed initial order.
func (e *Engine) BestMakespan() float64 { return e.bestMakespan }

// Snapshot returns the current best order, makespan and counters without
// disturbing the search. Only meaningful between iterations: callers
// driving Iterate themselves read it whenever they own control, callers
// using Run must pause first.
func (e *Engine) Snapshot() Solution { return e.solution(ReasonRunning) }

// Run drives iterations until the search terminates or ctx is cancelled,
// and returns the resulting Solution. The first call must be preceded by
// installing an initial order and calling ComputeLowerBound; Run itself
// performs the first evaluation (adopting the initial order as the first
// incumbent) before entering the iteration loop.
func (e *Engine) Run(ctx context.Context) (Solution, error) {
	if !e.initialised {
		e.started = time.Now()
		if err := e.evaluateInitial(); err != nil {
			return Solution{}, err
		}
		e.initialised = true
	}

	reason := ReasonRunning
	for reason == ReasonRunning {
		if ctx.Err() != nil || e.canceled.Load() {
			reason = ReasonCancelled
			break
		}
		if e.paused.Load() {
			e.paused.Store(false)
			break
		}

		outcome, err := e.Iterate()
		if err != nil {
			return Solution{}, err
		}
		if outcome.Kind == Terminated {
			reason = outcome.Reason
		}
	}
	if reason == ReasonCancelled {
		e.finish()
	}
	// reason stays ReasonRunning when the loop exited because of a pause
	// request rather than termination; the caller may Run again later.
	return e.solution(reason), nil
}

// OutcomeKind classifies what one Iterate call achieved.
type OutcomeKind int

const (
	// Progress means a new decision node was evaluated without improving
	// the incumbent.
	Progress OutcomeKind = iota
	// NewBest means the evaluation improved on the incumbent and the
	// machine order was adopted.
	NewBest
	// Pruned means at least one bound test cut a subtree off on the way
	// to the evaluated node.
	Pruned
	// Terminated means the search is over; Reason says why.
	Terminated
)

// IterationOutcome reports what one Iterate call did.
type IterationOutcome struct {
	Kind   OutcomeKind
	Reason Reason
}

// Iterate performs exactly one control-loop step: enumerate branching
// candidates at the current node, move forward (backtracking first if the
// node is exhausted or too deep), bound the new node and keep backtracking
// while the bound proves it hopeless, then evaluate and possibly adopt.
// The step is atomic with respect to any observer calling Counters or
// BestMakespan between Iterate calls. When Run has not already done so,
// the first call adopts the installed machine order as the first incumbent
// before taking its step.
func (e *Engine) Iterate() (IterationOutcome, error) {
	start := time.Now()
	defer func() { e.opts.Metrics.observeIteration(time.Since(start)) }()

	if !e.initialised {
		e.started = time.Now()
		if err := e.evaluateInitial(); err != nil {
			return IterationOutcome{}, err
		}
		e.initialised = true
	}

	if e.opts.MaxRuntime > 0 && time.Since(e.started) >= e.opts.MaxRuntime {
		e.finish()
		return IterationOutcome{Kind: Terminated, Reason: ReasonTimeout}, nil
	}
	if e.bestMakespan <= e.initialLower+ddgraph.Epsilon {
		e.finish()
		return IterationOutcome{Kind: Terminated, Reason: ReasonOptimal}, nil
	}

	e.counters.Iterations++
	if e.opts.LogEvery && shouldLogIteration(e.counters.Iterations) {
		e.opts.Logger.Debug("iteration",
			"n", e.counters.Iterations, "depth", e.tree.Depth(), "best", e.bestMakespan)
	}

	// The node entered by the previous iteration has no candidate list
	// yet; give it one unless the depth cap forbids deepening anyway.
	deepen := e.canDeepen()
	if deepen {
		if err := pathcalc.Run(e.g, true); err != nil {
			return IterationOutcome{}, err
		}
		e.tree.SetFreeEdges(seqedge.Enumerate(e.g))
	}

	moved := false
	if deepen && e.tree.HasFreeEdge() {
		e.moveForward()
		moved = true
	} else {
		var err error
		if moved, err = e.searchBackward(); err != nil {
			return IterationOutcome{}, err
		}
	}

	pruned := false
	for moved {
		res, err := machbound.Aggregate(e.g, e.reference)
		if err != nil {
			return IterationOutcome{}, err
		}
		if !res.Prunes {
			break
		}
		pruned = true
		if moved, err = e.searchBackward(); err != nil {
			return IterationOutcome{}, err
		}
	}
	if !moved {
		e.finish()
		return IterationOutcome{Kind: Terminated, Reason: ReasonExhausted}, nil
	}

	adopted, err := e.evaluate()
	if err != nil {
		return IterationOutcome{}, err
	}
	switch {
	case adopted:
		return IterationOutcome{Kind: NewBest}, nil
	case pruned:
		return IterationOutcome{Kind: Pruned}, nil
	default:
		return IterationOutcome{Kind: Progress}, nil
	}
}

// canDeepen reports whether the depth cap allows another forward move,
// tracking the deepest level seen and counting every refusal. MaxDepth
// counts decision nodes including the root, so a cap of D blocks branching
// once D-1 edges are fixed; MaxDepth 1 never branches at all.
func (e *Engine) canDeepen() bool {
	if d := e.tree.Depth(); d > e.counters.MaxDepthSeen {
		e.counters.MaxDepthSeen = d
	}
	if e.opts.MaxDepth > 0 && e.tree.Depth() >= e.opts.MaxDepth-1 {
		e.counters.ReachedMaxDepth++
		return false
	}
	return true
}

// moveForward conjugates and fixes the current node's smallest-delta free
// edge and descends into the decision node that choice creates.
func (e *Engine) moveForward() {
	edge := e.tree.TakeFirstFreeEdge()
	e.tree.MoveForward(e.g, edge)
	e.counters.Solutions++
}

// searchBackward climbs the decision tree until it finds a node whose
// remaining free edges are still worth trying, then immediately moves
// forward along the best of them. At each revisited node with more than 5
// free edges, once the search has left its pure stage, the bound is
// re-invoked (repeated bounding): if it proves the node hopeless the climb
// continues instead of branching. Returns false when the root is reached
// with nothing left, which ends the search.
func (e *Engine) searchBackward() (bool, error) {
	for stepBack := true; stepBack; {
		if e.tree.AtRoot() {
			return false, nil
		}
		e.tree.Backtrack(e.g)
		e.counters.Backtracks++
		e.opts.Metrics.observeBacktrack()

		if !e.tree.HasFreeEdge() {
			continue
		}
		success := false
		if e.pastPureSearch && len(e.tree.Current().FreeEdges) > 5 {
			res, err := machbound.Aggregate(e.g, e.reference)
			if err != nil {
				return false, err
			}
			success = res.Prunes
			e.counters.RepeatedBoundAttempts++
			e.opts.Metrics.observeRepeatedBound(success)
			if success {
				e.counters.RepeatedBoundSuccesses++
			}
		}
		if !success {
			stepBack = false
		}
	}
	e.moveForward()
	return true, nil
}

// evaluate runs a forward pass over the full graph (machine arcs included)
// and adopts the order as the new incumbent when it beats the best known
// makespan. Reports whether it adopted.
func (e *Engine) evaluate() (bool, error) {
	if err := pathcalc.Forward(e.g, true); err != nil {
		return false, err
	}
	e.counters.Evaluations++
	e.opts.Metrics.observeEvaluation()

	makespan := e.g.Makespan()
	if makespan >= e.bestMakespan {
		return false, nil
	}
	e.g.AdoptMachineOrder()
	e.bestMakespan = makespan
	e.reference = makespan - ddgraph.Epsilon
	if e.reference <= e.hopedUpperBound {
		e.pastPureSearch = true
	}
	if e.opts.LogEvery {
		e.opts.Logger.Debug("new best", "makespan", makespan)
	}
	return true, nil
}

// evaluateInitial adopts the graph's starting machine order as the first
// incumbent before any branching happens.
func (e *Engine) evaluateInitial() error {
	_, err := e.evaluate()
	return err
}

// finish releases every still-fixed sequencing arc and reinstalls the
// adopted incumbent as the live machine order, leaving the graph in the
// exact state the reported Solution describes. Safe to call repeatedly.
func (e *Engine) finish() {
	e.tree.Fixed().Clear(e.g)
	e.g.RestoreMachineOrder()
}

func (e *Engine) solution(reason Reason) Solution {
	orders := make([][]ddgraph.OpID, len(e.g.Machines))
	for m, ops := range e.g.Machines {
		var head ddgraph.OpID = ddgraph.NoOp
		for _, id := range ops {
			if e.g.Op(id).OptPrev == ddgraph.NoOp {
				head = id
				break
			}
		}
		var order []ddgraph.OpID
		for id := head; id != ddgraph.NoOp; id = e.g.Op(id).OptNext {
			order = append(order, id)
		}
		orders[m] = order
	}
	return Solution{
		Makespan:     e.bestMakespan,
		MachineOrder: orders,
		Reason:       reason,
		Counters:     e.counters,
		InitialLower: e.initialLower,
		Elapsed:      time.Since(e.started),
	}
}
