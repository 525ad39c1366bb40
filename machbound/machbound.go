package machbound

import (
	"github.com/fejozsi/ddg-go/ddgraph"
	"github.com/fejozsi/ddg-go/pathcalc"
)

// sweep simulates a one-machine schedule over ops and returns the running
// lower estimate and the largest completion-plus-tail seen. The list is
// kept sorted by descending tail; whenever the clock runs dry the
// smallest-release operation restarts it, and while operations are
// available (release within the clock) the highest-tail one runs next.
// estimate tracks clock plus the smallest tail dispatched in the current
// busy block, a valid bound because at least that much work must follow
// whichever of those operations finishes last.
func sweep(g *ddgraph.Graph, ops []ddgraph.OpID, release, tail func(*ddgraph.Operation) float64) (estimate, maxPath float64) {
	list := make([]ddgraph.OpID, 0, len(ops))
	for _, id := range ops {
		pos := 0
		for pos < len(list) && tail(g.Op(list[pos])) > tail(g.Op(id)) {
			pos++
		}
		list = append(list, ddgraph.NoOp)
		copy(list[pos+1:], list[pos:])
		list[pos] = id
	}

	var clock, minTail float64
	for len(list) > 0 {
		best := 0
		for i := 1; i < len(list); i++ {
			if release(g.Op(list[i])) < release(g.Op(list[best])) {
				best = i
			}
		}
		first := g.Op(list[best])
		list = append(list[:best], list[best+1:]...)

		clock = release(first) + first.Duration
		minTail = tail(first)
		if s := clock + tail(first); maxPath < s {
			maxPath = s
			estimate = s
		} else if estimate < s {
			estimate = s
		}

		for {
			next := -1
			for i, id := range list {
				if release(g.Op(id)) <= clock {
					next = i
					break
				}
			}
			if next < 0 {
				break
			}
			op := g.Op(list[next])
			list = append(list[:next], list[next+1:]...)
			clock += op.Duration
			if s := clock + tail(op); s > maxPath {
				maxPath = s
			}
			if tail(op) < minTail {
				minTail = tail(op)
			}
			if s := clock + minTail; s > estimate {
				estimate = s
			}
		}
	}
	return estimate, maxPath
}

// Bound computes the lower/upper pair for one machine's operation set: a
// forward sweep with fwd_before as release and back_before as tail, and,
// when that leaves slack, a backward sweep with the roles swapped. The
// lower bound keeps the larger estimate, the upper bound the smaller
// maximum path. A machine-arc-free pathcalc.Run must already have run.
func Bound(g *ddgraph.Graph, ops []ddgraph.OpID) (lower, upper float64) {
	if len(ops) == 0 {
		return 0, 0
	}
	fwdRelease := func(op *ddgraph.Operation) float64 { return op.FwdBefore }
	backRelease := func(op *ddgraph.Operation) float64 { return op.BackBefore }

	lower, upper = sweep(g, ops, fwdRelease, backRelease)
	if lower < upper-ddgraph.Epsilon {
		lo, up := sweep(g, ops, backRelease, fwdRelease)
		if lo > lower {
			lower = lo
		}
		if up < upper {
			upper = up
		}
	}
	return lower, upper
}

// Result is one Aggregate outcome: the combined lower and upper bound, and
// whether the lower bound already rules out improving on reference.
type Result struct {
	Lower  float64
	Upper  float64
	Prunes bool
}

// Aggregate recomputes machine-arc-free path lengths (which still include
// every fixed sequencing arc) and folds the single-machine bound over all
// machines with at least two operations. The technological critical path
// itself seeds both bounds; machines are visited in order and the loop
// stops as soon as the lower bound reaches reference minus Epsilon, since
// the subtree is then already prunable.
func Aggregate(g *ddgraph.Graph, reference float64) (Result, error) {
	if err := pathcalc.Run(g, false); err != nil {
		return Result{}, err
	}
	low := g.Makespan()
	high := low
	if low > reference-ddgraph.Epsilon {
		return Result{Lower: low, Upper: high, Prunes: true}, nil
	}

	res := Result{Lower: low, Upper: high}
	for _, ops := range g.Machines {
		if len(ops) < 2 {
			continue
		}
		lo, up := Bound(g, ops)
		if lo > res.Lower {
			res.Lower = lo
			if res.Lower > reference-ddgraph.Epsilon {
				res.Prunes = true
			}
		}
		if up > res.Upper {
			res.Upper = up
		}
		if res.Prunes {
			break
		}
	}
	return res, nil
}
