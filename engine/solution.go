package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/fejozsi/ddg-go/ddgraph"
)

// Reason classifies why a search run stopped.
type Reason int

const (
	// ReasonRunning means the search has not yet terminated. It is the
	// Reason of a non-terminal Iterate outcome and of a Snapshot, and Run
	// returns it when it stopped on a pause request.
	ReasonRunning Reason = iota
	// ReasonExhausted means the search backtracked to the root with
	// nothing left to try. With no depth cap in force the incumbent is
	// then the optimum of everything the bound did not rule out.
	ReasonExhausted
	// ReasonOptimal means the best known makespan met the initial lower
	// bound (within Epsilon) before the tree was fully explored.
	ReasonOptimal
	// ReasonTimeout means Options.MaxRuntime elapsed.
	ReasonTimeout
	// ReasonCancelled means RequestCancel was observed.
	ReasonCancelled
)

func (r Reason) String() string {
	switch r {
	case ReasonExhausted:
		return "exhausted"
	case ReasonOptimal:
		return "optimal"
	case ReasonTimeout:
		return "timeout"
	case ReasonCancelled:
		return "cancelled"
	default:
		return "running"
	}
}

// Solution is the result of a completed or interrupted search: the best
// makespan found, the per-machine order that achieves it, and why the
// search stopped.
type Solution struct {
	Makespan     float64
	MachineOrder [][]ddgraph.OpID
	Reason       Reason
	Counters     Counters
	InitialLower float64
	Elapsed      time.Duration
}

// Report renders a human-readable run summary: the best makespan, why the
// search stopped, the counters, and the order on each machine.
func (s Solution) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "best makespan: %.2f (initial lower bound %.2f)\n", s.Makespan, s.InitialLower)
	fmt.Fprintf(&b, "search stopped: %s after %s\n", s.Reason, s.Elapsed)
	fmt.Fprintf(&b, "iterations=%d solutions=%d evaluations=%d backtracks=%d "+
		"repeated_bound=%d/%d max_depth_seen=%d reached_max_depth=%d\n",
		s.Counters.Iterations, s.Counters.Solutions, s.Counters.Evaluations,
		s.Counters.Backtracks,
		s.Counters.RepeatedBoundSuccesses, s.Counters.RepeatedBoundAttempts,
		s.Counters.MaxDepthSeen, s.Counters.ReachedMaxDepth)
	for m, order := range s.MachineOrder {
		fmt.Fprintf(&b, "machine %d:", m)
		for _, id := range order {
			fmt.Fprintf(&b, " %d", id)
		}
		b.WriteString("\n")
	}
	return b.String()
}
