package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fejozsi/ddg-go/ddgraph"
	"github.com/fejozsi/ddg-go/engine"
	"github.com/fejozsi/ddg-go/ingest"
)

func TestNew_RejectsGraphWithNoMachines(t *testing.T) {
	g := ddgraph.New(0)
	_, err := engine.New(g, engine.DefaultOptions())
	require.ErrorIs(t, err, engine.ErrNoMachines)
}

func TestRequestPause_StopsBeforeExhaustion(t *testing.T) {
	p := trivialProblem()
	g, err := solveGraph(t, p)
	require.NoError(t, err)

	eng, err := engine.New(g, engine.DefaultOptions())
	require.NoError(t, err)
	_, err = eng.BuildInitialOrder()
	require.NoError(t, err)
	_, err = eng.ComputeLowerBound()
	require.NoError(t, err)

	eng.RequestPause()
	sol, err := eng.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, engine.ReasonRunning, sol.Reason)
}

func TestRequestCancel_ReportsCancelled(t *testing.T) {
	p := trivialProblem()
	g, err := solveGraph(t, p)
	require.NoError(t, err)

	eng, err := engine.New(g, engine.DefaultOptions())
	require.NoError(t, err)
	_, err = eng.BuildInitialOrder()
	require.NoError(t, err)
	_, err = eng.ComputeLowerBound()
	require.NoError(t, err)

	eng.RequestCancel()
	sol, err := eng.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, engine.ReasonCancelled, sol.Reason)
}

func TestSolution_ReportContainsCounters(t *testing.T) {
	p := trivialProblem()
	g, err := solveGraph(t, p)
	require.NoError(t, err)

	eng, err := engine.New(g, engine.DefaultOptions())
	require.NoError(t, err)
	_, err = eng.BuildInitialOrder()
	require.NoError(t, err)
	_, err = eng.ComputeLowerBound()
	require.NoError(t, err)

	sol, err := eng.Run(context.Background())
	require.NoError(t, err)
	require.Contains(t, sol.Report(), "best makespan")
	require.Contains(t, sol.Report(), "iterations=")
}

// depthProbeGraph builds an instance whose machine order genuinely
// matters: op 1 (1.0) feeds op 2 (9.0) on the other machine, while op 3
// (9.0) shares op 1's machine. Scheduling op 3 first yields makespan 19,
// op 1 first yields the lower bound 10. The bad order is installed by
// hand so the depth cap, not the dispatch heuristic, decides the result.
func depthProbeGraph(t *testing.T) *ddgraph.Graph {
	t.Helper()
	p := ingest.Problem{
		M: 3, G: 2,
		MachineCounts: []int{2, 1},
		MachineOrder:  []int{1, 3, 2},
		Operations: []ingest.OperationInput{
			{ID: 1, Machine: 1, Duration: 1.0},
			{ID: 2, Machine: 2, Duration: 9.0, Predecessors: []int{1}},
			{ID: 3, Machine: 1, Duration: 9.0},
		},
	}
	g, err := ingest.FromProblem(p)
	require.NoError(t, err)

	op1, op3 := g.Machines[0][0], g.Machines[0][1]
	g.Op(op3).MachineNext = op1
	g.Op(op1).MachinePrev = op3
	return g
}

// A depth cap of 1 leaves only the root node, so the search may never fix
// a single sequencing edge: it is stuck with the suboptimal starting
// order even though one swap would reach the lower bound.
func TestMaxDepthOne_NeverBranches(t *testing.T) {
	g := depthProbeGraph(t)

	opts := engine.DefaultOptions()
	opts.MaxDepth = 1
	eng, err := engine.New(g, opts)
	require.NoError(t, err)

	lower, err := eng.ComputeLowerBound()
	require.NoError(t, err)
	require.InDelta(t, 10.0, lower, ddgraph.Epsilon)

	sol, err := eng.Run(context.Background())
	require.NoError(t, err)

	require.Equal(t, engine.ReasonExhausted, sol.Reason)
	require.Equal(t, 0, sol.Counters.Solutions)
	require.Equal(t, 0, sol.Counters.MaxDepthSeen)
	require.Greater(t, sol.Counters.ReachedMaxDepth, 0)
	require.InDelta(t, 19.0, sol.Makespan, ddgraph.Epsilon)
}

// A depth cap of 2 admits exactly one fixed edge off the root, which is
// all this instance needs: the single swap reaches the lower bound.
func TestMaxDepthTwo_AllowsOneLevel(t *testing.T) {
	g := depthProbeGraph(t)

	opts := engine.DefaultOptions()
	opts.MaxDepth = 2
	eng, err := engine.New(g, opts)
	require.NoError(t, err)

	_, err = eng.ComputeLowerBound()
	require.NoError(t, err)

	sol, err := eng.Run(context.Background())
	require.NoError(t, err)

	require.Equal(t, engine.ReasonOptimal, sol.Reason)
	require.Equal(t, 1, sol.Counters.Solutions)
	require.InDelta(t, 10.0, sol.Makespan, ddgraph.Epsilon)
}
