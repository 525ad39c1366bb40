package seqedge_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fejozsi/ddg-go/ddgraph"
	"github.com/fejozsi/ddg-go/pathcalc"
	"github.com/fejozsi/ddg-go/seqedge"
)

// twoOpMachine builds two operations sharing one machine, each reachable
// from Source and reaching Sink only through the machine chain, so the
// machine transition sits on the critical path.
func twoOpMachine(t *testing.T) (*ddgraph.Graph, ddgraph.OpID, ddgraph.OpID) {
	t.Helper()
	g := ddgraph.New(1)
	a := g.AddOperation(0, 10.0)
	b := g.AddOperation(0, 7.0)
	g.AddTechnological(ddgraph.SourceID, a)
	g.AddTechnological(ddgraph.SourceID, b)
	g.AddTechnological(a, ddgraph.SinkID)
	g.AddTechnological(b, ddgraph.SinkID)
	g.Op(a).MachineNext = b
	g.Op(b).MachinePrev = a
	return g, a, b
}

func TestEnumerate_FindsMachineEdgeOnCriticalPath(t *testing.T) {
	g, a, b := twoOpMachine(t)
	require.NoError(t, pathcalc.Run(g, true))
	edges := seqedge.Enumerate(g)
	require.Len(t, edges, 1)
	require.Equal(t, a, edges[0].From)
	require.Equal(t, b, edges[0].To)
}

func TestEnumerate_SkipsTransitionsBackedByTechnologicalArc(t *testing.T) {
	g, a, b := twoOpMachine(t)
	// The same order committed as a technological arc shadows the machine
	// transition, so nothing is left to contest.
	g.AddTechnological(a, b)
	require.NoError(t, pathcalc.Run(g, true))
	require.Empty(t, seqedge.Enumerate(g))
}

func TestConjugate_IsSelfInverse(t *testing.T) {
	g, a, b := twoOpMachine(t)
	seqedge.Conjugate(g, a, b)
	require.Equal(t, b, g.Op(a).MachinePrev)
	require.Equal(t, ddgraph.NoOp, g.Op(b).MachinePrev)
	require.Equal(t, ddgraph.NoOp, g.Op(a).MachineNext)
	require.Equal(t, a, g.Op(b).MachineNext)

	seqedge.Conjugate(g, b, a)
	require.Equal(t, ddgraph.NoOp, g.Op(a).MachinePrev)
	require.Equal(t, b, g.Op(a).MachineNext)
	require.Equal(t, a, g.Op(b).MachinePrev)
	require.Equal(t, ddgraph.NoOp, g.Op(b).MachineNext)
}

func TestStack_FixNormalCommitsReversedOrder(t *testing.T) {
	g, a, b := twoOpMachine(t)
	var s seqedge.Stack

	s.FixNormal(g, seqedge.Edge{From: a, To: b})
	require.Equal(t, 1, s.Len())
	require.Equal(t, 1, s.NormalCount())

	// Machine chain reversed and the new order pinned by an arc b -> a.
	require.Equal(t, b, g.Op(a).MachinePrev)
	require.Contains(t, g.Op(b).Succs, a)
	require.Contains(t, g.Op(a).Preds, b)

	top, ok := s.Top()
	require.True(t, ok)
	require.Equal(t, seqedge.KindNormal, top.Kind)
	require.Equal(t, b, top.From)
	require.Equal(t, a, top.To)
}

func TestStack_BacktrackRecommitsOriginalOrder(t *testing.T) {
	g, a, b := twoOpMachine(t)
	var s seqedge.Stack
	s.FixNormal(g, seqedge.Edge{From: a, To: b})

	flipped, ok := s.Backtrack(g)
	require.True(t, ok)
	require.Equal(t, a, flipped.From)
	require.Equal(t, b, flipped.To)
	require.Equal(t, 1, s.Len())
	require.Equal(t, 0, s.NormalCount())

	// The machine order is back to its pre-conjugation shape, now pinned
	// by an arc a -> b; the reversed arc is gone.
	require.Equal(t, ddgraph.NoOp, g.Op(a).MachinePrev)
	require.Equal(t, b, g.Op(a).MachineNext)
	require.Contains(t, g.Op(a).Succs, b)
	require.NotContains(t, g.Op(b).Succs, a)

	top, _ := s.Top()
	require.Equal(t, seqedge.KindConjugated, top.Kind)

	// Both orientations spent: the next backtrack finds nothing reversible
	// and drops the entry and its arc.
	_, ok = s.Backtrack(g)
	require.False(t, ok)
	require.Equal(t, 0, s.Len())
	require.NotContains(t, g.Op(a).Succs, b)
}

func TestStack_BacktrackEmptyReturnsFalse(t *testing.T) {
	var s seqedge.Stack
	_, ok := s.Backtrack(ddgraph.New(0))
	require.False(t, ok)
}

func TestStack_ClearRemovesArcsOnly(t *testing.T) {
	g, a, b := twoOpMachine(t)
	var s seqedge.Stack
	s.FixNormal(g, seqedge.Edge{From: a, To: b})

	s.Clear(g)
	require.Equal(t, 0, s.Len())
	// The fixed arc is gone; the machine chain is left as-is for the
	// caller to overwrite with the adopted order.
	require.NotContains(t, g.Op(b).Succs, a)
	require.Equal(t, b, g.Op(a).MachinePrev)
}

func TestFixAndBacktrack_RestoreGraphExactly(t *testing.T) {
	g, a, b := twoOpMachine(t)
	require.NoError(t, pathcalc.Run(g, true))
	wantMakespan := g.Makespan()

	var s seqedge.Stack
	s.FixNormal(g, seqedge.Edge{From: a, To: b})
	_, ok := s.Backtrack(g)
	require.True(t, ok)
	_, ok = s.Backtrack(g)
	require.False(t, ok)

	require.NoError(t, pathcalc.Run(g, true))
	require.InDelta(t, wantMakespan, g.Makespan(), ddgraph.Epsilon)
	require.Equal(t, b, g.Op(a).MachineNext)
	require.Equal(t, ddgraph.NoOp, g.Op(b).MachineNext)
}
