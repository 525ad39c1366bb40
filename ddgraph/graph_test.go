package ddgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fejozsi/ddg-go/ddgraph"
)

func TestNew_SourceAndSinkPreallocated(t *testing.T) {
	g := ddgraph.New(2)
	require.Len(t, g.Operations, 2)
	require.Equal(t, ddgraph.SourceID, g.Op(ddgraph.SourceID).ID)
	require.Equal(t, ddgraph.SinkID, g.Op(ddgraph.SinkID).ID)
	require.Len(t, g.Machines, 2)
}

func TestAddOperation_AssignsMachineAndID(t *testing.T) {
	g := ddgraph.New(1)
	id := g.AddOperation(0, 5.0)
	require.Equal(t, ddgraph.OpID(2), id)
	require.Equal(t, 5.0, g.Op(id).Duration)
	require.Contains(t, g.Machines[0], id)
}

func TestAddTechnological_RecordsBothDirections(t *testing.T) {
	g := ddgraph.New(1)
	a := g.AddOperation(0, 1.0)
	b := g.AddOperation(0, 1.0)
	g.AddTechnological(a, b)
	require.Equal(t, []ddgraph.OpID{b}, g.Op(a).Succs)
	require.Equal(t, []ddgraph.OpID{a}, g.Op(b).Preds)
}

func TestLookup_OutOfRange(t *testing.T) {
	g := ddgraph.New(1)
	_, err := g.Lookup(ddgraph.OpID(99))
	require.ErrorIs(t, err, ddgraph.ErrUnknownOp)
}

func TestReset_ClearsPathsExceptSourceSink(t *testing.T) {
	g := ddgraph.New(1)
	a := g.AddOperation(0, 1.0)
	g.Op(a).FwdBefore = 42
	g.Reset()
	require.Equal(t, -1.0, g.Op(a).FwdBefore)
	require.Equal(t, 0.0, g.Op(ddgraph.SourceID).FwdBefore)
	require.Equal(t, 0.0, g.Op(ddgraph.SinkID).BackBefore)
}

func TestAdoptAndRestoreMachineOrder_RoundTrips(t *testing.T) {
	g := ddgraph.New(1)
	a := g.AddOperation(0, 1.0)
	b := g.AddOperation(0, 1.0)
	g.Op(a).MachineNext = b
	g.Op(b).MachinePrev = a

	g.AdoptMachineOrder()
	require.Equal(t, b, g.Op(a).OptNext)

	g.Op(a).MachineNext = ddgraph.NoOp
	g.Op(b).MachinePrev = ddgraph.NoOp

	g.RestoreMachineOrder()
	require.Equal(t, b, g.Op(a).MachineNext)
	require.Equal(t, a, g.Op(b).MachinePrev)
}

func TestMakespan_ReadsSinkForward(t *testing.T) {
	g := ddgraph.New(1)
	g.Op(ddgraph.SinkID).FwdBefore = 12.5
	require.Equal(t, 12.5, g.Makespan())
}

func TestRemoveTechnological_UndoesLastArc(t *testing.T) {
	g := ddgraph.New(1)
	a := g.AddOperation(0, 1.0)
	b := g.AddOperation(0, 1.0)
	g.AddTechnological(a, b)
	g.RemoveTechnological(a, b)
	require.Empty(t, g.Op(a).Succs)
	require.Empty(t, g.Op(b).Preds)
}

func TestRemoveTechnological_PanicsOnOutOfOrderRemoval(t *testing.T) {
	g := ddgraph.New(1)
	a := g.AddOperation(0, 1.0)
	b := g.AddOperation(0, 1.0)
	c := g.AddOperation(0, 1.0)
	g.AddTechnological(a, b)
	g.AddTechnological(a, c)
	require.Panics(t, func() { g.RemoveTechnological(a, b) })
}
