package ingest_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fejozsi/ddg-go/ddgraph"
	"github.com/fejozsi/ddg-go/ingest"
)

func trivialProblem() ingest.Problem {
	return ingest.Problem{
		M: 2, G: 1,
		MachineCounts: []int{2},
		MachineOrder:  []int{1, 2},
		Operations: []ingest.OperationInput{
			{ID: 1, Machine: 1, Duration: 10.0},
			{ID: 2, Machine: 1, Duration: 7.0},
		},
	}
}

func TestFromProblem_Trivial(t *testing.T) {
	g, err := ingest.FromProblem(trivialProblem())
	require.NoError(t, err)
	require.Len(t, g.Operations, 4) // source, sink, 2 ops
	require.Len(t, g.Machines[0], 2)
}

func TestFromProblem_Cyclic(t *testing.T) {
	p := ingest.Problem{
		M: 3, G: 3,
		MachineCounts: []int{1, 1, 1},
		MachineOrder:  []int{1, 2, 3},
		Operations: []ingest.OperationInput{
			{ID: 1, Machine: 1, Duration: 1.0},
			{ID: 2, Machine: 2, Duration: 1.0, Predecessors: []int{3}},
			{ID: 3, Machine: 3, Duration: 1.0, Predecessors: []int{2}},
		},
	}
	_, err := ingest.FromProblem(p)
	require.Error(t, err)
	require.ErrorIs(t, err, ingest.ErrCyclic)
}

func TestFromProblem_BadCounts(t *testing.T) {
	p := trivialProblem()
	p.MachineCounts = []int{1} // sum mismatch (1 != M=2)
	_, err := ingest.FromProblem(p)
	require.ErrorIs(t, err, ingest.ErrBadInput)
}

func TestFromProblem_DuplicateID(t *testing.T) {
	p := trivialProblem()
	p.Operations[1].ID = 1
	_, err := ingest.FromProblem(p)
	require.ErrorIs(t, err, ingest.ErrBadInput)
}

func TestFromProblem_SelfPredecessor(t *testing.T) {
	p := trivialProblem()
	p.Operations[0].Predecessors = []int{1}
	_, err := ingest.FromProblem(p)
	require.ErrorIs(t, err, ingest.ErrBadInput)
}

func TestFromProblem_NonPositiveDuration(t *testing.T) {
	p := trivialProblem()
	p.Operations[0].Duration = 0
	_, err := ingest.FromProblem(p)
	require.ErrorIs(t, err, ingest.ErrBadInput)
}

func TestFromProblem_MachineMismatch(t *testing.T) {
	p := trivialProblem()
	p.Operations[1].Machine = 2 // but G=1, and machine order groups it under 1
	_, err := ingest.FromProblem(p)
	require.ErrorIs(t, err, ingest.ErrBadInput)
}

func TestFromProblem_SourceSinkAttachment(t *testing.T) {
	p := ingest.Problem{
		M: 3, G: 3,
		MachineCounts: []int{1, 1, 1},
		MachineOrder:  []int{1, 2, 3},
		Operations: []ingest.OperationInput{
			{ID: 1, Machine: 1, Duration: 3.0},
			{ID: 2, Machine: 2, Duration: 4.0, Predecessors: []int{1}},
			{ID: 3, Machine: 3, Duration: 5.0, Predecessors: []int{2}},
		},
	}
	g, err := ingest.FromProblem(p)
	require.NoError(t, err)

	require.Contains(t, g.Op(ddgraph.SourceID).Succs, ddgraph.OpID(2)) // op1 -> OpID 2 (offset by 2 sentinels)
}
