package synth_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fejozsi/ddg-go/ingest"
	"github.com/fejozsi/ddg-go/synth"
)

func TestGenerate_InvalidSize(t *testing.T) {
	_, err := synth.Generate(2, 3)
	require.ErrorIs(t, err, synth.ErrInvalidSize)

	_, err = synth.Generate(5, 0)
	require.ErrorIs(t, err, synth.ErrInvalidSize)
}

func TestGenerate_ShapeAndBounds(t *testing.T) {
	p, err := synth.Generate(20, 4, synth.WithSeed(1))
	require.NoError(t, err)
	require.Equal(t, 20, p.M)
	require.Equal(t, 4, p.G)
	require.Len(t, p.Operations, 20)
	require.Len(t, p.MachineCounts, 4)

	total := 0
	for _, c := range p.MachineCounts {
		require.Greater(t, c, 0)
		total += c
	}
	require.Equal(t, 20, total)
	require.Len(t, p.MachineOrder, 20)

	for _, op := range p.Operations {
		require.GreaterOrEqual(t, op.Duration, 17.0)
		require.LessOrEqual(t, op.Duration, 50.0)
	}
}

// TestGenerate_NeverCyclic asserts the synthesiser's property (iv): the
// predecessor graph it emits is always acyclic, regardless of seed.
func TestGenerate_NeverCyclic(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		p, err := synth.Generate(30, 6, synth.WithSeed(seed))
		require.NoError(t, err)
		require.NoError(t, acyclic(p), "seed %d", seed)
	}
}

func TestGenerate_DeterministicWithSeed(t *testing.T) {
	p1, err := synth.Generate(15, 3, synth.WithSeed(42))
	require.NoError(t, err)
	p2, err := synth.Generate(15, 3, synth.WithSeed(42))
	require.NoError(t, err)
	require.Equal(t, p1, p2)
}

func TestGenerate_EngineBoundsStamped(t *testing.T) {
	p, err := synth.Generate(5, 2, synth.WithSeed(7), synth.WithEngineBounds(9.5, 3, 2))
	require.NoError(t, err)
	require.Equal(t, 9.5, p.MaxRuntime)
	require.Equal(t, 3, p.MaxDepth)
	require.Equal(t, 2, p.LogDetail)
}

func acyclic(p ingest.Problem) error {
	const white, gray, black = 0, 1, 2
	byID := make(map[int]ingest.OperationInput, len(p.Operations))
	for _, op := range p.Operations {
		byID[op.ID] = op
	}
	color := make(map[int]int, len(p.Operations))
	var visit func(id int) error
	visit = func(id int) error {
		color[id] = gray
		for _, pred := range byID[id].Predecessors {
			switch color[pred] {
			case gray:
				return ingest.ErrCyclic
			case white:
				if err := visit(pred); err != nil {
					return err
				}
			}
		}
		color[id] = black
		return nil
	}
	for _, op := range p.Operations {
		if color[op.ID] == white {
			if err := visit(op.ID); err != nil {
				return err
			}
		}
	}
	return nil
}
