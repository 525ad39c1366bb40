package textfmt

import (
	"fmt"
	"io"
	"time"

	"github.com/fejozsi/ddg-go/ingest"
)

// WriteProblem renders p in the same bracketed-record text format
// ReadProblem parses, without any generation-header commentary.
func WriteProblem(w io.Writer, p ingest.Problem) error {
	return writeProblem(w, p, "")
}

// WriteGenerated renders p the way the random-problem synthesiser's output
// file does: the same five records, preceded by `#` header lines carrying
// the generation timestamp and the (M, G) parameters, mirroring
// generate_random_dg_problem.py's header comment block.
func WriteGenerated(w io.Writer, p ingest.Problem, genAt time.Time) error {
	header := fmt.Sprintf(
		"# This file describes a directed disjunctive graph (job-shop makespan minimisation).\n"+
			"# Generated at: %s\n"+
			"# Number of operations: %d, number of machines: %d\n",
		genAt.Format("2006-01-02 15:04:05"), p.M, p.G)
	return writeProblem(w, p, header)
}

func writeProblem(w io.Writer, p ingest.Problem, header string) error {
	write := func(format string, args ...interface{}) error {
		if _, err := fmt.Fprintf(w, format, args...); err != nil {
			return fmt.Errorf("%w: %v", ErrOutputAccess, err)
		}
		return nil
	}

	if header != "" {
		if err := write("%s", header); err != nil {
			return err
		}
	}
	if err := write("[%d, %d]\n", p.M, p.G); err != nil {
		return err
	}
	if err := write("[%g, %d, %d]\n\n", p.MaxRuntime, p.MaxDepth, p.LogDetail); err != nil {
		return err
	}
	if err := write("%s\n\n", formatIntList(p.MachineCounts)); err != nil {
		return err
	}
	if err := write("%s\n\n", formatIntList(p.MachineOrder)); err != nil {
		return err
	}
	for _, op := range p.Operations {
		if err := write("[%d, %d, %.2f, %s]\n", op.ID, op.Machine, op.Duration, formatIntList(op.Predecessors)); err != nil {
			return err
		}
	}
	return nil
}

func formatIntList(xs []int) string {
	s := "["
	for i, x := range xs {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%d", x)
	}
	return s + "]"
}
