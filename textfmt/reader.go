package textfmt

import (
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/fejozsi/ddg-go/ingest"
)

// MaxInputBytes is the size ceiling for a problem-description file.
// Anything larger is rejected before decoding.
const MaxInputBytes = 500 * 1024

// ReadProblem parses a problem-description stream: it detects UTF-8 vs
// CP1250 encoding by trial, enforces the 500 kB size cap, and decodes the
// five-record token stream into an ingest.Problem. It does
// not validate the problem's semantic invariants (permutation, positive
// durations, ...); that is ingest.FromProblem's job.
func ReadProblem(r io.Reader) (ingest.Problem, error) {
	raw, err := io.ReadAll(io.LimitReader(r, MaxInputBytes+1))
	if err != nil {
		return ingest.Problem{}, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	if len(raw) > MaxInputBytes {
		return ingest.Problem{}, ErrTooLarge
	}

	text, err := decode(raw)
	if err != nil {
		return ingest.Problem{}, err
	}

	tokens, err := lex(text)
	if err != nil {
		return ingest.Problem{}, err
	}
	return parseProblem(tokens)
}

// decode returns raw as a string, trying UTF-8 first and falling back to
// CP1250. The two encodings cover every problem file in circulation; no
// declaration is carried in the file itself, so detection is by trial.
func decode(raw []byte) (string, error) {
	if utf8.Valid(raw) {
		return string(raw), nil
	}
	decoded, err := charmap.Windows1250.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	return string(decoded), nil
}

// parseProblem consumes the five records of the format, in order: [M,G],
// [T,D,I], per-machine counts, machine-grouped ids, then M per-operation
// records.
func parseProblem(tokens []token) (ingest.Problem, error) {
	p := &parser{tokens: tokens}

	head, err := p.parseList()
	if err != nil {
		return ingest.Problem{}, fmt.Errorf("%w: record 1 ([M,G]): %v", ErrSyntax, err)
	}
	headInts, err := asInts(head)
	if err != nil || len(headInts) != 2 {
		return ingest.Problem{}, fmt.Errorf("%w: record 1 must be [M, G]", ErrSyntax)
	}

	limits, err := p.parseList()
	if err != nil {
		return ingest.Problem{}, fmt.Errorf("%w: record 2 ([T,D,I]): %v", ErrSyntax, err)
	}
	limitFloats, err := asFloats(limits)
	if err != nil || len(limitFloats) != 3 {
		return ingest.Problem{}, fmt.Errorf("%w: record 2 must be [T, D, I]", ErrSyntax)
	}

	countsRaw, err := p.parseList()
	if err != nil {
		return ingest.Problem{}, fmt.Errorf("%w: record 3 (machine counts): %v", ErrSyntax, err)
	}
	counts, err := asInts(countsRaw)
	if err != nil {
		return ingest.Problem{}, err
	}

	orderRaw, err := p.parseList()
	if err != nil {
		return ingest.Problem{}, fmt.Errorf("%w: record 4 (machine order): %v", ErrSyntax, err)
	}
	order, err := asInts(orderRaw)
	if err != nil {
		return ingest.Problem{}, err
	}

	m := headInts[0]
	ops := make([]ingest.OperationInput, 0, m)
	for !p.atEOF() {
		recRaw, err := p.parseList()
		if err != nil {
			return ingest.Problem{}, fmt.Errorf("%w: operation record: %v", ErrSyntax, err)
		}
		if len(recRaw) != 4 {
			return ingest.Problem{}, fmt.Errorf("%w: operation record must be [id, machine, duration, preds]", ErrSyntax)
		}
		id, okID := recRaw[0].(float64)
		machine, okM := recRaw[1].(float64)
		duration, okD := recRaw[2].(float64)
		predsRaw, okP := recRaw[3].([]interface{})
		if !okID || !okM || !okD || !okP {
			return ingest.Problem{}, fmt.Errorf("%w: operation record has the wrong shape", ErrSyntax)
		}
		preds, err := asInts(predsRaw)
		if err != nil {
			return ingest.Problem{}, err
		}
		ops = append(ops, ingest.OperationInput{
			ID:           int(id),
			Machine:      int(machine),
			Duration:     duration,
			Predecessors: preds,
		})
	}

	return ingest.Problem{
		M:             headInts[0],
		G:             headInts[1],
		MaxRuntime:    limitFloats[0],
		MaxDepth:      int(limitFloats[1]),
		LogDetail:     int(limitFloats[2]),
		MachineCounts: counts,
		MachineOrder:  order,
		Operations:    ops,
	}, nil
}
