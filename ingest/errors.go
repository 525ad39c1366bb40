package ingest

import "errors"

// ErrBadInput classifies every input-value failure: out-of-range counts,
// non-positive durations, a bad identifier, a per-machine sum mismatch, a
// duplicated id, and so on. Wrap
// it with fmt.Errorf("%w: ...", ErrBadInput, ...) to attach the offending
// field; callers branch with errors.Is(err, ErrBadInput), never by parsing
// the message.
var ErrBadInput = errors.New("ingest: invalid problem description")

// ErrCyclic is returned when the technological graph built from a Problem
// contains a cycle. This is fatal for the whole solve and is classed
// separately from ErrBadInput (exit code 3 vs 2) because, unlike a
// malformed count or a non-positive duration, no local fix to one record
// clears it without understanding the whole cycle.
var ErrCyclic = errors.New("ingest: technological graph contains a cycle")
