package engine

import (
	"context"
	"log/slog"
	"time"
)

// DefaultHopedUpperBoundFactor is applied to the initial lower bound to
// produce the "hoped upper bound": once the best known makespan drops to or
// below it, the engine leaves the pure-search stage and the
// repeated-bounding heuristic becomes eligible. Changing this value changes
// which nodes the heuristic fires on and therefore the reported order.
const DefaultHopedUpperBoundFactor = 1.18

// Options configures a single search run. Zero-value fields that matter are
// filled in by DefaultOptions. New replaces a nil Logger with a discard
// logger and a zero HopedUpperBoundFactor with DefaultHopedUpperBoundFactor,
// and uses every other field as given.
type Options struct {
	// MaxRuntime bounds wall-clock search time. Zero means unlimited.
	MaxRuntime time.Duration

	// MaxDepth bounds how deep the decision tree may grow, counted in
	// decision nodes including the root: a cap of D stops branching once
	// D-1 sequencing edges are fixed, and a cap of 1 forbids branching
	// entirely. Zero means unlimited.
	MaxDepth int

	// HopedUpperBoundFactor scales the initial lower bound to produce the
	// threshold at which the engine leaves its pure-search stage.
	HopedUpperBoundFactor float64

	// LogEvery, when true, makes the engine emit a slog.Debug record on
	// a throttled schedule: every iteration up to 1000, then every 100th
	// up to 10000, then every 1000th up to 100000, then every 10000th up
	// to 1000000, then every 100000th beyond.
	LogEvery bool

	// Logger receives iteration and lifecycle detail. A nil Logger is
	// replaced with a discard logger, so callers that don't want logging
	// can simply leave this unset.
	Logger *slog.Logger

	// Metrics, if non-nil, receives counter and duration updates as the
	// search runs. See NewMetrics.
	Metrics *Metrics
}

// DefaultOptions returns an Options with no time or depth limit, the
// default hoped-upper-bound factor, logging disabled, and no metrics
// collector.
func DefaultOptions() Options {
	return Options{
		HopedUpperBoundFactor: DefaultHopedUpperBoundFactor,
		Logger:                slog.New(discardHandler{}),
	}
}

// discardHandler is a slog.Handler that drops every record, used as the
// default Logger so callers never need a nil check.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h discardHandler) WithGroup(string) slog.Handler           { return h }
