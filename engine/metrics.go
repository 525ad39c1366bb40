package engine

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics wraps a prometheus.Registry with the counters and the histogram
// the control loop updates as it runs. Wiring this is optional: an Engine
// built with a nil Metrics simply skips every update.
type Metrics struct {
	iterations             prometheus.Counter
	evaluations            prometheus.Counter
	backtracks             prometheus.Counter
	repeatedBoundAttempts  prometheus.Counter
	repeatedBoundSuccesses prometheus.Counter
	iterationDuration      prometheus.Histogram
}

// NewMetrics creates a Metrics collector and registers it with reg. Passing
// the same reg to a Prometheus HTTP handler exposes these under the
// ddg_engine_ namespace.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		iterations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ddg", Subsystem: "engine", Name: "iterations_total",
			Help: "Control-loop iterations performed.",
		}),
		evaluations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ddg", Subsystem: "engine", Name: "evaluations_total",
			Help: "Critical-path evaluations performed.",
		}),
		backtracks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ddg", Subsystem: "engine", Name: "backtracks_total",
			Help: "Decision-tree backtracks performed.",
		}),
		repeatedBoundAttempts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ddg", Subsystem: "engine", Name: "repeated_bound_attempts_total",
			Help: "Repeated-bounding invocations attempted.",
		}),
		repeatedBoundSuccesses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ddg", Subsystem: "engine", Name: "repeated_bound_successes_total",
			Help: "Repeated-bounding invocations that pruned the subtree.",
		}),
		iterationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ddg", Subsystem: "engine", Name: "iteration_duration_seconds",
			Help:    "Wall-clock time spent per control-loop iteration.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	if reg != nil {
		reg.MustRegister(m.iterations, m.evaluations, m.backtracks,
			m.repeatedBoundAttempts, m.repeatedBoundSuccesses, m.iterationDuration)
	}
	return m
}

func (m *Metrics) observeIteration(d time.Duration) {
	if m == nil {
		return
	}
	m.iterations.Inc()
	m.iterationDuration.Observe(d.Seconds())
}

func (m *Metrics) observeEvaluation() {
	if m == nil {
		return
	}
	m.evaluations.Inc()
}

func (m *Metrics) observeBacktrack() {
	if m == nil {
		return
	}
	m.backtracks.Inc()
}

func (m *Metrics) observeRepeatedBound(success bool) {
	if m == nil {
		return
	}
	m.repeatedBoundAttempts.Inc()
	if success {
		m.repeatedBoundSuccesses.Inc()
	}
}
