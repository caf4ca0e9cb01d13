package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/sjslang/sjsc/pkg/theorysolver"
)

const (
	StrategyLabel = "strategy"
	Outcome       = "outcome"
	Succeeded     = "succeeded"
	Failed        = "failed"

	// Solve outcomes.
	WellTyped  = "well_typed"
	Fixed      = "fixed"
	Unfixable  = "unfixable"
	Incomplete = "incomplete"
)

// To add new metrics:
// 1. Add new metrics to collectors() below.
// 2. Add an emitter for them, or extend the listener.
var (
	theoryCheckSummary = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "sjs_theory_check_duration_seconds",
			Help:       "The duration of a theory check, by whether the checked constraints were satisfiable",
			Objectives: map[float64]float64{0.95: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{Outcome},
	)

	coresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sjs_unsat_cores_total",
			Help: "Monotonic count of unsatisfiable cores passed to fixing-set finders",
		},
		[]string{StrategyLabel},
	)

	coreSize = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sjs_unsat_core_size",
			Help:    "Number of soft constraints in each unsatisfiable core",
			Buckets: prometheus.ExponentialBuckets(1, 2, 8),
		},
		[]string{StrategyLabel},
	)

	weakeningsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sjs_weakenings_total",
			Help: "Monotonic count of soft clause weakening rounds",
		},
		[]string{StrategyLabel},
	)

	fixingSetSize = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sjs_fixing_set_size",
			Help:    "Number of constraints discarded by each fixing set that led to a model",
			Buckets: prometheus.LinearBuckets(0, 1, 10),
		},
		[]string{StrategyLabel},
	)

	solveSummary = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "sjs_solve_duration_seconds",
			Help:       "The duration of a complete search for a fixing set",
			Objectives: map[float64]float64{0.95: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{StrategyLabel, Outcome},
	)
)

func collectors() []prometheus.Collector {
	return []prometheus.Collector{
		theoryCheckSummary,
		coresTotal,
		coreSize,
		weakeningsTotal,
		fixingSetSize,
		solveSummary,
	}
}

// MustRegister adds every collector of this package to r. The
// collectors are shared, so they may be added to several registries.
func MustRegister(r prometheus.Registerer) {
	r.MustRegister(collectors()...)
}

// Register adds every collector of this package to the default
// registry. It panics if called twice.
func Register() {
	MustRegister(prometheus.DefaultRegisterer)
}

func RegisterTheoryCheckSuccess(duration time.Duration) {
	theoryCheckSummary.WithLabelValues(Succeeded).Observe(duration.Seconds())
}

func RegisterTheoryCheckFailure(duration time.Duration) {
	theoryCheckSummary.WithLabelValues(Failed).Observe(duration.Seconds())
}

func RegisterSolve(strategy, outcome string, duration time.Duration) {
	solveSummary.WithLabelValues(strategy, outcome).Observe(duration.Seconds())
}

func EmitCore(strategy string, size int) {
	coresTotal.WithLabelValues(strategy).Inc()
	coreSize.WithLabelValues(strategy).Observe(float64(size))
}

func EmitWeakening(strategy string) {
	weakeningsTotal.WithLabelValues(strategy).Inc()
}

func EmitFixingSet(strategy string, size int) {
	fixingSetSize.WithLabelValues(strategy).Observe(float64(size))
}

// Listener records the events of a run. It never stops the search.
type Listener[C comparable, M any] struct {
	Strategy string
}

var _ theorysolver.Listener[int, struct{}] = Listener[int, struct{}]{}

func NewListener[C comparable, M any](strategy string) Listener[C, M] {
	return Listener[C, M]{Strategy: strategy}
}

func (l Listener[C, M]) OnCore(core []C) theorysolver.Action {
	EmitCore(l.Strategy, len(core))
	return theorysolver.Continue
}

func (l Listener[C, M]) OnFixingSet(_ M, fixingSet []C) theorysolver.Action {
	EmitFixingSet(l.Strategy, len(fixingSet))
	return theorysolver.Continue
}

func (l Listener[C, M]) OnWeakening(int) theorysolver.Action {
	EmitWeakening(l.Strategy)
	return theorysolver.Continue
}

// WriteText writes every metric family gathered from g in the
// Prometheus text exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
