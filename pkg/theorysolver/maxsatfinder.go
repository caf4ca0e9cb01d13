package theorysolver

import (
	"fmt"
	"strconv"
	"time"

	"github.com/crillab/gophersat/maxsat"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/sjslang/sjsc/pkg/sat"
)

// DefaultMaxSATTimeout bounds each MaxSAT solve unless the finder is
// configured otherwise.
const DefaultMaxSATTimeout = 100 * time.Second

// MaxSATFinder proposes minimum fixing sets by solving a weighted
// partial MaxSAT instance: one hard clause per core ("drop at least
// one member") and one unit-weight soft clause per constraint ("keep
// it"). The instance is rebuilt from every accumulated core on each
// call.
type MaxSATFinder[C comparable] struct {
	known   sets.Set[C]
	cores   [][]C
	timeout time.Duration
	logger  logrus.FieldLogger
}

var _ FixingSetFinder[int] = &MaxSATFinder[int]{}

func NewMaxSATFinder[C comparable](timeout time.Duration, logger logrus.FieldLogger) *MaxSATFinder[C] {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &MaxSATFinder[C]{
		timeout: timeout,
		logger:  logger,
	}
}

func (f *MaxSATFinder[C]) Setup(all []C) {
	f.known = sets.New(all...)
	f.cores = nil
}

func (f *MaxSATFinder[C]) AddCore(core []C) error {
	for _, c := range core {
		if !f.known.Has(c) {
			return UnknownConstraint{Constraint: c}
		}
	}
	f.cores = append(f.cores, copyCore(core))
	return nil
}

func maxsatVar(i int) maxsat.Lit {
	return maxsat.Var("c" + strconv.Itoa(i))
}

func (f *MaxSATFinder[C]) CurrentFixingSet(WeakeningListener) ([]C, Action, error) {
	if len(f.cores) == 0 {
		return nil, Continue, nil
	}

	// Only constraints that occur in some core can usefully be
	// dropped, so only they get variables.
	var order []C
	index := make(map[C]int)
	for _, core := range f.cores {
		if len(core) == 0 {
			return nil, Continue, errors.Wrap(ErrHardUnsat, "maxsat finder cannot cover an empty core")
		}
		for _, c := range core {
			if _, ok := index[c]; !ok {
				index[c] = len(order)
				order = append(order, c)
			}
		}
	}

	constrs := make([]maxsat.Constr, 0, len(f.cores)+len(order))
	for _, core := range f.cores {
		lits := make([]maxsat.Lit, len(core))
		for i, c := range core {
			lits[i] = maxsatVar(index[c]).Negation()
		}
		constrs = append(constrs, maxsat.HardClause(lits...))
	}
	for i := range order {
		constrs = append(constrs, maxsat.SoftClause(maxsatVar(i)))
	}

	start := time.Now()
	model, err := f.solve(maxsat.New(constrs...))
	if err != nil {
		return nil, Continue, errors.Wrap(err, "maxsat fixing-set finder")
	}
	f.logger.WithFields(logrus.Fields{
		"cores":       len(f.cores),
		"constraints": len(order),
		"duration":    time.Since(start),
	}).Debug("maxsat solve")
	if model == nil {
		return nil, Continue, errors.Wrap(ErrHardUnsat, "maxsat hard clauses are unsatisfiable")
	}

	var out []C
	for i, c := range order {
		if !model["c"+strconv.Itoa(i)] {
			out = append(out, c)
		}
	}

	dropped := sets.New(out...)
	for i, core := range f.cores {
		if !dropped.HasAny(core...) {
			return nil, Continue, InconsistentFixingSet{
				Strategy: StrategyMaxSAT,
				Reason:   fmt.Sprintf("proposal of size %d misses core %d", len(out), i),
			}
		}
	}
	return out, Continue, nil
}

// solve runs the blocking MaxSAT solve under the finder's time bound.
// An abandoned solve keeps running until it finishes on its own.
func (f *MaxSATFinder[C]) solve(pb *maxsat.Problem) (map[string]bool, error) {
	done := make(chan map[string]bool, 1)
	go func() {
		model, _ := pb.Solve()
		done <- model
	}()
	if f.timeout <= 0 {
		return <-done, nil
	}

	timer := time.NewTimer(f.timeout)
	defer timer.Stop()
	select {
	case model := <-done:
		return model, nil
	case <-timer.C:
		return nil, sat.ErrTimeout
	}
}

func (f *MaxSATFinder[C]) Optimal() bool {
	return true
}
