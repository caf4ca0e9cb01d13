// Package theorysolver finds models of constraint systems that may be
// over-constrained. Given hard constraints, which must hold, and soft
// constraints, which may be discarded, it either finds a model of all
// of them or a minimum set of soft constraints (a "fixing set") whose
// removal makes the system satisfiable.
//
// The search alternates between a Theory, which checks conjunctions of
// constraints and explains failures with unsatisfiable cores, and a
// FixingSetFinder, which turns the cores seen so far into the next
// candidate fixing set. Its performance depends heavily on the ability
// of the theory to produce small cores.
package theorysolver

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"k8s.io/apimachinery/pkg/util/sets"
)

// Solver runs the refinement loop between a theory and a fixing-set
// finder. A Solver is not safe for concurrent use, since it drives a
// single stateful finder.
type Solver[C comparable, M any] struct {
	theory Theory[C, M]
	finder FixingSetFinder[C]
	logger logrus.FieldLogger
}

type options struct {
	logger logrus.FieldLogger
}

type Option func(o *options)

func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func New[C comparable, M any](theory Theory[C, M], finder FixingSetFinder[C], opts ...Option) *Solver[C, M] {
	o := options{logger: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Solver[C, M]{
		theory: theory,
		finder: finder,
		logger: o.logger,
	}
}

// partition keeps the hard and soft constraints of one run.
type partition[C comparable] struct {
	hard, soft []C
	hardSet    sets.Set[C]
	softSet    sets.Set[C]
}

func newPartition[C comparable](hard, soft []C) partition[C] {
	return partition[C]{
		hard:    hard,
		soft:    soft,
		hardSet: sets.New(hard...),
		softSet: sets.New(soft...),
	}
}

// positive returns the constraints to check when discarding
// fixingSet: every hard constraint, then every soft constraint not in
// fixingSet, in input order and without duplicates.
func (p partition[C]) positive(fixingSet []C) []C {
	dropped := sets.New(fixingSet...)
	seen := sets.New[C]()
	result := make([]C, 0, len(p.hard)+len(p.soft))
	for _, c := range p.hard {
		if !seen.Has(c) {
			seen.Insert(c)
			result = append(result, c)
		}
	}
	for _, c := range p.soft {
		if !seen.Has(c) && !dropped.Has(c) {
			seen.Insert(c)
			result = append(result, c)
		}
	}
	return result
}

// kept returns the soft constraints not in fixingSet.
func (p partition[C]) kept(fixingSet []C) []C {
	dropped := sets.New(fixingSet...)
	seen := sets.New[C]()
	var result []C
	for _, c := range p.soft {
		if !p.hardSet.Has(c) && !dropped.Has(c) && !seen.Has(c) {
			seen.Insert(c)
			result = append(result, c)
		}
	}
	return result
}

// softCore restricts a theory core to soft constraints. Constraints
// that are also hard can never be discarded and are left out.
func (p partition[C]) softCore(core []C) []C {
	seen := sets.New[C]()
	var result []C
	for _, c := range core {
		if p.softSet.Has(c) && !p.hardSet.Has(c) && !seen.Has(c) {
			seen.Insert(c)
			result = append(result, c)
		}
	}
	return result
}

func incomplete(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.WithMessage(ErrIncomplete, err.Error())
	}
	return nil
}

// Solve searches for a model of the hard constraints together with as
// many soft constraints as possible. The returned fixing set is
// minimum with respect to the cores discovered during the search when
// the finder is Optimal. The listener may be nil.
func (s *Solver[C, M]) Solve(ctx context.Context, hard, soft []C, listener Listener[C, M]) (Solution[C, M], error) {
	if listener == nil {
		listener = NopListener[C, M]{}
	}
	p := newPartition(hard, soft)
	s.finder.Setup(soft)

	for iteration := 1; ; iteration++ {
		if err := incomplete(ctx); err != nil {
			return Solution[C, M]{}, err
		}
		log := s.logger.WithField("iteration", iteration)

		start := time.Now()
		fixingSet, action, err := s.finder.CurrentFixingSet(listener)
		if err != nil {
			return Solution[C, M]{}, err
		}
		if action == Stop {
			return Solution[C, M]{}, ErrStopped
		}
		log.WithFields(logrus.Fields{
			"fixing_set_size": len(fixingSet),
			"duration":        time.Since(start),
		}).Debug("finding fixing set")

		start = time.Now()
		result, err := s.theory.Check(ctx, p.positive(fixingSet))
		if err != nil {
			return Solution[C, M]{}, errors.Wrap(err, "checking theory")
		}
		log = log.WithField("duration", time.Since(start))

		if model, ok := result.Model(); ok {
			log.WithField("fixing_set_size", len(fixingSet)).Debug("checking theory: valid model")
			listener.OnFixingSet(model, fixingSet)
			return Solution[C, M]{Model: model, FixingSet: fixingSet}, nil
		}

		core := p.softCore(result.Core())
		log.WithFields(logrus.Fields{
			"core_size":      len(result.Core()),
			"soft_core_size": len(core),
		}).Debug("checking theory: invalid model")
		if len(core) == 0 {
			return Solution[C, M]{}, ErrHardUnsat
		}
		if listener.OnCore(core) == Stop {
			return Solution[C, M]{}, ErrStopped
		}
		if err := s.finder.AddCore(core); err != nil {
			return Solution[C, M]{}, err
		}
	}
}

// Enumerate reports successive fixing sets to the listener until the
// listener asks to stop or no soft constraint is left to discard. After
// each model, the soft constraints it kept are fed back to the finder
// as a core, so that the next proposal differs.
func (s *Solver[C, M]) Enumerate(ctx context.Context, hard, soft []C, listener Listener[C, M]) error {
	if listener == nil {
		listener = NopListener[C, M]{}
	}
	p := newPartition(hard, soft)
	s.finder.Setup(soft)

	for iteration := 1; ; iteration++ {
		if err := incomplete(ctx); err != nil {
			return err
		}
		log := s.logger.WithField("iteration", iteration)

		fixingSet, action, err := s.finder.CurrentFixingSet(listener)
		if err != nil {
			return err
		}
		if action == Stop {
			return nil
		}

		result, err := s.theory.Check(ctx, p.positive(fixingSet))
		if err != nil {
			return errors.Wrap(err, "checking theory")
		}

		if model, ok := result.Model(); ok {
			log.WithField("fixing_set_size", len(fixingSet)).Debug("enumerated fixing set")
			if listener.OnFixingSet(model, fixingSet) == Stop {
				return nil
			}
			kept := p.kept(fixingSet)
			if len(kept) == 0 {
				return nil
			}
			if err := s.finder.AddCore(kept); err != nil {
				return err
			}
			continue
		}

		core := p.softCore(result.Core())
		log.WithField("core_size", len(core)).Debug("checking theory: invalid model")
		if len(core) == 0 {
			return ErrHardUnsat
		}
		if listener.OnCore(core) == Stop {
			return nil
		}
		if err := s.finder.AddCore(core); err != nil {
			return err
		}
	}
}

// Minimize shrinks a working fixing set by repeatedly discarding the
// first element whose removal keeps the theory satisfiable. The result
// is 1-minimal: no single element can be removed from it, although a
// smaller fixing set may exist.
func (s *Solver[C, M]) Minimize(ctx context.Context, hard, soft []C, solution Solution[C, M]) (Solution[C, M], error) {
	p := newPartition(hard, soft)
	fixingSet := copyCore(solution.FixingSet)
	model := solution.Model
	s.logger.WithField("fixing_set_size", len(fixingSet)).Debug("minimizing fixing set")

	for pass := 1; ; pass++ {
		if err := incomplete(ctx); err != nil {
			return Solution[C, M]{}, err
		}

		changed := false
		for i := range fixingSet {
			candidate := make([]C, 0, len(fixingSet)-1)
			candidate = append(candidate, fixingSet[:i]...)
			candidate = append(candidate, fixingSet[i+1:]...)

			result, err := s.theory.Check(ctx, p.positive(candidate))
			if err != nil {
				return Solution[C, M]{}, errors.Wrap(err, "checking theory")
			}
			if m, ok := result.Model(); ok {
				fixingSet, model, changed = candidate, m, true
				break
			}
		}
		if !changed {
			s.logger.WithFields(logrus.Fields{
				"fixing_set_size": len(fixingSet),
				"passes":          pass,
			}).Debug("finished minimizing")
			return Solution[C, M]{Model: model, FixingSet: fixingSet}, nil
		}
	}
}
