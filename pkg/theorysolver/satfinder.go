package theorysolver

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/sjslang/sjsc/pkg/sat"
)

// SATFinder proposes minimum fixing sets with an incremental SAT
// oracle.
//
// Every constraint owns one persistent variable meaning "kept". Each
// constraint contributes a soft unit clause asserting that it is kept,
// and each core contributes a hard clause asserting that at least one
// of its members is dropped. When the oracle reports that a set of
// soft clauses cannot hold together, each of them is weakened with a
// fresh literal, and the fresh literals of one round are made mutually
// exclusive. A round therefore permits exactly one more discarded
// constraint, so a model found after k rounds drops at most k
// constraints while at least k must be dropped.
type SATFinder[C comparable] struct {
	solver sat.Solver
	logger logrus.FieldLogger

	weakenings  int
	constraints []C
	vars        map[C]int
	// soft holds one clause per constraint, in the order of
	// constraints, extended with the literals of every weakening
	// that touched it.
	soft [][]int
	// hard holds core clauses and mutual-exclusion clauses.
	hard [][]int
	// keys maps the clause keys of the current oracle session to
	// indices in soft.
	keys map[sat.ClauseKey]int
}

var _ FixingSetFinder[int] = &SATFinder[int]{}

func NewSATFinder[C comparable](solver sat.Solver, logger logrus.FieldLogger) *SATFinder[C] {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &SATFinder[C]{
		solver: solver,
		logger: logger,
	}
}

func (f *SATFinder[C]) Setup(all []C) {
	f.solver.Reset()
	f.weakenings = 0
	f.constraints = f.constraints[:0]
	f.vars = make(map[C]int, len(all))
	for _, c := range all {
		if _, ok := f.vars[c]; ok {
			continue
		}
		f.vars[c] = 0
		f.constraints = append(f.constraints, c)
	}

	offset := f.solver.AllocVars(len(f.constraints))
	f.soft = make([][]int, len(f.constraints))
	for i, c := range f.constraints {
		f.vars[c] = offset + i
		f.soft[i] = []int{offset + i}
	}
	f.hard = nil
	f.assert()
}

// assert teaches every soft and hard clause to the oracle, recording
// the keys of the soft ones.
func (f *SATFinder[C]) assert() {
	f.keys = make(map[sat.ClauseKey]int, len(f.soft))
	for i, clause := range f.soft {
		f.keys[f.solver.AddClause(clause...)] = i
	}
	for _, clause := range f.hard {
		f.solver.AddClause(clause...)
	}
}

func (f *SATFinder[C]) AddCore(core []C) error {
	lits := make([]int, 0, len(core))
	for _, c := range core {
		v, ok := f.vars[c]
		if !ok {
			return UnknownConstraint{Constraint: c}
		}
		lits = append(lits, -v)
	}
	f.hard = append(f.hard, lits)
	f.solver.AddClause(lits...)
	return nil
}

// Weakenings returns the number of weakening rounds performed since
// the last Setup.
func (f *SATFinder[C]) Weakenings() int {
	return f.weakenings
}

func (f *SATFinder[C]) CurrentFixingSet(listener WeakeningListener) ([]C, Action, error) {
	for {
		result, err := f.solver.Solve()
		if err != nil {
			return nil, Continue, errors.Wrap(err, "sat fixing-set finder")
		}
		if result.Satisfiable() {
			var out []C
			for _, c := range f.constraints {
				if !result.Model.Value(f.vars[c]) {
					out = append(out, c)
				}
			}
			return out, Continue, nil
		}

		var weaken []int
		for _, key := range result.Core {
			if i, ok := f.keys[key]; ok {
				weaken = append(weaken, i)
			}
		}
		if len(weaken) == 0 {
			return nil, Continue, errors.Wrap(ErrHardUnsat, "core clauses alone are unsatisfiable")
		}

		f.weakenings++
		if f.weakenings > len(f.constraints) {
			return nil, Continue, InconsistentFixingSet{
				Strategy: StrategySAT,
				Reason:   fmt.Sprintf("%d weakenings exceed %d soft constraints", f.weakenings, len(f.constraints)),
			}
		}
		f.logger.WithFields(logrus.Fields{
			"weakenings": f.weakenings,
			"clauses":    len(weaken),
		}).Debug("weakening soft clauses")
		if listener != nil && listener.OnWeakening(f.weakenings) == Stop {
			return nil, Stop, nil
		}

		f.solver.Reset()
		offset := f.solver.AllocVars(len(weaken))
		for i, idx := range weaken {
			f.soft[idx] = append(f.soft[idx], offset+i)
		}
		for i := range weaken {
			for j := i + 1; j < len(weaken); j++ {
				f.hard = append(f.hard, []int{-(offset + i), -(offset + j)})
			}
		}
		f.assert()
	}
}

func (f *SATFinder[C]) Optimal() bool {
	return true
}
