package sat

import (
	"fmt"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
	"github.com/sirupsen/logrus"
)

const (
	satisfiable   = 1
	unsatisfiable = -1

	// DefaultTimeout bounds every call to Solve unless overridden
	// with WithTimeout.
	DefaultTimeout = 30 * time.Second
)

// GiniSolver implements Solver on top of gini. Since gini cannot
// retract clauses, every clause is guarded by a fresh activation
// variable a, added as (¬a ∨ lits...), and every activation variable
// is assumed true when solving. The failed assumptions reported by
// gini then name the clauses responsible for unsatisfiability.
type GiniSolver struct {
	g        *gini.Gini
	nvars    int
	canAlloc bool

	// keys holds activation variables in insertion order;
	// clauses maps each of them to the literals of the clause it
	// guards.
	keys    []ClauseKey
	clauses map[ClauseKey][]int

	timeout time.Duration
	logger  logrus.FieldLogger
	buf     []z.Lit
}

var _ Solver = &GiniSolver{}

type Option func(s *GiniSolver)

// WithTimeout bounds the duration of each call to Solve. A
// non-positive duration disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(s *GiniSolver) {
		s.timeout = d
	}
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *GiniSolver) {
		s.logger = logger
	}
}

func NewGini(options ...Option) *GiniSolver {
	s := &GiniSolver{
		g:        gini.New(),
		canAlloc: true,
		clauses:  make(map[ClauseKey][]int),
		timeout:  DefaultTimeout,
		logger:   logrus.StandardLogger(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *GiniSolver) AllocVars(count int) int {
	if !s.canAlloc {
		panic(UsageError("variables may only be allocated before adding clauses or solving, or right after a reset"))
	}
	if count < 0 {
		panic(UsageError(fmt.Sprintf("cannot allocate %d variables", count)))
	}
	offset := s.nvars + 1
	s.nvars += count
	return offset
}

func (s *GiniSolver) AddClause(lits ...int) ClauseKey {
	s.canAlloc = false
	for _, lit := range lits {
		v := lit
		if v < 0 {
			v = -v
		}
		if v == 0 || v > s.nvars {
			panic(UsageError(fmt.Sprintf("literal %d refers to an unallocated variable", lit)))
		}
		if _, ok := s.clauses[ClauseKey(v)]; ok {
			panic(UsageError(fmt.Sprintf("literal %d refers to an activation variable", lit)))
		}
	}

	s.nvars++
	key := ClauseKey(s.nvars)
	s.g.Add(z.Dimacs2Lit(-int(key)))
	for _, lit := range lits {
		s.g.Add(z.Dimacs2Lit(lit))
	}
	s.g.Add(z.LitNull)

	stored := make([]int, len(lits))
	copy(stored, lits)
	s.keys = append(s.keys, key)
	s.clauses[key] = stored
	return key
}

func (s *GiniSolver) Clause(key ClauseKey) []int {
	lits, ok := s.clauses[key]
	if !ok {
		panic(UsageError(fmt.Sprintf("no clause with key %d", key)))
	}
	return lits
}

func (s *GiniSolver) Reset() {
	s.g = gini.New()
	s.keys = nil
	s.clauses = make(map[ClauseKey][]int)
	s.canAlloc = true
}

func (s *GiniSolver) Solve() (Result, error) {
	s.canAlloc = false

	s.buf = s.buf[:0]
	for _, key := range s.keys {
		s.buf = append(s.buf, z.Dimacs2Lit(int(key)))
	}
	s.g.Assume(s.buf...)

	start := time.Now()
	var outcome int
	if s.timeout > 0 {
		outcome = s.g.GoSolve().Try(s.timeout)
	} else {
		outcome = s.g.Solve()
	}
	s.logger.WithFields(logrus.Fields{
		"vars":     s.nvars,
		"clauses":  len(s.keys),
		"outcome":  outcome,
		"duration": time.Since(start),
	}).Debug("sat solve")

	switch outcome {
	case satisfiable:
		model := make(Model)
		max := int(s.g.MaxVar())
		for v := 1; v <= s.nvars && v <= max; v++ {
			if _, ok := s.clauses[ClauseKey(v)]; ok {
				continue
			}
			if s.g.Value(z.Var(v).Pos()) {
				model[v] = struct{}{}
			}
		}
		return Result{Model: model}, nil
	case unsatisfiable:
		whys := s.g.Why(nil)
		core := make([]ClauseKey, 0, len(whys))
		for _, m := range whys {
			key := ClauseKey(m.Dimacs())
			if _, ok := s.clauses[key]; ok {
				core = append(core, key)
			}
		}
		return Result{Core: core}, nil
	}
	return Result{}, ErrTimeout
}
