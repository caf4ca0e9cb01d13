//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o satfakes/fake_solver.go . Solver

// Package sat provides an incremental boolean satisfiability oracle
// whose unsatisfiable cores name previously added clauses rather than
// variables.
//
// Variables and literals use the DIMACS convention: a variable is a
// positive integer v, and a literal is either v or -v.
package sat

import (
	"errors"
	"fmt"
)

// ClauseKey identifies a clause added to a Solver. Keys are stable
// until the next call to Reset.
type ClauseKey int

// Model is the set of variables assigned true by a satisfying
// assignment.
type Model map[int]struct{}

// Value reports whether variable v is true in the model.
func (m Model) Value(v int) bool {
	_, ok := m[v]
	return ok
}

// Result holds the outcome of a call to Solve. Exactly one of Model
// and Core is non-nil.
type Result struct {
	// Model is set when the clauses are satisfiable.
	Model Model
	// Core is set when the clauses are unsatisfiable. It contains
	// the keys of a subset of the added clauses which are, by
	// themselves, unsatisfiable.
	Core []ClauseKey
}

// Satisfiable reports whether the result carries a model.
func (r Result) Satisfiable() bool {
	return r.Model != nil
}

// ErrTimeout is returned by Solve when the solver could not decide
// the problem within its time bound. It is not retried.
var ErrTimeout = errors.New("sat solver timed out")

// UsageError is the panic value used when the Solver API is misused
// by its caller.
type UsageError string

func (e UsageError) Error() string {
	return fmt.Sprintf("sat: %s", string(e))
}

// Solver is an incremental SAT oracle with clause identity tracking.
type Solver interface {
	// AllocVars allocates count fresh variables and returns an
	// offset such that [offset, offset+count) are all legal
	// variables. It may only be called before any other method, or
	// immediately after Reset.
	AllocVars(count int) int
	// AddClause asserts the disjunction of the given literals and
	// returns the key naming the new clause. Every literal must
	// refer to an allocated variable.
	AddClause(lits ...int) ClauseKey
	// Clause returns the literals of a previously added clause.
	Clause(key ClauseKey) []int
	// Reset discards all added clauses. The variable universe is
	// preserved and may be grown again with AllocVars.
	Reset()
	// Solve checks the conjunction of all added clauses.
	Solve() (Result, error)
}
