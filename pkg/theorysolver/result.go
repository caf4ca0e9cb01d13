package theorysolver

// Result is the outcome of checking a conjunction of constraints
// against a theory: either a model or an unsatisfiable core, never
// both and never neither.
type Result[C comparable, M any] struct {
	model       M
	core        []C
	satisfiable bool
}

// Sat returns a Result carrying a model.
func Sat[C comparable, M any](model M) Result[C, M] {
	return Result[C, M]{model: model, satisfiable: true}
}

// Unsat returns a Result carrying an unsatisfiable core: a subset of
// the checked constraints which are, by themselves, unsatisfiable.
func Unsat[C comparable, M any](core []C) Result[C, M] {
	return Result[C, M]{core: core}
}

func (r Result[C, M]) Satisfiable() bool {
	return r.satisfiable
}

// Model returns the model and true if the result is satisfiable.
func (r Result[C, M]) Model() (M, bool) {
	return r.model, r.satisfiable
}

// Core returns the unsatisfiable core, or nil if the result is
// satisfiable.
func (r Result[C, M]) Core() []C {
	if r.satisfiable {
		return nil
	}
	return r.core
}

// Solution pairs a model with the fixing set that had to be discarded
// to obtain it. An empty fixing set means that every constraint was
// satisfied.
type Solution[C comparable, M any] struct {
	Model     M
	FixingSet []C
}
