package theorysolver

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrHardUnsat means the hard constraints admit no model no
	// matter which soft constraints are discarded.
	ErrHardUnsat = errors.New("hard constraints are unsatisfiable")

	// ErrIncomplete is returned when the context is cancelled before
	// a fixing set could be found. No partial result accompanies it.
	ErrIncomplete = errors.New("cancelled before a fixing set could be found")

	// ErrStopped is returned by Solve when a listener asked to stop
	// before a fixing set was found.
	ErrStopped = errors.New("stopped by listener before a fixing set could be found")
)

// InconsistentFixingSet reports a fixing-set finder defect, such as a
// proposal that misses one of the accumulated cores. It is never
// recoverable.
type InconsistentFixingSet struct {
	Strategy string
	Reason   string
}

func (e InconsistentFixingSet) Error() string {
	return fmt.Sprintf("internal inconsistency in %s fixing-set finder: %s", e.Strategy, e.Reason)
}

// UnknownConstraint is returned when a core mentions a constraint that
// was not passed to Setup.
type UnknownConstraint struct {
	Constraint interface{}
}

func (e UnknownConstraint) Error() string {
	return fmt.Sprintf("core contains constraint %v which is not in the system", e.Constraint)
}
