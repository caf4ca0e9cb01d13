package theorysolver

// FixingSetFinder is a strategy for proposing fixing sets from the
// unsatisfiable cores accumulated so far.
//
// Setup must be called before any other method; it discards any
// previously accumulated cores. Every proposal returned by
// CurrentFixingSet intersects every core added since the last Setup.
type FixingSetFinder[C comparable] interface {
	// Setup resets the finder for a run over the given soft
	// constraints.
	Setup(all []C)
	// AddCore records an unsatisfiable core. Every member must have
	// been passed to Setup.
	AddCore(core []C) error
	// CurrentFixingSet proposes a set of constraints to discard. If
	// the listener asks to stop, the returned Action is Stop and
	// the proposal is nil.
	CurrentFixingSet(listener WeakeningListener) ([]C, Action, error)
	// Optimal reports whether proposals are of minimum size with
	// respect to the cores added so far.
	Optimal() bool
}

func copyCore[C comparable](core []C) []C {
	result := make([]C, len(core))
	copy(result, core)
	return result
}
