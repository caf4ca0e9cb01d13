package theorysolver

import (
	"github.com/sirupsen/logrus"
)

// Action is returned by listener callbacks to say whether the search
// should go on.
type Action int

const (
	Continue Action = iota
	Stop
)

func (a Action) String() string {
	switch a {
	case Continue:
		return "continue"
	case Stop:
		return "stop"
	}
	return "unknown"
}

// WeakeningListener observes the clause weakenings performed by
// fixing-set finders. Weakenings is the new value of the finder's
// weakening counter, which never decreases during a run.
type WeakeningListener interface {
	OnWeakening(weakenings int) Action
}

// Listener observes the progress of a run.
type Listener[C comparable, M any] interface {
	WeakeningListener
	// OnCore is called with the soft part of every unsatisfiable
	// core returned by the theory.
	OnCore(core []C) Action
	// OnFixingSet is called whenever a fixing set leads to a model.
	OnFixingSet(model M, fixingSet []C) Action
}

// NopListener continues on every event.
type NopListener[C comparable, M any] struct{}

func (NopListener[C, M]) OnCore([]C) Action { return Continue }
func (NopListener[C, M]) OnFixingSet(M, []C) Action { return Continue }
func (NopListener[C, M]) OnWeakening(int) Action { return Continue }

// Funcs is a Listener built from optional callbacks. Missing
// callbacks continue.
type Funcs[C comparable, M any] struct {
	Core      func(core []C) Action
	FixingSet func(model M, fixingSet []C) Action
	Weakening func(weakenings int) Action
}

func (f Funcs[C, M]) OnCore(core []C) Action {
	if f.Core == nil {
		return Continue
	}
	return f.Core(core)
}

func (f Funcs[C, M]) OnFixingSet(model M, fixingSet []C) Action {
	if f.FixingSet == nil {
		return Continue
	}
	return f.FixingSet(model, fixingSet)
}

func (f Funcs[C, M]) OnWeakening(weakenings int) Action {
	if f.Weakening == nil {
		return Continue
	}
	return f.Weakening(weakenings)
}

type multi[C comparable, M any] []Listener[C, M]

// Multi notifies every listener of every event and stops if any of
// them asks to.
func Multi[C comparable, M any](listeners ...Listener[C, M]) Listener[C, M] {
	return multi[C, M](listeners)
}

func (m multi[C, M]) OnCore(core []C) Action {
	action := Continue
	for _, l := range m {
		if l.OnCore(core) == Stop {
			action = Stop
		}
	}
	return action
}

func (m multi[C, M]) OnFixingSet(model M, fixingSet []C) Action {
	action := Continue
	for _, l := range m {
		if l.OnFixingSet(model, fixingSet) == Stop {
			action = Stop
		}
	}
	return action
}

func (m multi[C, M]) OnWeakening(weakenings int) Action {
	action := Continue
	for _, l := range m {
		if l.OnWeakening(weakenings) == Stop {
			action = Stop
		}
	}
	return action
}

// LoggingListener reports every event to a logger and never stops.
type LoggingListener[C comparable, M any] struct {
	Logger logrus.FieldLogger
}

func NewLoggingListener[C comparable, M any](logger logrus.FieldLogger) LoggingListener[C, M] {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return LoggingListener[C, M]{Logger: logger}
}

func (l LoggingListener[C, M]) OnCore(core []C) Action {
	l.Logger.WithField("core_size", len(core)).Info("invalid model")
	return Continue
}

func (l LoggingListener[C, M]) OnFixingSet(_ M, fixingSet []C) Action {
	l.Logger.WithField("fixing_set_size", len(fixingSet)).Info("valid model")
	return Continue
}

func (l LoggingListener[C, M]) OnWeakening(weakenings int) Action {
	l.Logger.WithField("weakenings", weakenings).Debug("weakened soft clauses")
	return Continue
}
