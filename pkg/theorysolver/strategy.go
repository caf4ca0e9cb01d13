package theorysolver

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sjslang/sjsc/pkg/sat"
)

const (
	StrategyGreedy = "greedy"
	StrategySAT    = "sat"
	StrategyMaxSAT = "maxsat"
)

var strategies = []string{StrategyGreedy, StrategySAT, StrategyMaxSAT}

// UnknownStrategy is returned by NewFinder for unrecognized strategy
// names.
type UnknownStrategy string

func (e UnknownStrategy) Error() string {
	return fmt.Sprintf("unknown explanation strategy %q (available: %s)", string(e), strings.Join(StrategyNames(), ", "))
}

// DefaultStrategy returns the name of the strategy used when none is
// requested.
func DefaultStrategy() string {
	return StrategySAT
}

// StrategyNames returns the names of every available strategy in
// lexical order.
func StrategyNames() []string {
	names := make([]string, len(strategies))
	copy(names, strategies)
	sort.Strings(names)
	return names
}

// FinderConfig holds the settings shared by the strategies. Zero
// values select defaults.
type FinderConfig struct {
	// Timeout bounds each SAT or MaxSAT solve.
	Timeout time.Duration
	Logger  logrus.FieldLogger
}

// NewFinder returns a fresh FixingSetFinder implementing the named
// strategy.
func NewFinder[C comparable](name string, config FinderConfig) (FixingSetFinder[C], error) {
	logger := config.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	logger = logger.WithField("strategy", name)

	switch name {
	case StrategyGreedy:
		return NewGreedyFinder[C](), nil
	case StrategySAT:
		timeout := config.Timeout
		if timeout == 0 {
			timeout = sat.DefaultTimeout
		}
		return NewSATFinder[C](sat.NewGini(sat.WithTimeout(timeout), sat.WithLogger(logger)), logger), nil
	case StrategyMaxSAT:
		timeout := config.Timeout
		if timeout == 0 {
			timeout = DefaultMaxSATTimeout
		}
		return NewMaxSATFinder[C](timeout, logger), nil
	}
	return nil, UnknownStrategy(name)
}
