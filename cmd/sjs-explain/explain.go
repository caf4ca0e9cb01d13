package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/sjslang/sjsc/pkg/eqtheory"
	"github.com/sjslang/sjsc/pkg/metrics"
	"github.com/sjslang/sjsc/pkg/theorysolver"
)

// TypeErrors is returned when the input is not well-typed, after the
// explanation has been printed.
type TypeErrors int

func (e TypeErrors) Error() string {
	return fmt.Sprintf("found %d type errors", int(e))
}

type explainOptions struct {
	Input      string
	Strategy   string
	Timeout    time.Duration
	Minimize   bool
	Enumerate  int
	MetricsOut string

	Out    io.Writer
	Logger log.FieldLogger
}

func newExplainOptions(out io.Writer) *explainOptions {
	return &explainOptions{
		Strategy: theorysolver.DefaultStrategy(),
		Out:      out,
		Logger:   log.StandardLogger(),
	}
}

func (o *explainOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Input, "input", "i", o.Input, "YAML file holding the typing constraints to check.")
	fs.StringVarP(&o.Strategy, "strategy", "s", o.Strategy, fmt.Sprintf("Fixing-set strategy. One of: %v", theorysolver.StrategyNames()))
	fs.DurationVar(&o.Timeout, "timeout", o.Timeout, "Bound on each SAT or MaxSAT solve. Zero selects the strategy default.")
	fs.BoolVar(&o.Minimize, "minimize", o.Minimize, "Shrink the fixing set until no single constraint can be restored. Always done for non-optimal strategies.")
	fs.IntVar(&o.Enumerate, "enumerate", o.Enumerate, "Print up to this many alternative fixing sets instead of a single explanation.")
	fs.StringVar(&o.MetricsOut, "metrics-out", o.MetricsOut, "Write solver metrics in Prometheus text format to this file.")
}

func (o explainOptions) Validate() error {
	var errs []error
	if o.Input == "" {
		errs = append(errs, errors.New("--input is required"))
	}
	if !sets.New(theorysolver.StrategyNames()...).Has(o.Strategy) {
		errs = append(errs, theorysolver.UnknownStrategy(o.Strategy))
	}
	if o.Timeout < 0 {
		errs = append(errs, errors.Errorf("--timeout must not be negative, got %s", o.Timeout))
	}
	if o.Enumerate < 0 {
		errs = append(errs, errors.Errorf("--enumerate must not be negative, got %d", o.Enumerate))
	}
	if o.Enumerate > 0 && o.Minimize {
		errs = append(errs, errors.New("--enumerate and --minimize are mutually exclusive"))
	}
	return utilerrors.NewAggregate(errs)
}

func newExplainCmd(ctx context.Context) *cobra.Command {
	o := newExplainOptions(os.Stdout)
	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Check typing constraints and explain any type errors",
		Long: `The explain command checks a set of typing constraints. If they
        are inconsistent, it reports a smallest set of soft constraints
        whose removal makes the rest consistent, and exits with status 1.

        $ sjs-explain explain --input constraints.yaml --strategy maxsat
        `,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			o.Out = cmd.OutOrStdout()
			if err := o.Validate(); err != nil {
				return err
			}
			return o.Run(ctx)
		},
	}
	o.AddFlags(cmd.Flags())
	return cmd
}

func (o *explainOptions) Run(ctx context.Context) error {
	logger := o.Logger.WithFields(log.Fields{"input": o.Input, "strategy": o.Strategy})

	problem, err := eqtheory.LoadFile(o.Input)
	if err != nil {
		return err
	}
	for id, first := range problem.Redundant {
		logger.WithField("constraint", id).Warnf("constraint repeats %s", first)
	}

	registry := prometheus.NewRegistry()
	metrics.MustRegister(registry)
	defer func() {
		if o.MetricsOut == "" {
			return
		}
		if err := o.writeMetrics(registry); err != nil {
			logger.WithError(err).Warn("failed to write metrics")
		}
	}()

	finder, err := theorysolver.NewFinder[eqtheory.Constraint](o.Strategy, theorysolver.FinderConfig{
		Timeout: o.Timeout,
		Logger:  logger,
	})
	if err != nil {
		return err
	}
	theory := theorysolver.NewInstrumentedTheory[eqtheory.Constraint, eqtheory.Assignment](
		eqtheory.Theory{},
		metrics.RegisterTheoryCheckSuccess,
		metrics.RegisterTheoryCheckFailure,
	)
	listener := theorysolver.Multi[eqtheory.Constraint, eqtheory.Assignment](
		theorysolver.NewLoggingListener[eqtheory.Constraint, eqtheory.Assignment](logger),
		metrics.NewListener[eqtheory.Constraint, eqtheory.Assignment](o.Strategy),
	)
	solver := theorysolver.New[eqtheory.Constraint, eqtheory.Assignment](theory, finder, theorysolver.WithLogger(logger))

	if o.Enumerate > 0 {
		return o.enumerate(ctx, solver, problem, listener)
	}

	start := time.Now()
	solution, err := solver.Solve(ctx, problem.Hard, problem.Soft, listener)
	if err != nil {
		outcome := metrics.Unfixable
		if errors.Is(err, theorysolver.ErrIncomplete) {
			outcome = metrics.Incomplete
		}
		metrics.RegisterSolve(o.Strategy, outcome, time.Since(start))
		if errors.Is(err, theorysolver.ErrHardUnsat) {
			return errors.Wrap(err, "constraints marked hard contradict each other")
		}
		return err
	}

	if len(solution.FixingSet) > 0 && (o.Minimize || !finder.Optimal()) {
		solution, err = solver.Minimize(ctx, problem.Hard, problem.Soft, solution)
		if err != nil {
			return err
		}
	}

	if len(solution.FixingSet) == 0 {
		metrics.RegisterSolve(o.Strategy, metrics.WellTyped, time.Since(start))
		fmt.Fprintln(o.Out, "well-typed")
		printAssignment(o.Out, solution.Model)
		return nil
	}

	metrics.RegisterSolve(o.Strategy, metrics.Fixed, time.Since(start))
	fmt.Fprintf(o.Out, "Found %d type errors:\n", len(solution.FixingSet))
	printFixingSet(o.Out, solution.FixingSet)
	printAssignment(o.Out, solution.Model)
	return TypeErrors(len(solution.FixingSet))
}

func (o *explainOptions) enumerate(ctx context.Context, solver *theorysolver.Solver[eqtheory.Constraint, eqtheory.Assignment], problem *eqtheory.Problem, listener theorysolver.Listener[eqtheory.Constraint, eqtheory.Assignment]) error {
	found := 0
	report := theorysolver.Funcs[eqtheory.Constraint, eqtheory.Assignment]{
		FixingSet: func(_ eqtheory.Assignment, fixingSet []eqtheory.Constraint) theorysolver.Action {
			if len(fixingSet) == 0 {
				fmt.Fprintln(o.Out, "well-typed")
				return theorysolver.Stop
			}
			found++
			fmt.Fprintf(o.Out, "Explanation %d:\n", found)
			printFixingSet(o.Out, fixingSet)
			if found >= o.Enumerate {
				return theorysolver.Stop
			}
			return theorysolver.Continue
		},
	}
	if err := solver.Enumerate(ctx, problem.Hard, problem.Soft, theorysolver.Multi[eqtheory.Constraint, eqtheory.Assignment](listener, report)); err != nil {
		if errors.Is(err, theorysolver.ErrHardUnsat) {
			return errors.Wrap(err, "constraints marked hard contradict each other")
		}
		return err
	}
	if found > 0 {
		return TypeErrors(found)
	}
	return nil
}

func (o *explainOptions) writeMetrics(g prometheus.Gatherer) error {
	f, err := os.Create(o.MetricsOut)
	if err != nil {
		return err
	}
	if err := metrics.WriteText(f, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printFixingSet(w io.Writer, fixingSet []eqtheory.Constraint) {
	for _, c := range fixingSet {
		fmt.Fprintf(w, "  line %d: %s (%s)\n", c.Line, c, c.ID)
	}
}

func printAssignment(w io.Writer, a eqtheory.Assignment) {
	if len(a) > 0 {
		fmt.Fprintf(w, "assignment: %s\n", a)
	}
}
