package theorysolver

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Theory is a decision procedure for conjunctions of constraints.
//
// Check must return either a model of all the given constraints or a
// non-empty unsatisfiable core drawn from them. The degenerate (but
// legal) core is the entire input. The result must depend only on the
// argument: implementations that keep internal state must rebuild it
// on every call, since Check is retried with overlapping inputs many
// times during a single run. Small cores make the search faster but
// never affect correctness.
type Theory[C comparable, M any] interface {
	Check(ctx context.Context, constraints []C) (Result[C, M], error)
}

// TheoryFunc adapts a function to the Theory interface.
type TheoryFunc[C comparable, M any] func(ctx context.Context, constraints []C) (Result[C, M], error)

func (f TheoryFunc[C, M]) Check(ctx context.Context, constraints []C) (Result[C, M], error) {
	return f(ctx, constraints)
}

const instrumentationName = "github.com/sjslang/sjsc/pkg/theorysolver"

// InstrumentedTheory decorates a Theory with duration emitters and a
// tracing span per check. Satisfiable checks are reported to the
// success emitter; unsatisfiable checks and errors to the failure
// emitter.
type InstrumentedTheory[C comparable, M any] struct {
	theory                Theory[C, M]
	successMetricsEmitter func(time.Duration)
	failureMetricsEmitter func(time.Duration)
	tracer                trace.Tracer
}

var _ Theory[int, struct{}] = &InstrumentedTheory[int, struct{}]{}

func NewInstrumentedTheory[C comparable, M any](theory Theory[C, M], successMetricsEmitter, failureMetricsEmitter func(time.Duration)) *InstrumentedTheory[C, M] {
	return &InstrumentedTheory[C, M]{
		theory:                theory,
		successMetricsEmitter: successMetricsEmitter,
		failureMetricsEmitter: failureMetricsEmitter,
		tracer:                otel.Tracer(instrumentationName),
	}
}

func (it *InstrumentedTheory[C, M]) Check(ctx context.Context, constraints []C) (Result[C, M], error) {
	ctx, span := it.tracer.Start(ctx, "theory.check",
		trace.WithAttributes(attribute.Int("constraints", len(constraints))))
	defer span.End()

	start := time.Now()
	result, err := it.theory.Check(ctx, constraints)
	switch {
	case err != nil:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		it.failureMetricsEmitter(time.Since(start))
	case result.Satisfiable():
		span.SetAttributes(attribute.Bool("satisfiable", true))
		it.successMetricsEmitter(time.Since(start))
	default:
		span.SetAttributes(
			attribute.Bool("satisfiable", false),
			attribute.Int("core_size", len(result.Core())),
		)
		it.failureMetricsEmitter(time.Since(start))
	}
	return result, err
}
