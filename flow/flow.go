// Package flow runs a named sequence of fallible steps over a value, chaining
// them with result.FlatMap so that the first failure short-circuits the rest.
package flow

import (
	"context"
	"errors"
	"fmt"

	logging "github.com/ipfs/go-log/v2"

	"github.com/application-research/go-monads/result"
)

var log = logging.Logger("flow")

// ErrSkip is returned by a step to end the flow early without failing it.
// The value the step returned alongside ErrSkip becomes the flow's output.
var ErrSkip = errors.New("skip remaining steps")

// Skip returns err unchanged if it is non-nil, and ErrSkip otherwise. Steps
// use it to stop the flow whether or not something went wrong.
func Skip(errOrNil error) error {
	if errOrNil != nil {
		return errOrNil
	}
	return ErrSkip
}

// StepError is the error of a flow whose step failed
type StepError struct {
	Flow string
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("flow %s: step %s: %v", e.Flow, e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Step transforms a value, failing with a non-nil error
type Step[T any] func(ctx context.Context, in T) (T, error)

type namedStep[T any] struct {
	name string
	fn   Step[T]
}

type Flow[T any] struct {
	name  string
	cfg   Config
	steps []namedStep[T]
}

func New[T any](name string, opts ...Option) *Flow[T] {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Flow[T]{
		name: name,
		cfg:  cfg,
	}
}

// Then appends a step and returns the flow for chaining
func (f *Flow[T]) Then(name string, step Step[T]) *Flow[T] {
	f.steps = append(f.steps, namedStep[T]{name: name, fn: step})
	return f
}

func (f *Flow[T]) Len() int {
	return len(f.steps)
}

// Apply runs the steps over in. An Err input is returned unchanged without
// running any step. A step failure ends the flow with a *StepError, and a
// step returning ErrSkip ends it with Ok of that step's value.
func (f *Flow[T]) Apply(ctx context.Context, in result.Result[T, error]) result.Result[T, error] {
	out := in
	for i, step := range f.steps {
		if out.IsErr() {
			break
		}

		if err := ctx.Err(); err != nil {
			log.Warnw("flow cancelled", "flow", f.name, "step", step.name, "remaining", len(f.steps)-i, "err", err)
			return result.Err[T](err)
		}

		skipped := false
		out = result.FlatMap(out, func(value T) result.Result[T, error] {
			next, err := f.runStep(ctx, step, value)
			if errors.Is(err, ErrSkip) {
				skipped = true
				return result.Ok[T, error](next)
			}
			if err != nil {
				log.Debugw("step failed", "flow", f.name, "step", step.name, "err", err)
				return result.Err[T](error(&StepError{Flow: f.name, Step: step.name, Err: err}))
			}
			return result.Ok[T, error](next)
		})

		if skipped {
			if f.cfg.LogSkips {
				log.Infow("flow skipped remaining steps", "flow", f.name, "step", step.name, "remaining", len(f.steps)-i-1)
			}
			break
		}
	}
	return out
}

// Run runs the steps over input and returns the final value
func (f *Flow[T]) Run(ctx context.Context, input T) (T, error) {
	return result.Unwrap(f.Apply(ctx, result.Ok[T, error](input)))
}

func (f *Flow[T]) runStep(ctx context.Context, step namedStep[T], value T) (T, error) {
	if f.cfg.StepTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.cfg.StepTimeout)
		defer cancel()
	}
	return step.fn(ctx, value)
}
