package solo

import (
	"context"
	"errors"

	"github.com/ib-77/fcatch/pkg/fcatch"
)

func Succeed[T, E any](input T) fcatch.Result[T, E] {
	return fcatch.Success[T, E](input)
}

func Fail[T, E any](err E) fcatch.Result[T, E] {
	return fcatch.Failure[T](err)
}

// FromPair converts a Go (value, error) pair into a Result.
func FromPair[T any](value T, err error) fcatch.Result[T, error] {
	if err != nil {
		return fcatch.Failure[T](err)
	}
	return fcatch.Success[T, error](value)
}

func Switch[In, Out, E any](ctx context.Context,
	input fcatch.Result[In, E],
	onSuccess func(ctx context.Context, r In) fcatch.Result[Out, E]) fcatch.Result[Out, E] {

	if input.Ok() {
		return onSuccess(ctx, input.Value())
	}
	return fcatch.Failure[Out](input.Err())
}

func Map[In, Out, E any](ctx context.Context,
	input fcatch.Result[In, E],
	onSuccess func(ctx context.Context, r In) Out) fcatch.Result[Out, E] {

	if input.Ok() {
		return fcatch.Success[Out, E](onSuccess(ctx, input.Value()))
	}
	return fcatch.Failure[Out](input.Err())
}

func MapErr[T, E, F any](ctx context.Context,
	input fcatch.Result[T, E],
	onError func(ctx context.Context, err E) F) fcatch.Result[T, F] {

	if input.Ok() {
		return fcatch.Success[T, F](input.Value())
	}
	return fcatch.Failure[T](onError(ctx, input.Err()))
}

// Try runs onTryExecute on the value of a success through c, so both the
// returned error and a panic end up as a mapped failure.
func Try[In, Out, E any](ctx context.Context, c fcatch.Catcher[E],
	input fcatch.Result[In, E],
	onTryExecute func(ctx context.Context, r In) (Out, error)) fcatch.Result[Out, E] {

	if input.Ok() {
		return fcatch.Run(c, func() (Out, error) {
			return onTryExecute(ctx, input.Value())
		})
	}
	return fcatch.Failure[Out](input.Err())
}

func Tee[T, E any](ctx context.Context,
	input fcatch.Result[T, E],
	onSuccess func(ctx context.Context, r fcatch.Result[T, E])) fcatch.Result[T, E] {

	if input.Ok() {
		onSuccess(ctx, input)
	}

	return input
}

func DoubleTee[T, E any](ctx context.Context, input fcatch.Result[T, E],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err E)) fcatch.Result[T, E] {

	if input.Ok() {
		if onSuccess != nil {
			onSuccess(ctx, input.Value())
		}
	} else if onError != nil {
		onError(ctx, input.Err())
	}

	return input
}

// OrElse returns the value of a success or fallback otherwise.
func OrElse[T, E any](input fcatch.Result[T, E], fallback T) T {
	if input.Ok() {
		return input.Value()
	}
	return fallback
}

// Unwrap turns a Result back into a Go (value, error) pair. A failure whose
// error is nil is reported as ErrNilFailure.
func Unwrap[T any, E error](input fcatch.Result[T, E]) (T, error) {
	if input.Ok() {
		return input.Value(), nil
	}
	var zero T
	if fcatch.IsNil(input.Err()) {
		return zero, ErrNilFailure
	}
	return zero, input.Err()
}

var ErrNilFailure = errors.New("failure without error")

func Finally[In, Out, E any](ctx context.Context, input fcatch.Result[In, E],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err E) Out) Out {

	if input.Ok() {
		return onSuccess(ctx, input.Value())
	}
	return onError(ctx, input.Err())
}

// Combine collects the values of all results. Unless breakOnError is set,
// every failure is visited and their errors are joined.
func Combine[T any](ctx context.Context, breakOnError bool,
	inputs ...fcatch.Result[T, error]) fcatch.Result[[]T, error] {

	values := make([]T, 0, len(inputs))
	var err error

	for _, in := range inputs {
		if ctx.Err() != nil {
			return fcatch.Failure[[]T](ctx.Err())
		}

		if in.Ok() {
			values = append(values, in.Value())
			continue
		}

		current := in.Err()
		if current == nil {
			current = ErrNilFailure
		}
		if breakOnError {
			return fcatch.Failure[[]T](current)
		}
		e := fcatch.GetErrors(err)
		e = append(e, current)
		err = errors.Join(e...)
	}

	if !fcatch.IsNil(err) {
		return fcatch.Failure[[]T](err)
	}
	return fcatch.Success[[]T, error](values)
}
