package chain

import (
	"context"

	"github.com/ib-77/fcatch/pkg/fcatch"
	"github.com/ib-77/fcatch/pkg/fcatch/solo"
)

// Chain wraps a fcatch.Result with context to enable fluent chaining
type Chain[T, E any] struct {
	ctx    context.Context
	catch  fcatch.Catcher[E]
	result fcatch.Result[T, E]
}

// Start creates a new chain from a fcatch.Result. Steps added with ThenTry are
// caught with c.
func Start[T, E any](ctx context.Context, c fcatch.Catcher[E], result fcatch.Result[T, E]) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:    ctx,
		catch:  c,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T, E any](ctx context.Context, c fcatch.Catcher[E], value T) *Chain[T, E] {
	return Start(ctx, c, fcatch.Success[T, E](value))
}

// Result returns the underlying fcatch.Result
func (c *Chain[T, E]) Result() fcatch.Result[T, E] {
	return c.result
}

// Then chains a function that returns fcatch.Result[U, E]
func Then[T, U, E any](c *Chain[T, E], onSuccess func(context.Context, T) fcatch.Result[U, E]) *Chain[U, E] {
	return &Chain[U, E]{
		ctx:    c.ctx,
		catch:  c.catch,
		result: solo.Switch(c.ctx, c.result, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U, E any](c *Chain[T, E], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U, E] {
	return &Chain[U, E]{
		ctx:    c.ctx,
		catch:  c.catch,
		result: solo.Try(c.ctx, c.catch, c.result, tryOnSuccess),
	}
}

// Map chains a pure transformation function
func Map[T, U, E any](c *Chain[T, E], onSuccess func(context.Context, T) U) *Chain[U, E] {
	return &Chain[U, E]{
		ctx:    c.ctx,
		catch:  c.catch,
		result: solo.Map(c.ctx, c.result, onSuccess),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T, E]) Ensure(onSuccess func(context.Context, T)) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:    c.ctx,
		catch:  c.catch,
		result: solo.DoubleTee(c.ctx, c.result, onSuccess, nil),
	}
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[T, U, E any](c *Chain[T, E], onSuccess func(context.Context, T) U, onFailure func(context.Context, E) U) U {
	return solo.Finally(c.ctx, c.result, onSuccess, onFailure)
}
