package core

import (
	"context"
)

// ToChanFromArgs feeds values into a new channel until they run out or ctx
// is done. Values never sent are passed to onBreak when it is set.
func ToChanFromArgs[T any](ctx context.Context, onBreak func(rest []T), values ...T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		for i, v := range values {
			if ctx.Err() != nil {
				if onBreak != nil {
					onBreak(values[i:])
				}
				return
			}

			select {
			case in <- v:
			case <-ctx.Done():
				if onBreak != nil {
					onBreak(values[i:])
				}
				return
			}
		}
	}()

	return in
}

func ToChanMany[T any](ctx context.Context, values []T) <-chan T {
	return ToChanFromArgs(ctx, nil, values...)
}

// FromChanMany collects out until it is closed or ctx is done.
func FromChanMany[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)

	for {
		select {
		case v, ok := <-out:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}

// Drain collects out until it is closed, ignoring any context.
func Drain[T any](out <-chan T) []T {
	res := make([]T, 0)
	for v := range out {
		res = append(res, v)
	}
	return res
}
