package mass

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/ib-77/fcatch/pkg/fcatch"
	"github.com/ib-77/fcatch/pkg/fcatch/core"
	"github.com/ib-77/fcatch/pkg/fcatch/future"
	"golang.org/x/sync/errgroup"
)

// Run drains fns with the given number of lines and streams their Results.
// Once ctx is done the functions not yet started are reported as failures
// mapped from the context error, unless leftovers are disabled in ctx.
// The output channel is closed when all lines have stopped.
func Run[T, E any](ctx context.Context, c fcatch.Catcher[E], fns <-chan func() (T, error),
	lines int) <-chan fcatch.Result[T, E] {

	out := make(chan fcatch.Result[T, E])
	wg := &sync.WaitGroup{}

	engine := func(ctx context.Context, fn func() (T, error)) fcatch.Result[T, E] {
		return fcatch.Run(c, fn)
	}

	for range max(lines, 1) {
		wg.Add(1)
		go core.Locomotive(ctx, fns, out, engine, cancelHandlers[T](c), nil, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// RunAll calls every function concurrently, bounded by the lines option of
// ctx (GOMAXPROCS by default), and returns the Results in input order.
// Functions not started before ctx is done fail with the mapped context
// error, whatever the leftovers option says, so the order is kept.
func RunAll[T, E any](ctx context.Context, c fcatch.Catcher[E], fns ...func() (T, error)) []fcatch.Result[T, E] {
	results := make([]fcatch.Result[T, E], len(fns))
	if len(fns) == 0 {
		return results
	}

	var g errgroup.Group
	g.SetLimit(core.GetLines(ctx, runtime.GOMAXPROCS(0)))

	for i, fn := range fns {
		if ctx.Err() != nil {
			results[i] = leftover[T](ctx, c)
			continue
		}
		g.Go(func() error {
			results[i] = fcatch.Run(c, fn)
			return nil
		})
	}

	_ = g.Wait()
	return results
}

// ResolveAll awaits every future and returns the Results in input order.
// Waiting takes no CPU, so every future gets its own worker.
func ResolveAll[T, E any](ctx context.Context, c fcatch.Catcher[E], futures ...future.Future[T]) []fcatch.Result[T, E] {
	fns := make([]func() (T, error), len(futures))
	for i, f := range futures {
		fns[i] = f.Get
	}
	return RunAll(core.WithLines(ctx, len(fns)), c, fns...)
}

// contextError is ctx.Err() extended with the cancellation cause, when one
// was given that is not a plain context error itself.
func contextError(ctx context.Context) error {
	err := ctx.Err()
	if cause := context.Cause(ctx); cause != nil && !fcatch.IsCancellationError(cause) {
		return fmt.Errorf("%w: %w", err, cause)
	}
	return err
}

func leftover[T, E any](ctx context.Context, c fcatch.Catcher[E]) fcatch.Result[T, E] {
	return fcatch.Failure[T](c.MapErr(contextError(ctx)))
}

func cancelHandlers[T, E any](c fcatch.Catcher[E]) core.CancellationHandlers[func() (T, error), fcatch.Result[T, E]] {
	return core.CancellationHandlers[func() (T, error), fcatch.Result[T, E]]{
		OnCancel: func(ctx context.Context, inputCh <-chan func() (T, error), outCh chan<- fcatch.Result[T, E]) {
			if !core.ReportsLeftovers(ctx, true) {
				return
			}
			for range inputCh {
				outCh <- leftover[T](ctx, c)
			}
		},
		OnCancelUnprocessed: func(ctx context.Context, _ func() (T, error), outCh chan<- fcatch.Result[T, E]) {
			if core.ReportsLeftovers(ctx, true) {
				outCh <- leftover[T](ctx, c)
			}
		},
	}
}
