package core

import (
	"context"
	"sync"
)

type CancellationHandlers[In, Out any] struct {
	// OnCancel receives the input channel once ctx is done, to account for
	// the inputs no worker has taken yet.
	OnCancel func(ctx context.Context, inputCh <-chan In, outCh chan<- Out)
	// OnCancelUnprocessed receives an input taken from the channel but not
	// run because ctx ended in between.
	OnCancelUnprocessed func(ctx context.Context, unprocessed In, outCh chan<- Out)
}

// Locomotive runs engine for every value of inputCh and sends the outputs to
// outCh. It returns when inputCh is closed or ctx is done.
func Locomotive[In, Out any](ctx context.Context, inputCh <-chan In, outCh chan<- Out,
	engine func(ctx context.Context, input In) Out,
	handlers CancellationHandlers[In, Out],
	onSuccess func(ctx context.Context, out Out), wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			if handlers.OnCancel != nil {
				handlers.OnCancel(ctx, inputCh, outCh)
			}
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			if ctx.Err() != nil {
				if handlers.OnCancelUnprocessed != nil {
					handlers.OnCancelUnprocessed(ctx, in, outCh)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, inputCh, outCh)
				}
				return
			}

			out := engine(ctx, in)
			outCh <- out
			if onSuccess != nil {
				onSuccess(ctx, out)
			}
		}
	}
}
