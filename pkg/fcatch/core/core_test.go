package core

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_Defaults(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	assert.Equal(t, 5, GetLines(ctx, 5))
	assert.True(t, ReportsLeftovers(ctx, true))
}

func TestOptions_FromContext(t *testing.T) {
	t.Parallel()

	ctx := WithLeftovers(WithLines(context.Background(), 2), false)

	assert.Equal(t, 2, GetLines(ctx, 5))
	assert.False(t, ReportsLeftovers(ctx, true))
	assert.Equal(t, 5, GetLines(WithLines(context.Background(), 0), 5))
}

func TestToChanMany_FromChanMany(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromChanMany(ctx, ToChanMany(ctx, []int{1, 2, 3}))
	assert.Equal(t, []int{1, 2, 3}, out)
}

func TestToChanFromArgs_OnBreak(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var rest []int
	done := make(chan struct{})
	ch := ToChanFromArgs(ctx, func(r []int) {
		rest = r
		close(done)
	}, 1, 2, 3)

	assert.Empty(t, Drain(ch))
	<-done
	assert.Equal(t, []int{1, 2, 3}, rest)
}

func TestLocomotive_ProcessesAll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	in := ToChanMany(ctx, []int{1, 2, 3, 4})
	out := make(chan int, 4)
	wg := &sync.WaitGroup{}

	var mu sync.Mutex
	succeeded := 0
	for range 2 {
		wg.Add(1)
		go Locomotive(ctx, in, out,
			func(ctx context.Context, v int) int { return v * 10 },
			CancellationHandlers[int, int]{},
			func(ctx context.Context, _ int) {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}, wg)
	}
	wg.Wait()
	close(out)

	sum := 0
	for v := range out {
		sum += v
	}
	assert.Equal(t, 100, sum)
	assert.Equal(t, 4, succeeded)
}

func TestLocomotive_CancelHandlers(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := make(chan int, 3)
	in <- 1
	in <- 2
	in <- 3
	close(in)

	out := make(chan int, 3)
	wg := &sync.WaitGroup{}
	wg.Add(1)
	Locomotive(ctx, in, out,
		func(ctx context.Context, v int) int { return v },
		CancellationHandlers[int, int]{
			OnCancel: func(ctx context.Context, inputCh <-chan int, outCh chan<- int) {
				for range inputCh {
					outCh <- -1
				}
			},
			OnCancelUnprocessed: func(ctx context.Context, _ int, outCh chan<- int) {
				outCh <- -1
			},
		}, nil, wg)
	close(out)

	got := Drain(out)
	require.Len(t, got, 3)
	for _, v := range got {
		assert.Equal(t, -1, v)
	}
}
