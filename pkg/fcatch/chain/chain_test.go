package chain

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/fcatch/pkg/fcatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartAndResult_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Start(ctx, fcatch.F, fcatch.Success[int, error](5)).Result()
	require.True(t, out.Ok())
	assert.Equal(t, 5, out.Value())
}

func TestChain_SuccessPath(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c := FromValue(ctx, fcatch.F, "21")
	parsed := ThenTry(c, func(ctx context.Context, s string) (int, error) { return strconv.Atoi(s) })
	doubled := Map(parsed, func(ctx context.Context, n int) int { return n * 2 })
	checked := Then(doubled, func(ctx context.Context, n int) fcatch.Result[int, error] {
		if n > 100 {
			return fcatch.Failure[int](errors.New("too big"))
		}
		return fcatch.Success[int, error](n)
	})

	out := checked.Result()
	require.True(t, out.Ok())
	assert.Equal(t, 42, out.Value())
}

func TestChain_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	called := false
	c := ThenTry(FromValue(ctx, fcatch.F, "x"), func(ctx context.Context, s string) (int, error) { return strconv.Atoi(s) })
	c = Map(c, func(ctx context.Context, n int) int {
		called = true
		return n
	})

	assert.False(t, c.Result().Ok())
	assert.False(t, called)
}

func TestThenTry_UsesCatcherMapping(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	catch := fcatch.With(func(err error) string { return "step failed" })
	c := ThenTry(FromValue(ctx, catch, 0), func(ctx context.Context, n int) (int, error) {
		var m map[string]int
		m["x"] = n
		return n, nil
	})

	out := c.Result()
	require.False(t, out.Ok())
	assert.Equal(t, "step failed", out.Err())
}

func TestEnsure_And_Finally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	seen := 0
	c := FromValue(ctx, fcatch.F, 3).Ensure(func(ctx context.Context, n int) { seen = n })
	assert.Equal(t, 3, seen)

	s := Finally(c,
		func(ctx context.Context, n int) string { return "val:" + strconv.Itoa(n) },
		func(ctx context.Context, err error) string { return "err" })
	assert.Equal(t, "val:3", s)

	failed := Start(ctx, fcatch.F, fcatch.Failure[int](errors.New("x"))).Ensure(func(ctx context.Context, n int) { seen = -1 })
	assert.Equal(t, 3, seen)
	assert.Equal(t, "err", Finally(failed,
		func(ctx context.Context, n int) string { return "val" },
		func(ctx context.Context, err error) string { return "err" }))
}
