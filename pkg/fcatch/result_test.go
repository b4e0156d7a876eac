package fcatch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccess_HoldsValueOnly(t *testing.T) {
	t.Parallel()

	for _, v := range []any{0, "x", 3.5, nil, []int{1}} {
		r := Success[any, error](v)

		assert.True(t, r.Ok())
		assert.True(t, r.IsSuccess())
		assert.False(t, r.IsFailure())
		assert.Equal(t, v, r.Value())
		assert.Nil(t, r.Err())

		e, val := r.Pair()
		assert.Nil(t, e)
		assert.Equal(t, v, val)
		assert.Nil(t, r.First())
		assert.Equal(t, v, r.Second())
	}
}

func TestFailure_HoldsErrorOnly(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	r := Failure[int](boom)

	assert.False(t, r.Ok())
	assert.True(t, r.IsFailure())
	assert.Same(t, boom, r.Err())
	assert.Zero(t, r.Value())

	e, v := r.Pair()
	assert.Same(t, boom, e)
	assert.Zero(t, v)
}

func TestFailure_NilErrorIsStillFailure(t *testing.T) {
	t.Parallel()

	r := Failure[string, error](nil)
	value, err, ok := r.Get()

	assert.False(t, ok)
	assert.Nil(t, err)
	assert.Equal(t, "", value)
}

func TestResult_Metadata(t *testing.T) {
	t.Parallel()

	a := Success[int, error](1)
	b := Success[int, error](1)

	require.NotEqual(t, a.Id(), b.Id())
	assert.False(t, a.CreatedAt().IsZero())
	assert.Equal(t, "UTC", a.CreatedAt().Location().String())
}

func TestResult_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Success(3)", Success[int, string](3).String())
	assert.Equal(t, "Failure(bad)", Failure[int]("bad").String())
}
