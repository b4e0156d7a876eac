package fcatch

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result is the outcome of an operation: either a success carrying a value of
// type T or a failure carrying an error of type E. A Result is immutable once
// built.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       E
	ok        bool
}

// Success builds a successful Result holding value.
func Success[T, E any](value T) Result[T, E] {
	return Result[T, E]{
		value:     value,
		ok:        true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Failure builds a failed Result holding err. The error is stored as is, a
// nil or zero err still yields a failure.
func Failure[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		err:       err,
		ok:        false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Ok reports whether the operation succeeded.
func (r Result[T, E]) Ok() bool {
	return r.ok
}

// Value returns the value of a success, the zero T otherwise.
func (r Result[T, E]) Value() T {
	return r.value
}

// Err returns the error of a failure, the zero E otherwise.
func (r Result[T, E]) Err() E {
	return r.err
}

func (r Result[T, E]) IsSuccess() bool {
	return r.ok
}

func (r Result[T, E]) IsFailure() bool {
	return !r.ok
}

// Get returns value, error and the success flag at once.
func (r Result[T, E]) Get() (T, E, bool) {
	return r.value, r.err, r.ok
}

// Pair returns the positional view (error-or-absent, value-or-absent).
func (r Result[T, E]) Pair() (E, T) {
	return r.err, r.value
}

// First is the first element of the positional view, the error.
func (r Result[T, E]) First() E {
	return r.err
}

// Second is the second element of the positional view, the value.
func (r Result[T, E]) Second() T {
	return r.value
}

// CreatedAt time creation (UTC)
func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}

func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Success(%v)", r.value)
	}
	return fmt.Sprintf("Failure(%v)", r.err)
}
