package fcatch

import "time"

type ValueProvider[T any] interface {
	// Value returns the successful value
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that carry a value or an error
type WithError[T, E any] interface {
	ValueProvider[T]
	// Err returns the error if the operation failed
	Err() E
	// Ok returns true if the operation was successful
	Ok() bool
}

// Paired is implemented by results exposing the positional (error, value) view
type Paired[T, E any] interface {
	WithError[T, E]
	Pair() (E, T)
}

var _ Paired[int, error] = Result[int, error]{}
