package fcatch

import (
	"errors"
	"reflect"
)

var errorType = reflect.TypeFor[error]()

// Catcher maps a caught error to the error type carried by results. Catch and
// Facade implement it and every operation of this package accepts either.
type Catcher[E any] interface {
	MapErr(err error) E
}

// Catch is a bundle of operations sharing one error mapping function.
type Catch[E any] struct {
	mapErr func(error) E
}

// New returns a Catch that maps caught errors with mapErr. A nil mapErr
// selects Identity.
func New[E any](mapErr func(error) E) Catch[E] {
	if IsNil(mapErr) {
		mapErr = Identity[E]()
	}
	return Catch[E]{mapErr: mapErr}
}

// MapErr applies the mapping function. It is called once per failure and a
// panic inside it is not recovered.
func (c Catch[E]) MapErr(err error) E {
	if c.mapErr == nil {
		return Identity[E]()(err)
	}
	return c.mapErr(err)
}

// Identity re-types a caught error as E without transforming it. A recovered
// panic whose payload is an E yields that payload. When neither err, an error
// in its chain nor a panic payload is an E, the zero E is returned.
func Identity[E any]() func(error) E {
	return func(err error) E {
		if e, ok := any(err).(E); ok {
			return e
		}
		var target E
		if err == nil {
			return target
		}
		var pe *PanicError
		if errors.As(err, &pe) {
			if v, ok := pe.Value.(E); ok {
				return v
			}
		}
		if t := reflect.TypeFor[E](); t.Kind() == reflect.Interface || t.Implements(errorType) {
			if errors.As(err, &target) {
				return target
			}
		}
		return target
	}
}

// complete builds the Result for one finished protected call.
func complete[T, E any](c Catcher[E], value T, caught error, failed bool) Result[T, E] {
	if failed {
		return Failure[T](c.MapErr(caught))
	}
	return Success[T, E](value)
}
