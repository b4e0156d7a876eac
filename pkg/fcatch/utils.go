package fcatch

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"runtime/debug"
)

// ErrPanic is matched by every *PanicError.
var ErrPanic = errors.New("fcatch: recovered panic")

// PanicError is the error produced from a recovered panic.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes the panic payload when it was an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

func (e *PanicError) Is(target error) bool {
	return target == ErrPanic
}

func newPanicError(v any) *PanicError {
	return &PanicError{Value: v, Stack: debug.Stack()}
}

// protect runs fn and reports its failure, either the returned error or a
// recovered panic, as caught.
func protect[T any](fn func() (T, error)) (value T, caught error, failed bool) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			value, caught, failed = zero, newPanicError(r), true
		}
	}()

	value, caught = fn()
	return value, caught, caught != nil
}

func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
