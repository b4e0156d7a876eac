// Package future provides eventual values: placeholders for a value that is
// produced later by another goroutine and that settles exactly once, either
// fulfilled with a value or rejected with an error.
//
// The producer side typically looks as follows:
//
//	promise, f := future.Create[T]()
//	go func() {
//	   promise.Settle(someOperation())
//	}()
//	return f
//
// Go is a shorthand for exactly that. If the outcome is already known, use
// Immediate or Rejected.
package future

import (
	"context"
	"sync"
)

type settlement[T any] struct {
	done  chan struct{}
	once  sync.Once
	value T
	err   error
}

// Promise is the handle used to settle a Future.
type Promise[T any] struct {
	s *settlement[T]
}

// Future is a placeholder for an outcome that will be available later. A
// Future may be awaited any number of times from any number of goroutines.
type Future[T any] struct {
	s *settlement[T]
}

// Create initializes a linked Promise and Future pair.
func Create[T any]() (Promise[T], Future[T]) {
	s := &settlement[T]{done: make(chan struct{})}
	return Promise[T]{s: s}, Future[T]{s: s}
}

// Immediate creates a Future that is already fulfilled with the given value.
func Immediate[T any](value T) Future[T] {
	p, f := Create[T]()
	p.Fulfill(value)
	return f
}

// Rejected creates a Future that is already rejected with the given error.
func Rejected[T any](err error) Future[T] {
	p, f := Create[T]()
	p.Reject(err)
	return f
}

// Go runs fn in a new goroutine and returns a Future settled with its
// outcome. A panic in fn is not recovered.
func Go[T any](fn func() (T, error)) Future[T] {
	p, f := Create[T]()
	go func() {
		p.Settle(fn())
	}()
	return f
}

// Settle fulfills the Promise with value when err is nil and rejects it with
// err otherwise. Only the first call on a Promise has an effect.
func (p Promise[T]) Settle(value T, err error) {
	p.s.once.Do(func() {
		if err == nil {
			p.s.value = value
		} else {
			p.s.err = err
		}
		close(p.s.done)
	})
}

// Fulfill settles the Promise with a value.
func (p Promise[T]) Fulfill(value T) {
	p.Settle(value, nil)
}

// Reject settles the Promise with an error. A nil error fulfills the Promise
// with the zero value.
func (p Promise[T]) Reject(err error) {
	var zero T
	p.Settle(zero, err)
}

// Forward connects the Promise to the given Future, such that when the Future
// settles the Promise settles with the same outcome.
func (p Promise[T]) Forward(f Future[T]) {
	go func() {
		p.Settle(f.Get())
	}()
}

// Done returns a channel that is closed once the Future has settled.
func (f Future[T]) Done() <-chan struct{} {
	return f.s.done
}

// Get blocks until the Future settles and returns its value and error.
func (f Future[T]) Get() (T, error) {
	<-f.s.done
	return f.s.value, f.s.err
}

// Await blocks until the Future settles and returns the value, which is the
// zero value of T when the Future was rejected.
func (f Future[T]) Await() T {
	v, _ := f.Get()
	return v
}

// AwaitContext is like Get but stops waiting when ctx is done. The producer
// is not affected and the Future may still settle later.
func (f Future[T]) AwaitContext(ctx context.Context) (T, error) {
	select {
	case <-f.s.done:
		return f.s.value, f.s.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Then creates a new Future by applying transform to the value of f once it
// is fulfilled. A rejection of f is passed through unchanged.
func Then[A, B any](f Future[A], transform func(A) B) Future[B] {
	promise, next := Create[B]()
	go func() {
		v, err := f.Get()
		if err != nil {
			promise.Reject(err)
			return
		}
		promise.Fulfill(transform(v))
	}()
	return next
}
