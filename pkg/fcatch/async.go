package fcatch

import "github.com/ib-77/fcatch/pkg/fcatch/future"

// RunAsync runs fn in a new goroutine and returns a future of its Result. The
// returned future is never rejected and is never settled before RunAsync
// returns control to the caller.
func RunAsync[T, E any](c Catcher[E], fn func() (T, error)) future.Future[Result[T, E]] {
	promise, f := future.Create[Result[T, E]]()
	go func() {
		promise.Fulfill(Run(c, fn))
	}()
	return f
}

func RunAsyncValue[T, E any](c Catcher[E], fn func() T) future.Future[Result[T, E]] {
	return RunAsync(c, func() (T, error) { return fn(), nil })
}

// RunEventual awaits the eventual value produced by fn. A panic in fn and a
// rejection of its future are mapped the same way.
func RunEventual[T, E any](c Catcher[E], fn func() future.Future[T]) future.Future[Result[T, E]] {
	return RunAsync(c, func() (T, error) { return fn().Get() })
}

// Resolve awaits an eventual value and converts its outcome to a Result.
func Resolve[T, E any](c Catcher[E], f future.Future[T]) future.Future[Result[T, E]] {
	return RunAsync(c, f.Get)
}

func CallAsync[T, E any](c Catcher[E], fn func() (T, error)) future.Future[Result[T, E]] {
	return RunAsync(c, fn)
}

func CallAsync1[A, T, E any](c Catcher[E], fn func(A) (T, error), a A) future.Future[Result[T, E]] {
	return RunAsync(c, func() (T, error) { return fn(a) })
}

func CallAsync2[A, B, T, E any](c Catcher[E], fn func(A, B) (T, error), a A, b B) future.Future[Result[T, E]] {
	return RunAsync(c, func() (T, error) { return fn(a, b) })
}

func CallArgsAsync[A, T, E any](c Catcher[E], fn func(...A) (T, error), args ...A) future.Future[Result[T, E]] {
	return RunAsync(c, func() (T, error) { return fn(args...) })
}

func CallOnAsync[R, T, E any](c Catcher[E], recv R, fn func(R) (T, error)) future.Future[Result[T, E]] {
	return RunAsync(c, func() (T, error) { return fn(recv) })
}
