package fcatch

import "github.com/ib-77/fcatch/pkg/fcatch/future"

// Wrap returns a function that defers calling fn until it is invoked and
// returns the outcome as a Result.
func Wrap[T, E any](c Catcher[E], fn func() (T, error)) func() Result[T, E] {
	return func() Result[T, E] {
		return Run(c, fn)
	}
}

func Wrap1[A, T, E any](c Catcher[E], fn func(A) (T, error)) func(A) Result[T, E] {
	return func(a A) Result[T, E] {
		return Call1(c, fn, a)
	}
}

func Wrap2[A, B, T, E any](c Catcher[E], fn func(A, B) (T, error)) func(A, B) Result[T, E] {
	return func(a A, b B) Result[T, E] {
		return Call2(c, fn, a, b)
	}
}

func WrapArgs[A, T, E any](c Catcher[E], fn func(...A) (T, error)) func(...A) Result[T, E] {
	return func(args ...A) Result[T, E] {
		return CallArgs(c, fn, args...)
	}
}

// WrapOn keeps the receiver open: it is supplied on every call of the
// returned function.
func WrapOn[R, T, E any](c Catcher[E], fn func(R) (T, error)) func(R) Result[T, E] {
	return func(recv R) Result[T, E] {
		return CallOn(c, recv, fn)
	}
}

func WrapOn1[R, A, T, E any](c Catcher[E], fn func(R, A) (T, error)) func(R, A) Result[T, E] {
	return func(recv R, a A) Result[T, E] {
		return CallOn1(c, recv, fn, a)
	}
}

func WrapAsync[T, E any](c Catcher[E], fn func() (T, error)) func() future.Future[Result[T, E]] {
	return func() future.Future[Result[T, E]] {
		return RunAsync(c, fn)
	}
}

func WrapAsync1[A, T, E any](c Catcher[E], fn func(A) (T, error)) func(A) future.Future[Result[T, E]] {
	return func(a A) future.Future[Result[T, E]] {
		return CallAsync1(c, fn, a)
	}
}

func WrapAsync2[A, B, T, E any](c Catcher[E], fn func(A, B) (T, error)) func(A, B) future.Future[Result[T, E]] {
	return func(a A, b B) future.Future[Result[T, E]] {
		return CallAsync2(c, fn, a, b)
	}
}
