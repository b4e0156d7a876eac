package fcatch

// Run calls fn inside a protected region. A returned error or a panic is
// passed through the mapping of c and becomes a failure.
func Run[T, E any](c Catcher[E], fn func() (T, error)) Result[T, E] {
	value, caught, failed := protect(fn)
	return complete(c, value, caught, failed)
}

// RunValue is Run for functions that can only fail by panicking.
func RunValue[T, E any](c Catcher[E], fn func() T) Result[T, E] {
	return Run(c, func() (T, error) { return fn(), nil })
}

func Call[T, E any](c Catcher[E], fn func() (T, error)) Result[T, E] {
	return Run(c, fn)
}

func Call1[A, T, E any](c Catcher[E], fn func(A) (T, error), a A) Result[T, E] {
	return Run(c, func() (T, error) { return fn(a) })
}

func Call2[A, B, T, E any](c Catcher[E], fn func(A, B) (T, error), a A, b B) Result[T, E] {
	return Run(c, func() (T, error) { return fn(a, b) })
}

func Call3[A, B, C, T, E any](c Catcher[E], fn func(A, B, C) (T, error), a A, b B, cc C) Result[T, E] {
	return Run(c, func() (T, error) { return fn(a, b, cc) })
}

// CallArgs is the variadic form of the call-wrapper.
func CallArgs[A, T, E any](c Catcher[E], fn func(...A) (T, error), args ...A) Result[T, E] {
	return Run(c, func() (T, error) { return fn(args...) })
}

// CallOn calls fn with recv as its receiver, typically a method expression
// such as (*Account).Balance. A nil receiver dereferenced by fn ends up as a
// mapped failure like any other error.
func CallOn[R, T, E any](c Catcher[E], recv R, fn func(R) (T, error)) Result[T, E] {
	return Run(c, func() (T, error) { return fn(recv) })
}

func CallOn1[R, A, T, E any](c Catcher[E], recv R, fn func(R, A) (T, error), a A) Result[T, E] {
	return Run(c, func() (T, error) { return fn(recv, a) })
}

func CallOn2[R, A, B, T, E any](c Catcher[E], recv R, fn func(R, A, B) (T, error), a A, b B) Result[T, E] {
	return Run(c, func() (T, error) { return fn(recv, a, b) })
}
