package fcatch

import "github.com/ib-77/fcatch/pkg/fcatch/future"

// Facade is a Catch with the identity mapping that can also derive new Catch
// bundles. Pass it anywhere a Catcher is expected.
type Facade[E any] struct {
	def Catch[E]
}

// F is the default facade. Caught errors are kept as they are.
var F = Of[error]()

// Of returns a facade whose results carry errors of type E.
//
//	r := fcatch.Run(fcatch.Of[*os.PathError](), openConfig)
func Of[E any]() Facade[E] {
	return Facade[E]{def: New[E](nil)}
}

// MapErr applies the identity mapping of the facade.
func (f Facade[E]) MapErr(err error) E {
	return f.def.MapErr(err)
}

// Of returns the facade itself. Use the package level Of to change E.
func (f Facade[E]) Of() Facade[E] {
	return f
}

// Catch returns a plain Catch bundle using mapErr.
func (f Facade[E]) Catch(mapErr func(error) E) Catch[E] {
	return New(mapErr)
}

// With returns a Catch bundle mapping caught errors to E with mapErr.
func With[E any](mapErr func(error) E) Catch[E] {
	return New(mapErr)
}

// Try is Run on the default facade.
func Try[T any](fn func() (T, error)) Result[T, error] {
	return Run(F, fn)
}

// TryAsync is RunAsync on the default facade.
func TryAsync[T any](fn func() (T, error)) future.Future[Result[T, error]] {
	return RunAsync(F, fn)
}

// Await is Resolve on the default facade.
func Await[T any](f future.Future[T]) future.Future[Result[T, error]] {
	return Resolve(F, f)
}
