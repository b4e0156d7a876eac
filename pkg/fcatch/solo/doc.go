// Package solo contains single-value, synchronous primitives that operate on
// fcatch.Result[T, E]. They compose the outcome of one caught call with the
// next step without re-checking Ok at every line.
//
// Highlights:
// - Succeed/Fail/FromPair: construct Result[T, E]
// - Switch: move from Result[In, E] to Result[Out, E]
// - Map/MapErr: transform the value or the error
// - Try: run a (Out, error) step through a Catcher
// - Tee/DoubleTee: side-effect helpers
// - OrElse/Unwrap/Finally: leave the railway
// - Combine: collect many results into one
package solo
