// Package chain provides a fluent wrapper around fcatch.Result[T, E] for
// building synchronous chains of caught calls using solo primitives.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result or a value
// - Then: switch to a new Result via a function
// - ThenTry: run a (U, error) step through a Catcher
// - Map: transform the successful value (T -> U)
// - Ensure: run side effects on success without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
