// Package fcatch converts functions that may fail into Result values.
//
// A failure is either a returned non-nil error or a panic. Both are caught at
// the call, passed once through the mapping function of a Catch and stored in
// a failed Result. Nothing is retried or re-panicked, callers inspect Ok and
// Err themselves.
//
// Common usage:
// - Run/Call/CallOn: run a function now and get a Result
// - RunAsync/CallAsync/Resolve: get a future.Future of a Result
// - Wrap/WrapAsync: get a function returning Results instead of errors
// - F, Of, With: the default facade, a re-typed facade and a mapping Catch
//
// For composing Results, see packages solo and chain. For running many
// functions at once, see package mass.
package fcatch
