// Package mass runs many functions through the same Catch. Every function is
// still an independent protected call, mass only schedules them: Run streams
// results from a channel of functions through a fixed number of workers,
// RunAll and ResolveAll return results in input order.
//
// The concurrency limit and the treatment of functions left over after
// cancellation are read from the context, see core.WithLines and
// core.WithLeftovers.
package mass
