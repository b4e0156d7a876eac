// Package core contains the plumbing used to run many caught calls: channel
// helpers, worker configuration via context, and the locomotive that drains
// an input channel through an engine. It defines no Result semantics itself.
package core
