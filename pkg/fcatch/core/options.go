package core

import "context"

type OptionKey string

const (
	LinesOptionKey     OptionKey = "fcatch_lines"
	LeftoversOptionKey OptionKey = "fcatch_leftovers"
)

// LinesOption bounds how many caught calls of one batch run at the same time.
type LinesOption struct {
	Limit int
}

// LeftoversOption controls the functions of a batch that never started
// because the context ended. Reported leftovers become failures mapped from
// the context error, unreported ones are dropped from the output.
type LeftoversOption struct {
	Report bool
}

func WithLines(ctx context.Context, limit int) context.Context {
	return context.WithValue(ctx, LinesOptionKey, LinesOption{Limit: limit})
}

func WithLeftovers(ctx context.Context, report bool) context.Context {
	return context.WithValue(ctx, LeftoversOptionKey, LeftoversOption{Report: report})
}

// GetLines returns the configured concurrency limit, or defaultLines when
// none (or a non-positive one) is set.
func GetLines(ctx context.Context, defaultLines int) int {
	if o, ok := ctx.Value(LinesOptionKey).(LinesOption); ok && o.Limit > 0 {
		return o.Limit
	}
	return defaultLines
}

func ReportsLeftovers(ctx context.Context, defaultReport bool) bool {
	if o, ok := ctx.Value(LeftoversOptionKey).(LeftoversOption); ok {
		return o.Report
	}
	return defaultReport
}
