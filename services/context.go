package services

import "context"

type runIDKeyType struct{}

var runIDKey = runIDKeyType{}

// ContextWithRunID attaches a run id that Formatter will log instead of
// generating its own.
func ContextWithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// RunIDFromContext returns the run id stored in ctx, or "" if there is none.
func RunIDFromContext(ctx context.Context) string {
	if runID, ok := ctx.Value(runIDKey).(string); ok {
		return runID
	}
	return ""
}
