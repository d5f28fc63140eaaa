package cliutil

import (
	"context"

	"github.com/google/uuid"
)

type runIDKey int

const runIDCtxKey runIDKey = 0

// NewRunID generates a fresh correlation id for one RunOCM or RunTWW
// invocation, which includes it in its own log lines. The recursive
// reducer/optimizer calls it triggers do not log it.
func NewRunID() string {
	return uuid.NewString()
}

// WithRunID attaches id to ctx.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDCtxKey, id)
}

// RunIDFromContext retrieves the run id attached to ctx, or "" if none.
func RunIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(runIDCtxKey).(string); ok {
		return id
	}

	return ""
}
