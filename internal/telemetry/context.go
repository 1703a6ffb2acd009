package telemetry

import "context"

type activityIDKey struct{}

// WithActivityID returns a child context carrying the provided activity ID.
// If ctx is nil, context.Background() is used.
func WithActivityID(ctx context.Context, id string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, activityIDKey{}, id)
}

// ActivityIDFromContext returns the activity ID from ctx, if present.
// Returns "", false when the value is missing or not a non-empty string.
func ActivityIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	s, ok := ctx.Value(activityIDKey{}).(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
