package llm

import "context"

// purposeKey is the context key for the request purpose. An unexported
// struct type cannot collide with keys from other packages.
type purposeKey struct{}

// WithPurpose tags ctx with a short label ("course-gen") saying what the
// generation call is for. The logging decorator reads it back when it
// records the call in the event log.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the purpose label on ctx, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeKey{}).(string); ok {
		return p
	}
	return "unknown"
}
