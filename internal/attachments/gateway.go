package attachments

import "context"

// Gateway opens a document chooser and reports what the user picked.
// One call maps to exactly one outcome: a cancellation, a non-empty list of
// items, or an error from the chooser itself. Implementations apply no
// selection policy.
type Gateway interface {
	Pick(ctx context.Context, req PickRequest) (PickResult, error)
}

// GatewayFunc adapts a function to the Gateway interface
type GatewayFunc func(ctx context.Context, req PickRequest) (PickResult, error)

// Pick calls f(ctx, req)
func (f GatewayFunc) Pick(ctx context.Context, req PickRequest) (PickResult, error) {
	return f(ctx, req)
}
