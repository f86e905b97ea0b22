package store

import "context"

type (
	actorKey      struct{}
	superadminKey struct{}
)

// WithActor attaches the acting user's NetID to the context so row-level
// ownership checks can read it inside a transaction
func WithActor(ctx context.Context, netID string) context.Context {
	return context.WithValue(ctx, actorKey{}, netID)
}

// Actor retrieves the acting NetID from context if present
func Actor(ctx context.Context) (string, bool) {
	v := ctx.Value(actorKey{})
	if v == nil {
		return "", false
	}
	s, _ := v.(string)
	return s, s != ""
}

// WithSuperadmin marks the context to bypass ownership checks via app.superadmin set_config
func WithSuperadmin(ctx context.Context) context.Context {
	return context.WithValue(ctx, superadminKey{}, true)
}

// IsSuperadmin reports whether the context carries the superadmin mark
func IsSuperadmin(ctx context.Context) bool {
	v, _ := ctx.Value(superadminKey{}).(bool)
	return v
}
