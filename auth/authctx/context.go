// Package authctx propagates authentication state through request contexts.
//
// Two values travel this way: the token-codec configuration, installed by
// auth.InjectConfig before any extractor runs, and the authenticated
// principal, optionally attached by handlers that want to share it
// downstream. Unexported key types prevent collisions with other packages.
package authctx

import (
	"context"

	"github.com/dygo/dykit/auth/jwt"
)

type configKey struct{}
type principalKey struct{}

// WithConfig stores the token-codec configuration in the context.
func WithConfig(ctx context.Context, cfg jwt.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// ConfigFrom retrieves the token-codec configuration from the context.
func ConfigFrom(ctx context.Context) (jwt.Config, bool) {
	cfg, ok := ctx.Value(configKey{}).(jwt.Config)
	return cfg, ok
}

// WithPrincipal stores an authenticated principal in the context.
// The principal can be any type; the auth package stores *auth.AuthUser.
func WithPrincipal(ctx context.Context, principal any) context.Context {
	return context.WithValue(ctx, principalKey{}, principal)
}

// PrincipalFrom retrieves a typed principal from the context.
// Returns the zero value and false if absent or of a different type.
func PrincipalFrom[T any](ctx context.Context) (T, bool) {
	val := ctx.Value(principalKey{})
	if val == nil {
		var zero T
		return zero, false
	}
	principal, ok := val.(T)
	return principal, ok
}
