// internal/auth/context.go
package auth

import (
	"context"
)

// ContextKey is a type-safe key for context values
type ContextKey string

const (
	// IdentityContextKey is the key used to store the identity in the context
	IdentityContextKey ContextKey = "auth:identity"

	// SchemeContextKey is the key used to store the authentication scheme
	SchemeContextKey ContextKey = "auth:scheme"
)

// IdentityFromContext extracts the identity from the request context. It
// returns a non-nil anonymous identity when no authentication middleware has
// run, so callers never need a nil check.
func IdentityFromContext(ctx context.Context) *Identity {
	if identity, ok := ctx.Value(IdentityContextKey).(*Identity); ok && identity != nil {
		return identity
	}
	return NewAnonymousIdentity()
}

// ContextWithIdentity adds an identity to a context
func ContextWithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, IdentityContextKey, identity)
}

// SchemeFromContext extracts the authentication scheme from the context
func SchemeFromContext(ctx context.Context) string {
	if scheme, ok := ctx.Value(SchemeContextKey).(string); ok {
		return scheme
	}
	return ""
}

// ContextWithScheme adds an authentication scheme to a context
func ContextWithScheme(ctx context.Context, scheme string) context.Context {
	return context.WithValue(ctx, SchemeContextKey, scheme)
}
