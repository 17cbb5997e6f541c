// internal/auth/types.go
package auth

import (
	"net/http"
)

// Claim is a single assertion about an identity, carried inside a validated token
type Claim struct {
	// Type is the claim name (e.g. "sub")
	Type string

	// Value is the claim value
	Value string
}

// Identity represents the identity attached to a request. An anonymous
// request carries a non-nil identity with no claims and no scheme, so
// consumers never need to nil-check before reading claims.
type Identity struct {
	// Scheme is the authentication scheme that produced this identity
	// (e.g. "zumo"). Empty for anonymous identities.
	Scheme string

	// Claims is the ordered list of claims from the validated token
	Claims []Claim
}

// NewAnonymousIdentity returns an empty, unauthenticated identity
func NewAnonymousIdentity() *Identity {
	return &Identity{}
}

// IsAuthenticated reports whether this identity was produced by a successful
// token validation
func (i *Identity) IsAuthenticated() bool {
	return i.Scheme != ""
}

// Subject returns the subject claim value, or "" when absent
func (i *Identity) Subject() string {
	v, _ := i.Claim("sub")
	return v
}

// Claim returns the first claim with the given type
func (i *Identity) Claim(claimType string) (string, bool) {
	for _, c := range i.Claims {
		if c.Type == claimType {
			return c.Value, true
		}
	}
	return "", false
}

// Principal is the transient result of a successful token validation. Its
// claims are copied into the outcome's identity and it is not retained
// afterwards.
type Principal struct {
	// Claims is the ordered list of claims from the token
	Claims []Claim
}

// TokenValidator verifies a raw token against a signing key with pinned
// issuer and audience constraints
type TokenValidator interface {
	// TryValidate returns the token's principal and true only when the
	// token's signature, issuer, audience and expiry all check out. It
	// returns (nil, false) for any malformed, expired or mismatched token
	// and never panics.
	TryValidate(token, signingKey, issuer, audience string) (*Principal, bool)
}

// Authenticator defines the interface for authentication methods
type Authenticator interface {
	// Name returns the name of this authenticator
	Name() string

	// GetMiddleware returns an http.Handler middleware that performs authentication
	GetMiddleware(next http.Handler) http.Handler
}
