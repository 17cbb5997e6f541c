package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnonymousIdentity(t *testing.T) {
	id := NewAnonymousIdentity()

	require.NotNil(t, id)
	assert.False(t, id.IsAuthenticated())
	assert.Empty(t, id.Claims)
	assert.Equal(t, "", id.Subject())

	_, found := id.Claim("sub")
	assert.False(t, found)
}

func TestIdentityClaims(t *testing.T) {
	id := &Identity{
		Scheme: "zumo",
		Claims: []Claim{
			{Type: "sub", Value: "user-1"},
			{Type: "ver", Value: "2"},
			{Type: "ver", Value: "3"},
		},
	}

	assert.True(t, id.IsAuthenticated())
	assert.Equal(t, "user-1", id.Subject())

	v, found := id.Claim("ver")
	assert.True(t, found)
	assert.Equal(t, "2", v, "first claim of a type wins")

	_, found = id.Claim("missing")
	assert.False(t, found)
}

func TestOutcomeVariants(t *testing.T) {
	anon := AnonymousOutcome()
	assert.False(t, anon.IsAuthenticated())
	require.NotNil(t, anon.Identity())
	assert.Empty(t, anon.Identity().Claims)

	authed := AuthenticatedOutcome(&Identity{Scheme: "zumo", Claims: []Claim{{Type: "sub", Value: "u"}}})
	assert.True(t, authed.IsAuthenticated())
	assert.Equal(t, "u", authed.Identity().Subject())
}

func TestOutcomeNeverNilIdentity(t *testing.T) {
	// Degenerate constructions still yield a usable identity.
	var zero Outcome
	require.NotNil(t, zero.Identity())
	assert.False(t, zero.IsAuthenticated())

	fromNil := AuthenticatedOutcome(nil)
	require.NotNil(t, fromNil.Identity())
	assert.False(t, fromNil.IsAuthenticated())

	fromAnon := AuthenticatedOutcome(NewAnonymousIdentity())
	assert.False(t, fromAnon.IsAuthenticated(), "an identity without a scheme cannot be authenticated")
}

func TestIdentityContextRoundTrip(t *testing.T) {
	id := &Identity{Scheme: "zumo", Claims: []Claim{{Type: "sub", Value: "user-1"}}}

	ctx := ContextWithIdentity(context.Background(), id)
	ctx = ContextWithScheme(ctx, "zumo")

	assert.Equal(t, id, IdentityFromContext(ctx))
	assert.Equal(t, "zumo", SchemeFromContext(ctx))
}

func TestIdentityContextDefaults(t *testing.T) {
	ctx := context.Background()

	got := IdentityFromContext(ctx)
	require.NotNil(t, got, "missing identity defaults to anonymous, never nil")
	assert.False(t, got.IsAuthenticated())
	assert.Equal(t, "", SchemeFromContext(ctx))
}
