// internal/auth/outcome.go
package auth

// Outcome is the result of an authentication decision: either authenticated
// with an identity, or anonymous. It is a total result type — the gate never
// produces an error-typed outcome, and every failure path converges on
// anonymous.
type Outcome struct {
	identity *Identity
}

// AuthenticatedOutcome wraps a validated identity. A nil or unauthenticated
// identity degrades to the anonymous outcome so the invariant "authenticated
// outcomes carry a non-empty identity" holds regardless of caller mistakes.
func AuthenticatedOutcome(identity *Identity) Outcome {
	if identity == nil || !identity.IsAuthenticated() {
		return AnonymousOutcome()
	}
	return Outcome{identity: identity}
}

// AnonymousOutcome returns the outcome for an unauthenticated request. The
// identity is empty but never nil.
func AnonymousOutcome() Outcome {
	return Outcome{identity: NewAnonymousIdentity()}
}

// IsAuthenticated reports whether the request carried a valid token
func (o Outcome) IsAuthenticated() bool {
	return o.identity != nil && o.identity.IsAuthenticated()
}

// Identity returns the identity for this outcome. It never returns nil; an
// anonymous outcome carries an empty identity.
func (o Outcome) Identity() *Identity {
	if o.identity == nil {
		return NewAnonymousIdentity()
	}
	return o.identity
}
