// internal/auth/zumo/authenticator.go
package zumo

import (
	"context"
	"fmt"
	"net/http"

	"zumogate/internal/auth"
	"zumogate/internal/contextutil"
	"zumogate/internal/observability/logging"
	"zumogate/internal/observability/metrics"
)

// HeaderName is the request header carrying the raw token. Lookup is
// case-insensitive and the value has no scheme prefix, unlike a standard
// Bearer header.
const HeaderName = "x-zumo-auth"

// Scheme is the authentication scheme tag attached to identities produced by
// this authenticator.
const Scheme = "zumo"

// Authenticator authenticates requests carrying a zumo token. It never
// rejects a request and never lets a fault escape: a missing or invalid token
// yields an anonymous identity and the request continues. Rejecting
// unauthenticated requests is a downstream concern.
type Authenticator struct {
	logger            *logging.Logger
	metrics           *metrics.Collector
	validator         auth.TokenValidator
	signingKey        string
	trustProxyHeaders bool
}

// Config holds zumo authenticator configuration
type Config struct {
	// SigningKey is the shared secret used to validate token signatures. An
	// empty key means authentication is disabled: every request stays
	// anonymous and each attempt is logged as a configuration error.
	SigningKey string

	// TrustProxyHeaders controls whether X-Forwarded-Proto is honored when
	// deriving the hostname tokens are pinned against. Enable only when the
	// gateway sits behind a trusted terminating proxy; a directly reachable
	// gateway must not let clients pick the scheme their token validates
	// under.
	TrustProxyHeaders bool
}

// New creates a new zumo authenticator. A nil validator is a programming
// error.
func New(config Config, validator auth.TokenValidator, logger *logging.Logger, collector *metrics.Collector) *Authenticator {
	if validator == nil {
		panic("zumo: validator must not be nil")
	}
	return &Authenticator{
		logger:            logger.WithModule("auth.zumo"),
		metrics:           collector,
		validator:         validator,
		signingKey:        config.SigningKey,
		trustProxyHeaders: config.TrustProxyHeaders,
	}
}

// Name returns the name of this authenticator
func (a *Authenticator) Name() string {
	return Scheme
}

// Authenticate decides whether the request carries a valid token and always
// returns a usable outcome. Validation failures, missing configuration and
// unexpected faults all converge on an anonymous outcome; nothing escapes
// this method. A nil request is a programming error and panics before the
// recovery guard is installed.
//
// Exactly one info-or-error log event is emitted per call, or none: a missing
// header and a successful validation are both silent at info level.
func (a *Authenticator) Authenticate(r *http.Request) (outcome auth.Outcome) {
	if r == nil {
		panic("zumo: request must not be nil")
	}

	logger := a.requestLogger(r.Context())

	// An authentication failure must never become an availability failure
	// for the rest of the request pipeline.
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("Unexpected fault during authentication",
				logging.Err(fmt.Errorf("%v", rec)),
				"host", r.Host,
				"path", r.URL.Path,
			)
			a.metrics.RecordAuthentication(Scheme, metrics.OutcomeError)
			outcome = auth.AnonymousOutcome()
		}
	}()

	if a.signingKey == "" {
		// No key means no token can ever validate. This is a configuration
		// error, not a per-request failure.
		logger.Error("Authentication misconfigured: signing key is empty")
		a.metrics.RecordAuthentication(Scheme, metrics.OutcomeMisconfigured)
		return auth.AnonymousOutcome()
	}

	rawToken := r.Header.Get(HeaderName)
	if rawToken == "" {
		// No token on the wire is not a failure.
		return auth.AnonymousOutcome()
	}

	// Tokens are pinned to the exact host serving the request: the serving
	// hostname is both issuer and audience, so a token minted for one host
	// cannot validate on another.
	hostname := requestHostname(r, a.trustProxyHeaders)

	principal, ok := a.validator.TryValidate(rawToken, a.signingKey, hostname, hostname)
	if !ok {
		// Routine occurrence, not a system fault.
		logger.Info("Token validation failed", "host", r.Host, "path", r.URL.Path)
		a.metrics.RecordAuthentication(Scheme, metrics.OutcomeRejected)
		return auth.AnonymousOutcome()
	}

	identity := &auth.Identity{
		Scheme: Scheme,
		Claims: append([]auth.Claim(nil), principal.Claims...),
	}

	logger.Debug("Token validated", "subject", identity.Subject(), "path", r.URL.Path)
	a.metrics.RecordAuthentication(Scheme, metrics.OutcomeAuthenticated)

	return auth.AuthenticatedOutcome(identity)
}

// GetMiddleware returns an http.Handler middleware that runs the
// authentication decision and attaches the resulting identity to the request
// context. The anonymous identity is attached too, so downstream handlers can
// query the identity without nil checks. The request always proceeds.
func (a *Authenticator) GetMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		outcome := a.Authenticate(r)

		ctx := contextutil.WithIdentity(r.Context(), outcome.Identity())
		if outcome.IsAuthenticated() {
			ctx = contextutil.WithAuthScheme(ctx, Scheme)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requestLogger prefers the request-scoped logger when the observability
// middleware has attached one.
func (a *Authenticator) requestLogger(ctx context.Context) *logging.Logger {
	if logger := logging.LoggerFromContext(ctx); logger != nil {
		return logger
	}
	return a.logger
}

// requestHostname derives the scheme://host/ value the validator pins tokens
// to. The scheme comes from the TLS state; X-Forwarded-Proto overrides it
// only when the gateway is configured to trust its fronting proxy.
func requestHostname(r *http.Request, trustProxyHeaders bool) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if trustProxyHeaders {
		if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
			scheme = proto
		}
	}
	return scheme + "://" + r.Host + "/"
}
