// internal/authz/local/authorizer.go
package local

import (
	"net/http"

	"zumogate/internal/authz"
	"zumogate/internal/contextutil"
	"zumogate/internal/observability/logging"
)

// Authorizer grants any permission to any authenticated identity. The gate
// never rejects requests, so this is where unauthenticated access to
// protected routes is actually refused. There is no permission schema: the
// only question answered here is whether authentication produced an identity.
type Authorizer struct {
	logger *logging.Logger
}

// New creates a new local authorizer
func New(logger *logging.Logger) *Authorizer {
	return &Authorizer{
		logger: logger.WithModule("authz.local"),
	}
}

// Authorize checks if the identity is authenticated
func (a *Authorizer) Authorize(req *authz.Request) *authz.Response {
	if req.Identity == nil || !req.Identity.IsAuthenticated() {
		return &authz.Response{
			Decision: authz.Unauthorized,
			Reason:   "No authenticated identity",
		}
	}

	return &authz.Response{
		Decision: authz.Allow,
		Reason:   "Identity authenticated",
	}
}

// Middleware creates an HTTP middleware for authorization
func (a *Authorizer) Middleware(permission string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			logger := logging.LoggerFromContext(ctx)
			if logger == nil {
				logger = a.logger
			}

			identity := contextutil.GetIdentity(ctx)

			response := a.Authorize(&authz.Request{
				Identity:   identity,
				Permission: permission,
				Context:    ctx,
			})

			switch response.Decision {
			case authz.Allow:
				logger.Debug("Authorization successful",
					"subject", identity.Subject(),
					"permission", permission,
				)
				next.ServeHTTP(w, r)
			case authz.Unauthorized:
				logger.Info("Authorization failed: unauthorized",
					"permission", permission,
					"reason", response.Reason,
				)
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
			case authz.Deny:
				logger.Info("Authorization failed: permission denied",
					"subject", identity.Subject(),
					"permission", permission,
					"reason", response.Reason,
				)
				http.Error(w, "Forbidden", http.StatusForbidden)
			case authz.Error:
				logger.Error("Authorization failed: error", logging.Err(response.Error))
				http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
			}
		})
	}
}
