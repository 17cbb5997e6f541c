// internal/auth/manager/manager.go
package manager

import (
	"net/http"

	"zumogate/internal/auth"
	"zumogate/internal/auth/token"
	"zumogate/internal/auth/zumo"
	"zumogate/internal/config"
	"zumogate/internal/observability/logging"
	"zumogate/internal/observability/metrics"
)

// Manager coordinates the configured authentication methods
type Manager struct {
	logger         *logging.Logger
	authenticators []auth.Authenticator
}

// NewManager creates a new authentication manager
func NewManager(authenticators []auth.Authenticator, logger *logging.Logger) *Manager {
	return &Manager{
		authenticators: authenticators,
		logger:         logger.WithModule("auth.manager"),
	}
}

// Middleware creates a middleware chain from all configured authenticators
func (m *Manager) Middleware(next http.Handler) http.Handler {
	handler := next
	for _, authenticator := range m.authenticators {
		handler = authenticator.GetMiddleware(handler)
		m.logger.Debug("Added authenticator to middleware chain", "authenticator", authenticator.Name())
	}
	return handler
}

// GetAuthenticators returns the list of configured authenticators
func (m *Manager) GetAuthenticators() []auth.Authenticator {
	return m.authenticators
}

// NewManagerFromConfig creates a Manager with authenticators configured from
// application config. The zumo authenticator is always registered: an empty
// signing key keeps it in "authentication disabled" mode where every request
// stays anonymous.
func NewManagerFromConfig(cfg *config.Config, logger *logging.Logger, collector *metrics.Collector) *Manager {
	logger = logger.WithModule("auth.factory")

	zumoAuth := zumo.New(zumo.Config{
		SigningKey:        cfg.Auth.SigningKey,
		TrustProxyHeaders: cfg.Auth.TrustProxyHeaders,
	}, token.New(), logger, collector)

	if cfg.Auth.SigningKey == "" {
		logger.Warn("No signing key configured: all requests will be anonymous")
	} else {
		logger.Info("Token authentication enabled", "scheme", zumoAuth.Name())
	}

	return NewManager([]auth.Authenticator{zumoAuth}, logger)
}
