// internal/server/factory.go
package server

import (
	"fmt"

	"zumogate/internal/auth/manager"
	"zumogate/internal/authz/local"
	"zumogate/internal/config"
	"zumogate/internal/observability"
	"zumogate/internal/observability/logging"
	"zumogate/internal/proxy/router"
)

// NewFromConfig creates a new server from configuration
func NewFromConfig(cfg *config.Config) (*Server, error) {
	// Initialize observability
	obs, err := observability.NewProvider(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize observability: %w", err)
	}
	logger := obs.Logger

	logger.Info("Configuring gateway",
		"upstream", logging.RedactURL(cfg.Upstream.URL),
		"rules", len(cfg.Rules),
	)

	// Initialize authentication manager
	authManager := manager.NewManagerFromConfig(cfg, logger, obs.Metrics)

	// Initialize the router with the identity-based authorizer
	authorizer := local.New(logger)
	proxyRouter := router.New(router.Config{
		UpstreamURL:     cfg.Upstream.URL,
		UpstreamTimeout: cfg.Upstream.Timeout,
		Rules:           convertRules(cfg.Rules),
	}, authorizer, logger, obs.Metrics)

	// Create complete middleware chain: observability -> auth -> router
	handler := obs.Middleware(authManager.Middleware(proxyRouter))

	serverConfig := Config{
		Address:         cfg.Server.Address,
		MetricsAddress:  cfg.Metrics.Address,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}

	return New(serverConfig, handler, obs.MetricsHandler(), logger), nil
}

// convertRules converts config.Rule to router.Rule
func convertRules(configRules []config.Rule) []router.Rule {
	routerRules := make([]router.Rule, len(configRules))
	for i, rule := range configRules {
		routerRules[i] = router.Rule{
			Name:        rule.Name,
			Action:      rule.Action,
			Paths:       rule.Paths,
			MatchPrefix: rule.MatchPrefix,
			Methods:     rule.Methods,
			Permission:  rule.Permission,
		}
	}
	return routerRules
}
