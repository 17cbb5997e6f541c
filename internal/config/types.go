// internal/config/types.go
package config

import (
	"net/url"
	"time"
)

// Config represents the complete application configuration
type Config struct {
	// Server holds HTTP server configuration
	Server struct {
		// Address is the address to listen on
		Address string
		// ShutdownTimeout is the maximum time to wait for a graceful shutdown
		ShutdownTimeout time.Duration
	}

	// Metrics holds metrics server configuration
	Metrics struct {
		// Address is the address to listen on for the metrics server
		Address string
	}

	// Upstream holds configuration for the upstream service
	Upstream struct {
		// URL is the URL of the upstream service
		URL *url.URL
		// Timeout is the maximum time to wait for upstream responses
		Timeout time.Duration
	}

	// Auth holds authentication configuration
	Auth struct {
		// SigningKey is the shared secret used to validate token signatures.
		// Empty means authentication is disabled: every request is treated
		// as anonymous.
		SigningKey string

		// TrustProxyHeaders controls whether X-Forwarded-Proto from a
		// fronting proxy is trusted when deriving the host tokens are pinned
		// to. Disable when clients can reach the gateway directly.
		TrustProxyHeaders bool
	}

	// Observability holds observability configuration
	Observability struct {
		// LogLevel is the minimum log level to emit
		LogLevel string
	}

	// Rules holds routing rules loaded from the rules file
	Rules []Rule
}

// Rule defines a routing rule for the gateway
type Rule struct {
	// Name is a unique identifier for the rule
	Name string `json:"name" yaml:"name" mapstructure:"name"`

	// Action determines what action to take for matched requests.
	// Can be "allow", "deny", or "auth".
	Action string `json:"action" yaml:"action" mapstructure:"action"`

	// Paths is a list of URL paths this rule applies to
	Paths []string `json:"paths" yaml:"paths" mapstructure:"paths"`

	// MatchPrefix indicates whether to match the path prefix instead of exact match
	MatchPrefix bool `json:"match_prefix" yaml:"match_prefix" mapstructure:"match_prefix"`

	// Methods is a list of HTTP methods this rule applies to (empty = all methods)
	Methods []string `json:"methods" yaml:"methods" mapstructure:"methods"`

	// Permission is the permission label for "auth" rules, used in logs and
	// metrics. Ignored for other actions.
	Permission string `json:"permission" yaml:"permission" mapstructure:"permission"`
}
