// internal/config/config.go
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

// validActions are the rule actions the router understands
var validActions = []string{"allow", "deny", "auth"}

// Load loads the configuration from all sources and returns the merged result
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	Settings.PopulateViperDefaults(v)

	// Set up environment variable handling
	v.SetEnvPrefix("ZUMOGATE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Load from config file if specified
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			// A missing config file is fine, anything else is not
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	config := &Config{}

	// Populate server configuration
	config.Server.Address = v.GetString("SERVER_ADDR")
	shutdownTimeout, err := time.ParseDuration(v.GetString("SHUTDOWN_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}
	config.Server.ShutdownTimeout = shutdownTimeout

	// Populate metrics configuration
	config.Metrics.Address = v.GetString("METRICS_ADDR")

	// Populate upstream configuration
	upstreamURL, err := url.Parse(v.GetString("UPSTREAM_URL"))
	if err != nil {
		return nil, fmt.Errorf("invalid upstream URL: %w", err)
	}
	config.Upstream.URL = upstreamURL

	upstreamTimeout, err := time.ParseDuration(v.GetString("UPSTREAM_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("invalid upstream timeout: %w", err)
	}
	config.Upstream.Timeout = upstreamTimeout

	// Populate authentication configuration
	config.Auth.SigningKey = v.GetString("AUTH_SIGNING_KEY")
	config.Auth.TrustProxyHeaders = v.GetBool("AUTH_TRUST_PROXY_HEADERS")

	// Populate observability configuration
	config.Observability.LogLevel = v.GetString("LOG_LEVEL")

	// Load routing rules if a rules file is configured
	if rulesPath := v.GetString("RULES_PATH"); rulesPath != "" {
		rules, err := LoadRules(rulesPath)
		if err != nil {
			return nil, err
		}
		config.Rules = rules
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// LoadRules loads routing rules from a YAML file
func LoadRules(rulesPath string) ([]Rule, error) {
	rv := viper.New()
	rv.SetConfigFile(rulesPath)
	if err := rv.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	var rules []Rule
	if err := rv.UnmarshalKey("rules", &rules); err != nil {
		return nil, fmt.Errorf("failed to parse rules file: %w", err)
	}

	return rules, nil
}

// validateConfig performs validation on the loaded configuration
func validateConfig(cfg *Config) error {
	if cfg.Upstream.URL == nil || cfg.Upstream.URL.String() == "" {
		return fmt.Errorf("upstream URL is required")
	}

	for _, rule := range cfg.Rules {
		if rule.Name == "" {
			return fmt.Errorf("rule without a name")
		}
		if !slices.Contains(validActions, rule.Action) {
			return fmt.Errorf("rule %q has unknown action %q", rule.Name, rule.Action)
		}
		if len(rule.Paths) == 0 {
			return fmt.Errorf("rule %q has no paths", rule.Name)
		}
	}

	return nil
}
