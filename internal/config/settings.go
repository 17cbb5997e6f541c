// internal/config/settings.go
package config

import "github.com/spf13/viper"

// SettingType represents the type of a setting
type SettingType string

const (
	// String type for string settings
	String SettingType = "string"
	// Bool type for boolean settings
	Bool SettingType = "bool"
)

// Setting defines a configuration setting
type Setting struct {
	// Name is the name of the setting
	Name string
	// Short is a short description of the setting
	Short string
	// Type is the type of the setting
	Type SettingType
	// Default is the default value of the setting
	Default interface{}
	// Env is the environment variable name for the setting
	Env string
	// Required indicates whether the setting is required
	Required bool
}

// SettingList is a list of settings
type SettingList []Setting

// PopulateViperDefaults sets default values for all settings in Viper
func (sl SettingList) PopulateViperDefaults(v *viper.Viper) {
	for _, s := range sl {
		v.SetDefault(s.Name, s.Default)
	}
}

// Settings defines all application settings
var Settings = SettingList{
	// Server settings
	{
		Name:    "SERVER_ADDR",
		Short:   "Address on which the server listens",
		Type:    String,
		Default: ":8000",
		Env:     "SERVER_ADDR",
	},
	{
		Name:    "METRICS_ADDR",
		Short:   "Address on which the metrics server listens",
		Type:    String,
		Default: ":9090",
		Env:     "METRICS_ADDR",
	},
	{
		Name:    "SHUTDOWN_TIMEOUT",
		Short:   "Maximum time to wait for graceful shutdown",
		Type:    String,
		Default: "30s",
		Env:     "SHUTDOWN_TIMEOUT",
	},

	// Upstream settings
	{
		Name:     "UPSTREAM_URL",
		Short:    "URL of the upstream service",
		Type:     String,
		Default:  "",
		Env:      "UPSTREAM_URL",
		Required: true,
	},
	{
		Name:    "UPSTREAM_TIMEOUT",
		Short:   "Timeout for upstream requests",
		Type:    String,
		Default: "30s",
		Env:     "UPSTREAM_TIMEOUT",
	},

	// Authentication settings
	{
		Name:    "AUTH_SIGNING_KEY",
		Short:   "Shared secret for validating token signatures (empty disables authentication)",
		Type:    String,
		Default: "",
		Env:     "AUTH_SIGNING_KEY",
	},
	{
		Name:    "AUTH_TRUST_PROXY_HEADERS",
		Short:   "Trust X-Forwarded-Proto from the fronting proxy when pinning tokens to the serving host",
		Type:    Bool,
		Default: true,
		Env:     "AUTH_TRUST_PROXY_HEADERS",
	},

	// Routing settings
	{
		Name:    "RULES_PATH",
		Short:   "Path to the YAML routing rules file",
		Type:    String,
		Default: "",
		Env:     "RULES_PATH",
	},

	// Observability settings
	{
		Name:    "LOG_LEVEL",
		Short:   "Minimum log level to emit",
		Type:    String,
		Default: "info",
		Env:     "LOG_LEVEL",
	},
}
