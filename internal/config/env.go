package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config contains all configuration parameters for the application.
type Config struct {
	Port               string `envconfig:"PORT" default:"8080"`
	StateFilePath      string `envconfig:"STATE_FILE_PATH" default:"globete_state.json"`
	DefaultNetwork     string `envconfig:"DEFAULT_NETWORK" default:"alfajores"`
	GlobeteAPIURL      string `envconfig:"GLOBETE_API_URL" default:"http://localhost:8080"`
	HTTPTimeoutSeconds int    `envconfig:"HTTP_TIMEOUT_SECONDS" default:"15"`

	VerifierScope        string `envconfig:"VERIFIER_SCOPE" default:"globete-pay-staging"`
	VerifierEndpoint     string `envconfig:"VERIFIER_ENDPOINT" default:"/globete-api/identity-verification"`
	VerifierMockPassport bool   `envconfig:"VERIFIER_MOCK_PASSPORT" default:"true"`
	VerifierMinimumAge   int    `envconfig:"VERIFIER_MINIMUM_AGE" default:"18"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	cfg = &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetStateFilePath returns the session persistence file path from configuration
func GetStateFilePath() string {
	return Get().StateFilePath
}

// GetDefaultNetwork returns the default network type from configuration
func GetDefaultNetwork() string {
	return Get().DefaultNetwork
}

// GetGlobeteAPIURL returns the Globete API base URL from configuration
func GetGlobeteAPIURL() string {
	return Get().GlobeteAPIURL
}

// GetHTTPTimeout returns the outbound HTTP client timeout from configuration
func GetHTTPTimeout() time.Duration {
	return time.Duration(Get().HTTPTimeoutSeconds) * time.Second
}
