// Package config provides configuration management using the Singleton pattern.
// It loads configuration from environment variables and config.yaml using Viper.
package config

import (
	"fmt"
	"sync"

	"github.com/chipchat/llm-gateway/internal/domain"
)

// Configuration holds all application configuration values.
type Configuration struct {
	// Server configuration
	Server ServerConfig `json:"server" mapstructure:"server"`

	// Providers maps provider ids ("gpt4", "claude") to model records.
	Providers map[string]domain.ModelConfig `json:"providers" mapstructure:"providers"`

	// Credentials holds per-provider API keys. Empty values delegate
	// default key resolution to the provider SDK (env variables).
	Credentials CredentialsConfig `json:"credentials" mapstructure:"credentials"`

	// Logging configuration
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`
}

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	// Host is the server bind address.
	Host string `json:"host" mapstructure:"host"`

	// Port is the server port number.
	Port int `json:"port" mapstructure:"port"`

	// ReadTimeout is the maximum duration for reading the entire request.
	ReadTimeoutSeconds int `json:"read_timeout_seconds" mapstructure:"read_timeout_seconds"`

	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeoutSeconds int `json:"write_timeout_seconds" mapstructure:"write_timeout_seconds"`

	// ShutdownTimeout is the maximum duration to wait for active connections to finish.
	ShutdownTimeoutSeconds int `json:"shutdown_timeout_seconds" mapstructure:"shutdown_timeout_seconds"`
}

// CredentialsConfig holds the API keys for the supported providers.
type CredentialsConfig struct {
	// OpenAIAPIKey authenticates "gpt4" requests.
	OpenAIAPIKey string `json:"openai_api_key" mapstructure:"openai_api_key"`

	// AnthropicAPIKey authenticates "claude" requests.
	AnthropicAPIKey string `json:"anthropic_api_key" mapstructure:"anthropic_api_key"`
}

// ForProvider returns the configured credential for the given provider.
// An empty string means "let the SDK resolve its own default".
func (c CredentialsConfig) ForProvider(id domain.ProviderID) string {
	switch id {
	case domain.ProviderGPT4:
		return c.OpenAIAPIKey
	case domain.ProviderClaude:
		return c.AnthropicAPIKey
	default:
		return ""
	}
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `json:"level" mapstructure:"level"`

	// Format is the log format (json, text).
	Format string `json:"format" mapstructure:"format"`

	// OutputPath is the file path for log output (empty for stdout).
	OutputPath string `json:"output_path" mapstructure:"output_path"`
}

// configInstance holds the singleton configuration instance.
var (
	configInstance *Configuration
	configOnce     sync.Once
	configErr      error
)

// GetConfig returns the singleton Configuration instance.
// It initializes the configuration on first call using the default config path.
// Returns an error if configuration loading fails.
func GetConfig() (*Configuration, error) {
	configOnce.Do(func() {
		configInstance, configErr = loadConfig("")
	})
	return configInstance, configErr
}

// GetConfigWithPath returns the singleton Configuration instance with a custom config path.
// This should be used when you need to specify a non-default configuration file path.
// Returns an error if configuration loading fails.
func GetConfigWithPath(configPath string) (*Configuration, error) {
	configOnce.Do(func() {
		configInstance, configErr = loadConfig(configPath)
	})
	return configInstance, configErr
}

// MustGetConfig returns the singleton Configuration instance.
// It panics if the configuration cannot be loaded.
// Use this only when configuration is absolutely required and the application
// cannot proceed without it.
func MustGetConfig() *Configuration {
	cfg, err := GetConfig()
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}
	return cfg
}

// ResetConfig resets the singleton instance.
// This is primarily used for testing purposes.
func ResetConfig() {
	configOnce = sync.Once{}
	configInstance = nil
	configErr = nil
}

// Validate validates the configuration and returns an error if required fields are missing.
func (c *Configuration) Validate() error {
	var validationErrors []string

	// Validate server configuration
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		validationErrors = append(validationErrors, "server.port must be between 1 and 65535")
	}

	// Validate provider table
	if len(c.Providers) == 0 {
		validationErrors = append(validationErrors, "providers cannot be empty, at least one provider is required")
	}

	for id, model := range c.Providers {
		if !isKnownProvider(id) {
			validationErrors = append(validationErrors, fmt.Sprintf(
				"providers.%s is not a supported provider, must be one of: gpt4, claude", id))
			continue
		}
		if model.ModelName == "" {
			validationErrors = append(validationErrors, fmt.Sprintf("providers.%s.model_name is required", id))
		}
		if model.Temperature < 0 || model.Temperature > 2 {
			validationErrors = append(validationErrors, fmt.Sprintf(
				"providers.%s.temperature must be between 0 and 2", id))
		}
		if model.MaxTokens <= 0 {
			validationErrors = append(validationErrors, fmt.Sprintf(
				"providers.%s.max_tokens must be a positive integer", id))
		}
	}

	// Validate logging configuration
	if c.Logging.Level != "" && !isValidLogLevel(c.Logging.Level) {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level '%s' is invalid, must be one of: debug, info, warn, error",
			c.Logging.Level,
		))
	}

	if len(validationErrors) > 0 {
		return &ValidationError{Errors: validationErrors}
	}

	return nil
}

// ProviderTable builds the read-only provider table handed to adapter
// constructors. Only known provider ids survive validation, so the
// conversion is a straight copy.
func (c *Configuration) ProviderTable() domain.ProviderTable {
	table := make(domain.ProviderTable, len(c.Providers))
	for id, model := range c.Providers {
		table[domain.ProviderID(id)] = model
	}
	return table
}

// isKnownProvider checks if the provider id belongs to the closed enum.
func isKnownProvider(id string) bool {
	switch domain.ProviderID(id) {
	case domain.ProviderGPT4, domain.ProviderClaude:
		return true
	default:
		return false
	}
}

// isValidLogLevel checks if the log level is valid.
func isValidLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}
