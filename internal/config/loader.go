// Package config provides configuration management using the Singleton pattern.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	defaultConfigName = "config"
	defaultConfigType = "yaml"
	envPrefix         = "CHIPCHAT_GATEWAY"

	// EnvOpenAIKey is the primary environment variable for the OpenAI
	// credential. It takes priority over file configuration.
	EnvOpenAIKey = "OPENAI_API_KEY"

	// EnvAnthropicKey is the primary environment variable for the
	// Anthropic credential. It takes priority over file configuration.
	EnvAnthropicKey = "ANTHROPIC_API_KEY"
)

// loadConfig loads the configuration from environment variables and files.
// Priority order (highest to lowest):
// 1. OPENAI_API_KEY / ANTHROPIC_API_KEY env vars - PRIMARY credential source
// 2. Environment variables (prefixed with CHIPCHAT_GATEWAY_)
// 3. config.yaml - FALLBACK for local development ONLY
// 4. Default values (model records matching production settings)
func loadConfig(configPath string) (*Configuration, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Configure Viper
	v.SetConfigName(defaultConfigName)
	v.SetConfigType(defaultConfigType)

	// Add config search paths
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/chipchat-gateway")
		v.AddConfigPath("$HOME/.chipchat-gateway")
	}

	// Enable environment variable override
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// Read configuration file (fallback only)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found is OK - defaults plus env vars are enough
			fmt.Fprintf(os.Stderr, "[CONFIG] Config file not found, using defaults and environment variables\n")
		} else {
			return nil, &ConfigError{
				Op:  "read",
				Err: fmt.Errorf("failed to read config file: %w", err),
			}
		}
	}

	// Unmarshal configuration
	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &ConfigError{
			Op:  "unmarshal",
			Err: fmt.Errorf("failed to unmarshal config: %w", err),
		}
	}

	// PRIORITY: credentials from provider env vars beat file values
	loadCredentialsFromEnv(&cfg)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default configuration values. The model records mirror
// the production settings the gateway shipped with.
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout_seconds", 30)
	v.SetDefault("server.write_timeout_seconds", 30)
	v.SetDefault("server.shutdown_timeout_seconds", 15)

	// Provider defaults
	v.SetDefault("providers.gpt4.model_name", "gpt-4o-2024-08-06")
	v.SetDefault("providers.gpt4.temperature", 0.1)
	v.SetDefault("providers.gpt4.max_tokens", 2000)
	v.SetDefault("providers.claude.model_name", "claude-3-7-sonnet-20250219")
	v.SetDefault("providers.claude.temperature", 0.1)
	v.SetDefault("providers.claude.max_tokens", 2000)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output_path", "")
}

// loadCredentialsFromEnv overrides file-based credentials with the
// provider-native environment variables when they are set. Keys left empty
// here are resolved by the SDK constructors themselves, so an unset
// variable is not an error.
func loadCredentialsFromEnv(cfg *Configuration) {
	if key := strings.TrimSpace(os.Getenv(EnvOpenAIKey)); key != "" {
		cfg.Credentials.OpenAIAPIKey = key
	}
	if key := strings.TrimSpace(os.Getenv(EnvAnthropicKey)); key != "" {
		cfg.Credentials.AnthropicAPIKey = key
	}
}
