package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/chipchat/llm-gateway/internal/domain"
)

func validConfig() *Configuration {
	return &Configuration{
		Server: ServerConfig{Host: "127.0.0.1", Port: 8080},
		Providers: map[string]domain.ModelConfig{
			"gpt4":   {ModelName: "gpt-4o-2024-08-06", Temperature: 0.1, MaxTokens: 2000},
			"claude": {ModelName: "claude-3-7-sonnet-20250219", Temperature: 0.1, MaxTokens: 2000},
		},
		Logging: LoggingConfig{Level: "info", Format: "json"},
	}
}

func TestConfiguration_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Configuration)
		wantErr   bool
		wantField string
	}{
		{
			name:    "valid config",
			mutate:  func(c *Configuration) {},
			wantErr: false,
		},
		{
			name:      "invalid port",
			mutate:    func(c *Configuration) { c.Server.Port = 0 },
			wantErr:   true,
			wantField: "server.port",
		},
		{
			name:      "no providers",
			mutate:    func(c *Configuration) { c.Providers = nil },
			wantErr:   true,
			wantField: "providers",
		},
		{
			name: "unknown provider id",
			mutate: func(c *Configuration) {
				c.Providers["mistral"] = domain.ModelConfig{ModelName: "mistral-large", MaxTokens: 100}
			},
			wantErr:   true,
			wantField: "providers.mistral",
		},
		{
			name: "missing model name",
			mutate: func(c *Configuration) {
				c.Providers["gpt4"] = domain.ModelConfig{Temperature: 0.1, MaxTokens: 2000}
			},
			wantErr:   true,
			wantField: "providers.gpt4.model_name",
		},
		{
			name: "temperature out of range",
			mutate: func(c *Configuration) {
				c.Providers["claude"] = domain.ModelConfig{ModelName: "claude-3-7-sonnet-20250219", Temperature: 2.5, MaxTokens: 2000}
			},
			wantErr:   true,
			wantField: "providers.claude.temperature",
		},
		{
			name: "non-positive max tokens",
			mutate: func(c *Configuration) {
				c.Providers["gpt4"] = domain.ModelConfig{ModelName: "gpt-4o-2024-08-06", Temperature: 0.1}
			},
			wantErr:   true,
			wantField: "providers.gpt4.max_tokens",
		},
		{
			name:      "invalid log level",
			mutate:    func(c *Configuration) { c.Logging.Level = "verbose" },
			wantErr:   true,
			wantField: "logging.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}

			if err == nil {
				t.Fatal("Validate() error = nil, want validation error")
			}
			verr, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("Validate() error type = %T, want *ValidationError", err)
			}
			if !verr.HasError(tt.wantField) {
				t.Errorf("ValidationError does not mention %q: %v", tt.wantField, verr.Errors)
			}
		})
	}
}

func TestConfiguration_ProviderTable(t *testing.T) {
	cfg := validConfig()
	table := cfg.ProviderTable()

	model, ok := table.Lookup(domain.ProviderGPT4)
	if !ok {
		t.Fatal("Lookup(gpt4) ok = false, want true")
	}
	if model.ModelName != "gpt-4o-2024-08-06" || model.Temperature != 0.1 || model.MaxTokens != 2000 {
		t.Errorf("gpt4 record = %+v, want configured values", model)
	}

	if _, ok := table.Lookup(domain.ProviderID("mistral")); ok {
		t.Error("Lookup(mistral) ok = true, want false")
	}
}

func TestLoadConfig_DefaultsAndEnvCredentials(t *testing.T) {
	t.Setenv(EnvOpenAIKey, "sk-test-openai-key")
	t.Setenv(EnvAnthropicKey, "sk-ant-test-key")

	// An effectively empty config file leaves every default in place.
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("# local overrides\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}

	if cfg.Providers["gpt4"].ModelName != "gpt-4o-2024-08-06" {
		t.Errorf("default gpt4 model = %s, want gpt-4o-2024-08-06", cfg.Providers["gpt4"].ModelName)
	}
	if cfg.Providers["claude"].MaxTokens != 2000 {
		t.Errorf("default claude max_tokens = %d, want 2000", cfg.Providers["claude"].MaxTokens)
	}
	if got := cfg.Credentials.ForProvider(domain.ProviderGPT4); got != "sk-test-openai-key" {
		t.Errorf("ForProvider(gpt4) = %s, want env value", got)
	}
	if got := cfg.Credentials.ForProvider(domain.ProviderClaude); got != "sk-ant-test-key" {
		t.Errorf("ForProvider(claude) = %s, want env value", got)
	}
}

func TestLoadConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
server:
  port: 9090
providers:
  gpt4:
    model_name: gpt-4o-mini
    temperature: 0.5
    max_tokens: 512
  claude:
    model_name: claude-3-7-sonnet-20250219
    temperature: 0.1
    max_tokens: 2000
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Providers["gpt4"].ModelName != "gpt-4o-mini" {
		t.Errorf("gpt4 model = %s, want gpt-4o-mini", cfg.Providers["gpt4"].ModelName)
	}
	if cfg.Providers["gpt4"].MaxTokens != 512 {
		t.Errorf("gpt4 max_tokens = %d, want 512", cfg.Providers["gpt4"].MaxTokens)
	}
}

func TestResetConfig(t *testing.T) {
	ResetConfig()
	if configInstance != nil || configErr != nil {
		t.Error("ResetConfig() did not clear singleton state")
	}
}
