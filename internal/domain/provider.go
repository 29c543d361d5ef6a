// Package domain contains the core business entities and value objects.
// These structs are framework-agnostic and represent the heart of the application.
package domain

import "fmt"

// ProviderID identifies a hosted model provider. It is a closed enum:
// construction code matches exhaustively on the known values, so adding a
// provider means adding a constant here and a branch there.
type ProviderID string

const (
	// ProviderGPT4 routes to the OpenAI Chat Completions API.
	ProviderGPT4 ProviderID = "gpt4"

	// ProviderClaude routes to the Anthropic Messages API.
	ProviderClaude ProviderID = "claude"
)

// KnownProviders lists every provider this gateway can dispatch to,
// in a stable order suitable for display.
func KnownProviders() []ProviderID {
	return []ProviderID{ProviderGPT4, ProviderClaude}
}

// ModelConfig is the per-provider model record: which model to request and
// the generation parameters applied to every call.
type ModelConfig struct {
	// ModelName is the provider-side model identifier (e.g., "gpt-4o-2024-08-06").
	ModelName string `json:"model_name" mapstructure:"model_name"`

	// Temperature controls randomness, in [0, 2]. Validated by the config loader.
	Temperature float64 `json:"temperature" mapstructure:"temperature"`

	// MaxTokens is the response token budget. Must be positive.
	MaxTokens int `json:"max_tokens" mapstructure:"max_tokens"`
}

// IsValid checks if the model record has all required fields.
func (m *ModelConfig) IsValid() bool {
	return m.ModelName != "" && m.MaxTokens > 0
}

// ProviderTable is the read-only provider → model record mapping. It is
// built once by the config loader and passed into adapter constructors;
// nothing mutates it afterwards.
type ProviderTable map[ProviderID]ModelConfig

// Lookup returns the model record for the given provider.
func (t ProviderTable) Lookup(id ProviderID) (ModelConfig, bool) {
	cfg, ok := t[id]
	return cfg, ok
}

// Providers returns the configured provider ids in the canonical order.
func (t ProviderTable) Providers() []ProviderID {
	ids := make([]ProviderID, 0, len(t))
	for _, id := range KnownProviders() {
		if _, ok := t[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// UnsupportedProviderError is the single domain error of the gateway:
// a provider id that has no entry in the provider table. It is fatal for
// the construction attempt; the caller must retry with a valid id.
type UnsupportedProviderError struct {
	Provider ProviderID
}

func (e *UnsupportedProviderError) Error() string {
	return fmt.Sprintf("unsupported model provider: %q", string(e.Provider))
}

// IsUnsupportedProvider checks if an error is an UnsupportedProviderError.
func IsUnsupportedProvider(err error) bool {
	_, ok := err.(*UnsupportedProviderError)
	return ok
}
