// Package adapter selects between the hosted model providers.
package adapter

import (
	"time"

	"github.com/chipchat/llm-gateway/internal/domain"
)

// RequestTimeout is the fixed per-request timeout handed to every provider
// SDK client. Enforced by the SDKs, not by this package.
const RequestTimeout = 600 * time.Second

// Adapter resolves a provider id against the provider table and owns the
// resulting client handle. The handle always reflects the current
// credential: UpdateCredential rebuilds it synchronously before returning.
//
// An Adapter performs no internal locking. Concurrent UpdateCredential and
// Client calls need external synchronization - the Registry provides it.
type Adapter struct {
	provider domain.ProviderID
	cfg      domain.ModelConfig
	apiKey   string
	baseURL  string
	client   Client
}

// Option is a functional option for configuring an Adapter.
type Option func(*Adapter)

// WithCredential sets an explicit API key. Without it, credential
// resolution is delegated to the provider SDK's environment defaults.
func WithCredential(apiKey string) Option {
	return func(a *Adapter) {
		a.apiKey = apiKey
	}
}

// WithBaseURL overrides the provider API endpoint. Used for tests and
// self-hosted proxies.
func WithBaseURL(url string) Option {
	return func(a *Adapter) {
		a.baseURL = url
	}
}

// New constructs an Adapter for the given provider. It looks up the model
// record in the table and immediately builds the client handle with the
// fixed request timeout. Returns *domain.UnsupportedProviderError if the
// provider has no table entry; no other validation is performed here.
func New(table domain.ProviderTable, provider domain.ProviderID, opts ...Option) (*Adapter, error) {
	cfg, ok := table.Lookup(provider)
	if !ok {
		return nil, &domain.UnsupportedProviderError{Provider: provider}
	}

	a := &Adapter{
		provider: provider,
		cfg:      cfg,
	}
	for _, opt := range opts {
		opt(a)
	}

	client, err := a.buildClient()
	if err != nil {
		return nil, err
	}
	a.client = client

	return a, nil
}

// Provider returns the provider id this Adapter dispatches to.
func (a *Adapter) Provider() domain.ProviderID {
	return a.provider
}

// Config returns the resolved model record.
func (a *Adapter) Config() domain.ModelConfig {
	return a.cfg
}

// Client returns the currently-held client handle.
func (a *Adapter) Client() Client {
	return a.client
}

// UpdateCredential replaces the stored credential and rebuilds the client
// handle with the same provider and model record. The old handle is
// discarded; the Adapter is its only owner, so nothing else can alias it.
func (a *Adapter) UpdateCredential(apiKey string) error {
	a.apiKey = apiKey

	client, err := a.buildClient()
	if err != nil {
		return err
	}
	a.client = client

	return nil
}

// buildClient dispatches on the provider enum. The default branch is
// unreachable through New, which already validated the id against the
// table; it guards against corrupted internal state.
func (a *Adapter) buildClient() (Client, error) {
	switch a.provider {
	case domain.ProviderGPT4:
		return newOpenAIClient(a.cfg, a.apiKey, a.baseURL), nil
	case domain.ProviderClaude:
		return newAnthropicClient(a.cfg, a.apiKey, a.baseURL), nil
	default:
		return nil, &domain.UnsupportedProviderError{Provider: a.provider}
	}
}
