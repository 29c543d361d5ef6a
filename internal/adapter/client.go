// Package adapter selects between the hosted model providers, applies
// per-provider configuration, and normalizes response text. It uses the
// Adapter pattern to hide the provider SDKs behind a common interface.
package adapter

import (
	"context"

	"github.com/chipchat/llm-gateway/internal/domain"
)

// Client is the handle built by an Adapter: a provider SDK client bound to
// one model record and one credential. Request/response mechanics beyond
// Complete (retries, streaming, token accounting) are out of scope.
type Client interface {
	// Complete sends a single user message and returns the raw response
	// text. SDK errors (network, auth, decode) propagate unwrapped.
	Complete(ctx context.Context, prompt string) (string, error)

	// Provider returns the provider this handle is bound to.
	Provider() domain.ProviderID

	// Config returns the model record the handle was built with.
	Config() domain.ModelConfig
}
