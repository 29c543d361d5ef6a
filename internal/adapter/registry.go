// Package adapter selects between the hosted model providers.
package adapter

import (
	"sync"

	"github.com/chipchat/llm-gateway/internal/domain"
)

// Registry holds one Adapter per configured provider behind an RWMutex.
// Adapters themselves are not safe for concurrent credential rotation; the
// Registry is the synchronization layer callers share.
type Registry struct {
	mu       sync.RWMutex
	adapters map[domain.ProviderID]*Adapter
}

// NewRegistry constructs one Adapter per provider in the table, using
// credentials(id) as the initial key for each. Extra options (such as
// WithBaseURL) apply to every adapter.
func NewRegistry(table domain.ProviderTable, credentials func(domain.ProviderID) string, opts ...Option) (*Registry, error) {
	r := &Registry{
		adapters: make(map[domain.ProviderID]*Adapter, len(table)),
	}

	for _, id := range table.Providers() {
		adapterOpts := opts
		if credentials != nil {
			if key := credentials(id); key != "" {
				adapterOpts = append([]Option{WithCredential(key)}, opts...)
			}
		}

		a, err := New(table, id, adapterOpts...)
		if err != nil {
			return nil, err
		}
		r.adapters[id] = a
	}

	return r, nil
}

// Get returns the Adapter for the given provider.
// Returns *domain.UnsupportedProviderError for unknown ids.
func (r *Registry) Get(id domain.ProviderID) (*Adapter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.adapters[id]
	if !ok {
		return nil, &domain.UnsupportedProviderError{Provider: id}
	}
	return a, nil
}

// Client returns the current client handle for the given provider.
func (r *Registry) Client(id domain.ProviderID) (Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.adapters[id]
	if !ok {
		return nil, &domain.UnsupportedProviderError{Provider: id}
	}
	return a.Client(), nil
}

// UpdateCredential rotates the credential of one provider's Adapter. The
// handle rebuild happens under the write lock, so readers never observe a
// handle that is out of sync with the stored credential.
func (r *Registry) UpdateCredential(id domain.ProviderID, apiKey string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.adapters[id]
	if !ok {
		return &domain.UnsupportedProviderError{Provider: id}
	}
	return a.UpdateCredential(apiKey)
}

// Providers returns the registered provider ids in canonical order.
func (r *Registry) Providers() []domain.ProviderID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]domain.ProviderID, 0, len(r.adapters))
	for _, id := range domain.KnownProviders() {
		if _, ok := r.adapters[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// Size returns the number of registered adapters.
func (r *Registry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.adapters)
}
