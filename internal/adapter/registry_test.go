package adapter

import (
	"sync"
	"testing"

	"github.com/chipchat/llm-gateway/internal/domain"
)

func testCredentials(id domain.ProviderID) string {
	switch id {
	case domain.ProviderGPT4:
		return "sk-openai-initial"
	case domain.ProviderClaude:
		return "sk-ant-initial"
	default:
		return ""
	}
}

func TestNewRegistry(t *testing.T) {
	reg, err := NewRegistry(testTable(), testCredentials)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	if reg.Size() != 2 {
		t.Errorf("Size() = %d, want 2", reg.Size())
	}

	ids := reg.Providers()
	if len(ids) != 2 || ids[0] != domain.ProviderGPT4 || ids[1] != domain.ProviderClaude {
		t.Errorf("Providers() = %v, want [gpt4 claude]", ids)
	}
}

func TestRegistry_Get(t *testing.T) {
	reg, err := NewRegistry(testTable(), testCredentials)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	a, err := reg.Get(domain.ProviderGPT4)
	if err != nil {
		t.Fatalf("Get(gpt4) error = %v", err)
	}
	if a.Provider() != domain.ProviderGPT4 {
		t.Errorf("Provider() = %s, want gpt4", a.Provider())
	}

	if _, err := reg.Get("mistral"); !domain.IsUnsupportedProvider(err) {
		t.Errorf("Get(mistral) error = %v, want UnsupportedProviderError", err)
	}
}

func TestRegistry_Client(t *testing.T) {
	reg, err := NewRegistry(testTable(), testCredentials)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	client, err := reg.Client(domain.ProviderClaude)
	if err != nil {
		t.Fatalf("Client(claude) error = %v", err)
	}
	if client.Config().ModelName != "claude-3-7-sonnet-20250219" {
		t.Errorf("ModelName = %s, want claude-3-7-sonnet-20250219", client.Config().ModelName)
	}

	if _, err := reg.Client(""); !domain.IsUnsupportedProvider(err) {
		t.Errorf("Client(\"\") error = %v, want UnsupportedProviderError", err)
	}
}

func TestRegistry_UpdateCredential(t *testing.T) {
	reg, err := NewRegistry(testTable(), testCredentials)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	before, _ := reg.Client(domain.ProviderGPT4)

	if err := reg.UpdateCredential(domain.ProviderGPT4, "sk-openai-rotated"); err != nil {
		t.Fatalf("UpdateCredential() error = %v", err)
	}

	after, _ := reg.Client(domain.ProviderGPT4)
	if before == after {
		t.Error("client handle unchanged after UpdateCredential, want a rebuilt handle")
	}

	h, ok := after.(*openAIClient)
	if !ok {
		t.Fatalf("client type = %T, want *openAIClient", after)
	}
	if h.apiKey != "sk-openai-rotated" {
		t.Errorf("rotated credential = %s, want sk-openai-rotated", h.apiKey)
	}

	if err := reg.UpdateCredential("mistral", "key"); !domain.IsUnsupportedProvider(err) {
		t.Errorf("UpdateCredential(mistral) error = %v, want UnsupportedProviderError", err)
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	reg, err := NewRegistry(testTable(), testCredentials)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if _, err := reg.Client(domain.ProviderGPT4); err != nil {
				t.Errorf("Client() error = %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			if err := reg.UpdateCredential(domain.ProviderGPT4, "sk-openai-concurrent"); err != nil {
				t.Errorf("UpdateCredential() error = %v", err)
			}
		}()
	}
	wg.Wait()
}
