// Package adapter selects between the hosted model providers.
package adapter

import (
	"context"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/chipchat/llm-gateway/internal/domain"
)

// anthropicClient implements Client on top of the official Anthropic SDK's
// Messages API.
type anthropicClient struct {
	cli    anthropic.Client
	cfg    domain.ModelConfig
	apiKey string
}

// newAnthropicClient builds a Messages API client bound to the given model
// record. An empty apiKey delegates credential resolution to the SDK
// (ANTHROPIC_API_KEY). An empty baseURL keeps the SDK default endpoint.
func newAnthropicClient(cfg domain.ModelConfig, apiKey, baseURL string) *anthropicClient {
	opts := []option.RequestOption{
		option.WithRequestTimeout(RequestTimeout),
	}
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &anthropicClient{
		cli:    anthropic.NewClient(opts...),
		cfg:    cfg,
		apiKey: apiKey,
	}
}

func (c *anthropicClient) Provider() domain.ProviderID { return domain.ProviderClaude }

func (c *anthropicClient) Config() domain.ModelConfig { return c.cfg }

// Complete sends prompt as a single user message with the configured model,
// temperature and token budget. Text blocks are concatenated; other block
// types (tool use) are ignored since the gateway never requests them.
func (c *anthropicClient) Complete(ctx context.Context, prompt string) (string, error) {
	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(c.cfg.ModelName),
		MaxTokens:   int64(c.cfg.MaxTokens),
		Temperature: anthropic.Float(c.cfg.Temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}

	resp, err := c.cli.Messages.New(ctx, params)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	return sb.String(), nil
}
