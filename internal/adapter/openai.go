// Package adapter selects between the hosted model providers.
package adapter

import (
	"context"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"

	"github.com/chipchat/llm-gateway/internal/domain"
)

// openAIClient implements Client on top of the official OpenAI SDK's
// Chat Completions API.
type openAIClient struct {
	cli    openai.Client
	cfg    domain.ModelConfig
	apiKey string
}

// newOpenAIClient builds a Chat Completions client bound to the given model
// record. An empty apiKey delegates credential resolution to the SDK
// (OPENAI_API_KEY). An empty baseURL keeps the SDK default endpoint.
func newOpenAIClient(cfg domain.ModelConfig, apiKey, baseURL string) *openAIClient {
	opts := []option.RequestOption{
		option.WithRequestTimeout(RequestTimeout),
	}
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &openAIClient{
		cli:    openai.NewClient(opts...),
		cfg:    cfg,
		apiKey: apiKey,
	}
}

func (c *openAIClient) Provider() domain.ProviderID { return domain.ProviderGPT4 }

func (c *openAIClient) Config() domain.ModelConfig { return c.cfg }

// Complete sends prompt as a single user message with the configured model,
// temperature and token budget.
func (c *openAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.cfg.ModelName),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(c.cfg.Temperature),
		MaxTokens:   openai.Int(int64(c.cfg.MaxTokens)),
	}

	resp, err := c.cli.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
