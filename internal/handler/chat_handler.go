// Package handler provides HTTP handlers for the model gateway.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chipchat/llm-gateway/internal/adapter"
	"github.com/chipchat/llm-gateway/internal/domain"
	"github.com/chipchat/llm-gateway/internal/security"
)

// ChatHandler serves the gateway API on top of the adapter registry.
type ChatHandler struct {
	registry *adapter.Registry
	logger   *slog.Logger
}

// ChatHandlerOption is a functional option for configuring ChatHandler.
type ChatHandlerOption func(*ChatHandler)

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) ChatHandlerOption {
	return func(h *ChatHandler) {
		h.logger = logger
	}
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(registry *adapter.Registry, opts ...ChatHandlerOption) *ChatHandler {
	h := &ChatHandler{
		registry: registry,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// ChatRequest is the body of POST /v1/chat.
type ChatRequest struct {
	// Provider selects the model provider ("gpt4" or "claude").
	Provider string `json:"provider" binding:"required"`

	// Prompt is sent as a single user message.
	Prompt string `json:"prompt" binding:"required"`
}

// ChatResponse is the body returned by POST /v1/chat.
type ChatResponse struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
	Content  string `json:"content"`
}

// CredentialRequest is the body of PUT /v1/providers/:provider/credential.
type CredentialRequest struct {
	APIKey string `json:"api_key" binding:"required"`
}

// HandleChat handles POST /v1/chat.
// It dispatches the prompt to the requested provider and returns the
// normalized response text.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.sendError(c, http.StatusBadRequest, "invalid_request_error", "Invalid request body: "+err.Error())
		return
	}

	providerID := domain.ProviderID(req.Provider)
	c.Set("provider", req.Provider)

	client, err := h.registry.Client(providerID)
	if err != nil {
		if domain.IsUnsupportedProvider(err) {
			h.sendError(c, http.StatusNotFound, "invalid_request_error", err.Error())
			return
		}
		h.sendError(c, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	raw, err := client.Complete(c.Request.Context(), req.Prompt)
	if err != nil {
		// Provider failures pass through untranslated; the gateway owns
		// only the UnsupportedProviderError taxonomy.
		h.logger.Error("provider request failed",
			slog.String("provider", req.Provider),
			slog.String("model", client.Config().ModelName),
			slog.String("error", err.Error()),
		)
		h.sendError(c, http.StatusBadGateway, "provider_error", err.Error())
		return
	}

	c.JSON(http.StatusOK, ChatResponse{
		Provider: req.Provider,
		Model:    client.Config().ModelName,
		Content:  adapter.NormalizeResponse(raw),
	})
}

// HandleUpdateCredential handles PUT /v1/providers/:provider/credential.
// It rotates the stored credential and rebuilds the provider's client
// handle before responding.
func (h *ChatHandler) HandleUpdateCredential(c *gin.Context) {
	providerID := domain.ProviderID(c.Param("provider"))
	c.Set("provider", string(providerID))

	var req CredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.sendError(c, http.StatusBadRequest, "invalid_request_error", "Invalid request body: "+err.Error())
		return
	}

	if err := h.registry.UpdateCredential(providerID, req.APIKey); err != nil {
		if domain.IsUnsupportedProvider(err) {
			h.sendError(c, http.StatusNotFound, "invalid_request_error", err.Error())
			return
		}
		h.sendError(c, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	h.logger.Info("credential rotated",
		slog.String("provider", string(providerID)),
		slog.String("key", security.MaskKey(req.APIKey)),
	)

	c.JSON(http.StatusOK, gin.H{
		"provider": string(providerID),
		"rotated":  true,
	})
}

// HandleProviders handles GET /v1/providers.
// Returns the configured providers with their model records.
func (h *ChatHandler) HandleProviders(c *gin.Context) {
	providers := make([]gin.H, 0, h.registry.Size())
	for _, id := range h.registry.Providers() {
		a, err := h.registry.Get(id)
		if err != nil {
			continue
		}
		cfg := a.Config()
		providers = append(providers, gin.H{
			"id":          string(id),
			"model_name":  cfg.ModelName,
			"temperature": cfg.Temperature,
			"max_tokens":  cfg.MaxTokens,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"object": "list",
		"data":   providers,
	})
}

// HandleHealth handles GET /health.
// Returns server health status.
func (h *ChatHandler) HandleHealth(c *gin.Context) {
	status := "healthy"
	if h.registry.Size() == 0 {
		status = "degraded"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    status,
		"providers": h.registry.Size(),
	})
}

// sendError sends an error response in a consistent JSON shape.
func (h *ChatHandler) sendError(c *gin.Context, status int, errType, message string) {
	c.JSON(status, gin.H{
		"error": gin.H{
			"message": message,
			"type":    errType,
		},
	})
}
