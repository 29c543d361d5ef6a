// Package main is the entry point for the llm-gateway server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chipchat/llm-gateway/internal/adapter"
	"github.com/chipchat/llm-gateway/internal/config"
	"github.com/chipchat/llm-gateway/internal/handler"
	"github.com/chipchat/llm-gateway/internal/security"
	"github.com/chipchat/llm-gateway/internal/ui"
)

func main() {
	// =========================================================================
	// 1. Setup structured logger (JSON format, credential redaction)
	// =========================================================================
	logger := setupLogger()

	logger.Info("starting llm-gateway")

	// =========================================================================
	// 2. Load configuration (Singleton)
	// =========================================================================
	cfg, err := config.GetConfig()
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("configuration loaded",
		slog.String("host", cfg.Server.Host),
		slog.Int("port", cfg.Server.Port),
		slog.Int("providers", len(cfg.Providers)),
	)

	// =========================================================================
	// 3. Build the provider adapter registry
	// =========================================================================
	registry, err := adapter.NewRegistry(cfg.ProviderTable(), cfg.Credentials.ForProvider)
	if err != nil {
		logger.Error("failed to build adapter registry", slog.String("error", err.Error()))
		os.Exit(1)
	}

	providerNames := make([]string, 0, registry.Size())
	for _, id := range registry.Providers() {
		providerNames = append(providerNames, string(id))
		if key := cfg.Credentials.ForProvider(id); key != "" {
			logger.Info("provider configured",
				slog.String("provider", string(id)),
				slog.String("key", security.MaskKey(key)),
			)
		}
	}

	// =========================================================================
	// 4. Create ChatHandler
	// =========================================================================
	chatHandler := handler.NewChatHandler(registry, handler.WithLogger(logger))

	// =========================================================================
	// 5. Setup Gin router with middleware
	// =========================================================================
	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(handler.RecoveryMiddleware(logger))
	router.Use(handler.CORSMiddleware())
	router.Use(handler.LoggingMiddleware(logger))

	router.GET("/health", chatHandler.HandleHealth)
	v1 := router.Group("/v1")
	{
		v1.POST("/chat", chatHandler.HandleChat)
		v1.GET("/providers", chatHandler.HandleProviders)
		v1.PUT("/providers/:provider/credential", chatHandler.HandleUpdateCredential)
	}

	// =========================================================================
	// 6. Start HTTP server with graceful shutdown
	// =========================================================================
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
	}

	go func() {
		logger.Info("server starting", slog.String("address", addr))

		ui.PrintBanner()
		ui.PrintStartupInfo("http://"+addr, providerNames)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// =========================================================================
	// 7. Graceful shutdown on SIGTERM/SIGINT
	// =========================================================================
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutdown signal received", slog.String("signal", sig.String()))

	shutdownTimeout := time.Duration(cfg.Server.ShutdownTimeoutSeconds) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("server stopped gracefully")
}

// setupLogger creates a structured JSON logger with a redaction layer so
// credentials never reach the log sink.
func setupLogger() *slog.Logger {
	level := slog.LevelInfo

	if envLevel := os.Getenv("CHIPCHAT_GATEWAY_LOGGING_LEVEL"); envLevel != "" {
		switch envLevel {
		case "debug":
			level = slog.LevelDebug
		case "info":
			level = slog.LevelInfo
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		}
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := security.NewRedactedHandler(slog.NewJSONHandler(os.Stdout, opts))
	logger := slog.New(handler)

	slog.SetDefault(logger)

	return logger
}
