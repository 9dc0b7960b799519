package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"lingua/backend/internal/config"
	"lingua/backend/internal/db"
	"lingua/backend/internal/handler"
	transport "lingua/backend/internal/http"
	"lingua/backend/internal/logger"
	"lingua/backend/internal/network"
	"lingua/backend/internal/repository"
	"lingua/backend/internal/service"
	"lingua/backend/internal/service/ai"
)

// @title Lingua API
// @version 1.0.0
// @description Translation with cultural notes, a language assistant and grammar lookups.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config failed", "module", "main", "action", "start", "resource", "config", "result", "failed", "error", err)
		os.Exit(1)
	}
	logger.Init(logger.ParseLevel(cfg.LogLevel), cfg.LogFormat)

	if err := run(cfg); err != nil {
		logger.Error("server stopped", "module", "main", "action", "stop", "resource", "server", "result", "failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	dbConn, err := db.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	clients, err := network.NewClientFactory(cfg.AI.ProxyURL)
	if err != nil {
		return err
	}
	provider := newProvider(cfg.AI, clients)

	translationRepo := repository.NewTranslationRepository(dbConn)
	chatRepo := repository.NewChatRepository(dbConn)

	translationService := service.NewTranslationService(provider, translationRepo)
	chatService := service.NewChatService(provider, chatRepo)
	grammarService := service.NewGrammarService(provider)

	router := transport.NewRouter(
		handler.NewTranslationHandler(translationService),
		handler.NewChatHandler(chatService),
		handler.NewGrammarHandler(grammarService),
		cfg.CORSOrigins,
		cfg.StaticDir,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "module", "main", "action", "start", "resource", "server", "result", "ok", "app", config.AppName, "version", config.AppVersion, "addr", cfg.Addr, "db", cfg.DBPath, "provider", provider.Name(), "model", cfg.AI.Model)
		if err := router.Start(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down", "module", "main", "action", "stop", "resource", "server", "result", "ok")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return router.Shutdown(shutdownCtx)
}

// newProvider builds the configured model provider. Without usable
// credentials the server still starts and every model call fails.
func newProvider(cfg config.AIConfig, clients *network.ClientFactory) ai.Provider {
	provider, err := ai.NewProvider(ai.Config{
		Provider:   cfg.Provider,
		APIKey:     cfg.APIKey,
		BaseURL:    cfg.BaseURL,
		Model:      cfg.Model,
		HTTPClient: clients.NewHTTPClient(cfg.Timeout),
	})
	if err != nil {
		logger.Warn("ai provider unavailable, model calls will fail", "module", "main", "action", "start", "resource", "ai", "result", "failed", "provider", cfg.Provider, "error", err)
		provider = ai.Unavailable(cfg.Provider, err)
	} else if cfg.StartupCheck {
		// Failure is logged inside; the server starts either way.
		_ = ai.CheckConnection(context.Background(), provider, cfg.Timeout)
	}

	limited := ai.WithRateLimit(provider, ai.NewRateLimiter(cfg.RateLimit))
	return ai.Instrument(limited, cfg.Model)
}
