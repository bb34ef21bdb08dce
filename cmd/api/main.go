package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/vaultpass/passcheck/internal/breach"
	"github.com/vaultpass/passcheck/internal/config"
	"github.com/vaultpass/passcheck/internal/handler"
	"github.com/vaultpass/passcheck/internal/service"
	"github.com/vaultpass/passcheck/internal/strength"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(cfg.Logger(os.Stderr))

	var checker service.BreachChecker
	if cfg.BreachEnabled {
		checker = breach.NewChecker(breach.Config{
			BaseURL:   cfg.BreachAPIURL,
			Timeout:   cfg.BreachTimeout,
			Padding:   cfg.BreachPadding,
			UserAgent: "passcheck",
		}, nil)
	} else {
		slog.Warn("breach lookups disabled, every verdict will report not_checked")
	}

	evaluator := service.NewEvaluator(strength.DefaultBlocklist(), checker)
	genService := service.NewGeneratorService(nil, nil)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	router := handler.NewRouter(ctx, handler.RouterConfig{
		JWTSecret:      cfg.JWTSecret,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	}, handler.NewEvaluateHandler(evaluator, genService), handler.NewGeneratorHandler(genService))

	if cfg.JWTSecret == "" {
		slog.Warn("JWT_SECRET not set, API is unauthenticated")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "breach_timeout", cfg.BreachTimeout)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
