package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vaultpass/passcheck/internal/middleware"
)

// RouterConfig holds what NewRouter needs beyond the handlers.
type RouterConfig struct {
	// JWTSecret guards /api/v1 when non-empty.
	JWTSecret      string
	RateLimitRPS   float64
	RateLimitBurst int
}

// NewRouter wires the API routes. ctx bounds background work such as rate
// limiter cleanup.
func NewRouter(ctx context.Context, cfg RouterConfig, eval *EvaluateHandler, gen *GeneratorHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.JWTSecret != "" {
			r.Use(middleware.JWTAuth(cfg.JWTSecret))
		}

		r.Post("/generate", gen.HandleGenerate)
		r.Post("/passphrase", gen.HandlePassphrase)

		// Each evaluation may cost one request to the breach corpus.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst))
			r.Post("/evaluate", eval.HandleEvaluate)
		})
	})

	return r
}
