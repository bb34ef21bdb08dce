package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
)

const devJWTSecret = "dev-secret-change-in-production"

type Config struct {
	Port      string
	Env       string
	LogLevel  slog.Level
	LogFormat string

	BreachAPIURL  string
	BreachTimeout time.Duration
	BreachEnabled bool
	BreachPadding bool

	// JWTSecret enables bearer-token auth on the API when non-empty.
	JWTSecret string

	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads the configuration from the environment. Every invalid value is
// reported in the returned error, not just the first.
func Load() (Config, error) {
	var errs *multierror.Error

	cfg := Config{
		Port:         getEnv("PORT", "8080"),
		Env:          getEnv("ENV", "development"),
		LogFormat:    strings.ToLower(getEnv("LOG_FORMAT", "text")),
		BreachAPIURL: getEnv("BREACH_API_URL", "https://api.pwnedpasswords.com/range/"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		errs = multierror.Append(errs, fmt.Errorf("LOG_FORMAT: must be text or json, got %q", cfg.LogFormat))
	}

	var err error
	if cfg.BreachTimeout, err = time.ParseDuration(getEnv("BREACH_TIMEOUT", "5s")); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("BREACH_TIMEOUT: %w", err))
	} else if cfg.BreachTimeout <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("BREACH_TIMEOUT: must be positive, got %s", cfg.BreachTimeout))
	}
	if cfg.BreachEnabled, err = strconv.ParseBool(getEnv("BREACH_CHECK_ENABLED", "true")); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("BREACH_CHECK_ENABLED: %w", err))
	}
	if cfg.BreachPadding, err = strconv.ParseBool(getEnv("BREACH_PADDING", "true")); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("BREACH_PADDING: %w", err))
	}
	if cfg.RateLimitRPS, err = strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "5"), 64); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("RATE_LIMIT_RPS: %w", err))
	} else if cfg.RateLimitRPS <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("RATE_LIMIT_RPS: must be positive, got %v", cfg.RateLimitRPS))
	}
	if cfg.RateLimitBurst, err = strconv.Atoi(getEnv("RATE_LIMIT_BURST", "10")); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("RATE_LIMIT_BURST: %w", err))
	} else if cfg.RateLimitBurst <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("RATE_LIMIT_BURST: must be positive, got %d", cfg.RateLimitBurst))
	}

	if cfg.Env == "production" && cfg.JWTSecret == devJWTSecret {
		errs = multierror.Append(errs, fmt.Errorf("JWT_SECRET: must be changed in production"))
	}

	return cfg, errs.ErrorOrNil()
}

// Logger builds the process logger described by the config.
func (c Config) Logger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
