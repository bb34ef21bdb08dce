// Package breach looks passwords up in the Pwned Passwords corpus using the
// k-anonymity range API. Only the first five hex characters of the SHA-1
// hash ever leave the process.
package breach

import (
	"bufio"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/vaultpass/passcheck/internal/model"
)

const (
	DefaultBaseURL = "https://api.pwnedpasswords.com/range/"
	DefaultTimeout = 5 * time.Second

	prefixLen = 5
	suffixLen = 35
)

// Doer sends a single HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config controls how the range API is queried.
type Config struct {
	// BaseURL is the range endpoint; the hash prefix is appended to it.
	BaseURL string
	// Timeout bounds the whole lookup, including reading the body.
	Timeout time.Duration
	// Padding asks the API to pad responses with zero-count entries so the
	// response size does not reveal the prefix.
	Padding bool
	// UserAgent is sent with every request.
	UserAgent string
}

// DefaultConfig returns the production settings.
func DefaultConfig() Config {
	return Config{
		BaseURL:   DefaultBaseURL,
		Timeout:   DefaultTimeout,
		Padding:   true,
		UserAgent: "passcheck",
	}
}

// Checker performs breach lookups. It holds no per-lookup state and is safe
// for concurrent use.
type Checker struct {
	cfg    Config
	client Doer
}

// NewChecker creates a Checker. A nil client uses a fresh *http.Client;
// the lookup deadline comes from cfg.Timeout, not from the client.
func NewChecker(cfg Config, client Doer) *Checker {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if client == nil {
		client = &http.Client{}
	}
	return &Checker{cfg: cfg, client: client}
}

// Check reports whether password appears in the corpus. It never fails:
// transport errors, timeouts, cancellation and non-200 responses all yield
// model.NotChecked. At most one request is made.
func (c *Checker) Check(ctx context.Context, password string) model.BreachResult {
	prefix, suffix := HashParts(password)

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+prefix, nil)
	if err != nil {
		slog.Warn("breach lookup: new request", "error", err)
		return model.NotChecked()
	}
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}
	if c.cfg.Padding {
		req.Header.Set("Add-Padding", "true")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		slog.Warn("breach lookup failed", "error", err)
		return model.NotChecked()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Warn("breach lookup: unexpected status", "status", resp.StatusCode)
		return model.NotChecked()
	}

	result, err := matchRange(resp.Body, suffix)
	if err != nil {
		slog.Warn("breach lookup: read response", "error", err)
		return model.NotChecked()
	}
	return result
}

// HashParts returns the uppercase hex SHA-1 of password split into the
// 5-character prefix sent to the API and the 35-character suffix kept local.
func HashParts(password string) (prefix, suffix string) {
	sum := sha1.Sum([]byte(password))
	h := strings.ToUpper(hex.EncodeToString(sum[:]))
	return h[:prefixLen], h[prefixLen:]
}

// matchRange scans SUFFIX:COUNT lines for suffix. Blank and malformed lines
// are skipped. A match with count 0 is a padding entry and counts as clean.
func matchRange(body io.Reader, suffix string) (model.BreachResult, error) {
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		hashSuffix, countStr, ok := strings.Cut(line, ":")
		if !ok || len(hashSuffix) != suffixLen {
			continue
		}
		if !strings.EqualFold(hashSuffix, suffix) {
			continue
		}

		count, err := strconv.ParseInt(strings.TrimSpace(countStr), 10, 64)
		if err != nil || count < 0 {
			continue
		}
		if count == 0 {
			return model.Clean(), nil
		}
		return model.Found(count), nil
	}
	if err := scanner.Err(); err != nil {
		return model.BreachResult{}, fmt.Errorf("scan range: %w", err)
	}
	return model.Clean(), nil
}
