package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/vaultpass/passcheck/internal/crypto"
	"github.com/vaultpass/passcheck/internal/model"
	"github.com/vaultpass/passcheck/internal/service"
	"github.com/vaultpass/passcheck/internal/strength"
)

type fixedChecker model.BreachResult

func (f fixedChecker) Check(context.Context, string) model.BreachResult {
	return model.BreachResult(f)
}

func newTestRouter(t *testing.T, cfg RouterConfig, breach model.BreachResult) http.Handler {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	if cfg.RateLimitRPS == 0 {
		cfg.RateLimitRPS = 100
		cfg.RateLimitBurst = 100
	}

	gen := service.NewGeneratorService(nil, nil)
	eval := service.NewEvaluator(strength.DefaultBlocklist(), fixedChecker(breach))
	return NewRouter(ctx, cfg, NewEvaluateHandler(eval, gen), NewGeneratorHandler(gen))
}

func do(t *testing.T, h http.Handler, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestRouter(t, RouterConfig{}, model.Clean()), http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Errorf("GET /health = %d %q, want 200 ok", rec.Code, rec.Body.String())
	}
}

func TestHandleEvaluate_Strong(t *testing.T) {
	rec := do(t, newTestRouter(t, RouterConfig{}, model.NotChecked()), http.MethodPost, "/api/v1/evaluate", `{"password":"Tr0ub4dor&3xyzLMN"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp model.EvaluateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Strength != model.StrengthStrong {
		t.Errorf("strength = %q, want %q", resp.Strength, model.StrengthStrong)
	}
	if resp.Alternatives != nil {
		t.Errorf("alternatives = %+v, want none for a strong password", resp.Alternatives)
	}
	if resp.Breach.Status != model.BreachNotChecked {
		t.Errorf("breach status = %q, want %q", resp.Breach.Status, model.BreachNotChecked)
	}
	if !strings.Contains(rec.Body.String(), `"suggestions":[]`) {
		t.Errorf("body %s should carry an empty suggestions array", rec.Body.String())
	}
}

func TestHandleEvaluate_WeakGetsAlternatives(t *testing.T) {
	rec := do(t, newTestRouter(t, RouterConfig{}, model.Found(9659365)), http.MethodPost, "/api/v1/evaluate", `{"password":"password"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp model.EvaluateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Strength != model.StrengthWeak {
		t.Errorf("strength = %q, want %q", resp.Strength, model.StrengthWeak)
	}
	if resp.Breach.Count != 9659365 {
		t.Errorf("breach count = %d, want 9659365", resp.Breach.Count)
	}
	if resp.Alternatives == nil {
		t.Fatal("expected alternatives for a weak password")
	}
	if len(resp.Alternatives.Random) != 16 {
		t.Errorf("random alternative %q, want 16 characters", resp.Alternatives.Random)
	}
	if n := len(strings.Split(resp.Alternatives.Passphrase, "-")); n != 4 {
		t.Errorf("passphrase alternative %q, want 4 words", resp.Alternatives.Passphrase)
	}
}

func TestHandleEvaluate_DoesNotEchoPassword(t *testing.T) {
	const secret = "Zq9!unusual-Secret-Value"
	rec := do(t, newTestRouter(t, RouterConfig{}, model.Clean()), http.MethodPost, "/api/v1/evaluate", `{"password":"`+secret+`"}`)
	if strings.Contains(rec.Body.String(), secret) {
		t.Errorf("response echoes the password: %s", rec.Body.String())
	}
}

func TestHandleEvaluate_BadBody(t *testing.T) {
	h := newTestRouter(t, RouterConfig{}, model.Clean())
	for _, body := range []string{"", "{", `{"password": 12}`} {
		rec := do(t, h, http.MethodPost, "/api/v1/evaluate", body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d, want 400", body, rec.Code)
		}
	}
}

func TestHandleEvaluate_BodyTooLarge(t *testing.T) {
	body := `{"password":"` + strings.Repeat("a", maxBodyBytes+1) + `"}`
	rec := do(t, newTestRouter(t, RouterConfig{}, model.Clean()), http.MethodPost, "/api/v1/evaluate", body)
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want 413", rec.Code)
	}
}

func TestHandleEvaluate_RateLimited(t *testing.T) {
	h := newTestRouter(t, RouterConfig{RateLimitRPS: 0.001, RateLimitBurst: 1}, model.Clean())
	first := do(t, h, http.MethodPost, "/api/v1/evaluate", `{"password":"x"}`)
	second := do(t, h, http.MethodPost, "/api/v1/evaluate", `{"password":"x"}`)
	if first.Code != http.StatusOK || second.Code != http.StatusTooManyRequests {
		t.Errorf("status codes = %d, %d; want 200, 429", first.Code, second.Code)
	}
}

func TestHandleGenerate(t *testing.T) {
	h := newTestRouter(t, RouterConfig{}, model.Clean())

	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "empty body uses defaults", body: "", want: http.StatusOK},
		{name: "custom length", body: `{"length":24,"symbols":false}`, want: http.StatusOK},
		{name: "too short", body: `{"length":4}`, want: http.StatusBadRequest},
		{name: "too long", body: `{"length":500}`, want: http.StatusBadRequest},
		{name: "no types", body: `{"uppercase":false,"lowercase":false,"numbers":false,"symbols":false}`, want: http.StatusBadRequest},
		{name: "malformed", body: `{"length":`, want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/v1/generate", tt.body)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d: %s", rec.Code, tt.want, rec.Body.String())
			}
		})
	}
}

func TestHandlePassphrase(t *testing.T) {
	h := newTestRouter(t, RouterConfig{}, model.Clean())

	tests := []struct {
		name      string
		body      string
		want      int
		wantWords int
	}{
		{name: "defaults", body: "", want: http.StatusOK, wantWords: 4},
		{name: "six nato words", body: `{"words":6}`, want: http.StatusOK, wantWords: 6},
		{name: "bip39", body: `{"words":8,"wordlist":"bip39"}`, want: http.StatusOK, wantWords: 8},
		{name: "too many words", body: `{"words":30}`, want: http.StatusBadRequest},
		{name: "negative words", body: `{"words":-1}`, want: http.StatusBadRequest},
		{name: "unknown wordlist", body: `{"wordlist":"klingon"}`, want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/v1/passphrase", tt.body)
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.want, rec.Body.String())
			}
			if tt.want != http.StatusOK {
				return
			}
			var resp model.PassphraseResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decoding response: %v", err)
			}
			if n := len(strings.Split(resp.Passphrase, "-")); n != tt.wantWords {
				t.Errorf("passphrase %q has %d words, want %d", resp.Passphrase, n, tt.wantWords)
			}
		})
	}
}

func TestRouterRequiresTokenWhenSecretSet(t *testing.T) {
	secret := "router-secret"
	h := newTestRouter(t, RouterConfig{JWTSecret: secret}, model.Clean())

	if rec := do(t, h, http.MethodPost, "/api/v1/generate", ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("without token: status = %d, want 401", rec.Code)
	}

	token, err := crypto.GenerateToken("tests", secret, time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}
	if rec := do(t, h, http.MethodPost, "/api/v1/generate", "", "Authorization", "Bearer "+token); rec.Code != http.StatusOK {
		t.Errorf("with token: status = %d, want 200", rec.Code)
	}
	if rec := do(t, h, http.MethodGet, "/health", ""); rec.Code != http.StatusOK {
		t.Errorf("health should stay public: status = %d", rec.Code)
	}
}
