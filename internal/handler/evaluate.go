package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/vaultpass/passcheck/internal/model"
	"github.com/vaultpass/passcheck/internal/service"
)

// EvaluateHandler handles HTTP requests for password evaluation.
type EvaluateHandler struct {
	evaluator *service.Evaluator
	generator *service.GeneratorService
}

// NewEvaluateHandler creates a new EvaluateHandler.
func NewEvaluateHandler(evaluator *service.Evaluator, generator *service.GeneratorService) *EvaluateHandler {
	return &EvaluateHandler{evaluator: evaluator, generator: generator}
}

// HandleEvaluate handles POST /api/v1/evaluate requests. Passwords that are
// not Strong get a random password and a passphrase as alternatives.
func (h *EvaluateHandler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	if r.Body == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	var req model.EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if isTooLarge(err) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	verdict := h.evaluator.Evaluate(r.Context(), req.Password)
	resp := model.EvaluateResponse{Verdict: verdict}

	if verdict.Strength != model.StrengthStrong {
		alt, err := h.generator.Suggest()
		if err != nil {
			slog.Error("generating alternatives", "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
			return
		}
		resp.Alternatives = &alt
	}

	writeJSON(w, http.StatusOK, resp)
}
