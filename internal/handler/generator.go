package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/vaultpass/passcheck/internal/crypto"
	"github.com/vaultpass/passcheck/internal/model"
	"github.com/vaultpass/passcheck/internal/service"
)

const maxBodyBytes = 1 << 20 // 1MB

// GeneratorHandler handles HTTP requests for password generation.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandleGenerate handles POST /api/v1/generate requests.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if !decodeOptional(w, r, &req) {
		return
	}

	resp, err := h.service.Generate(req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandlePassphrase handles POST /api/v1/passphrase requests.
func (h *GeneratorHandler) HandlePassphrase(w http.ResponseWriter, r *http.Request) {
	var req model.PassphraseRequest
	if !decodeOptional(w, r, &req) {
		return
	}

	resp, err := h.service.Passphrase(req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// decodeOptional decodes a JSON body if one was sent. It writes the error
// response itself and returns false when the body is unusable.
func decodeOptional(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Body == nil || r.Body == http.NoBody {
		return true
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	err := json.NewDecoder(r.Body).Decode(v)
	switch {
	case err == nil || errors.Is(err, io.EOF):
		return true
	case isTooLarge(err):
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
	default:
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
	}
	return false
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

func writeServiceError(w http.ResponseWriter, err error) {
	if isValidationError(err) {
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
}

func isValidationError(err error) bool {
	return errors.Is(err, crypto.ErrInvalidArgument) ||
		errors.Is(err, service.ErrUnknownWordlist)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}
