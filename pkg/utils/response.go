// Package utils holds the JSON response helpers shared by every handler.
package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/goinvest/internal/domain"
	"github.com/GlebRadaev/goinvest/pkg/validate"
)

// Response is the body of every error reply.
type Response struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("can't encode response", zap.Error(err))
	}
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, Response{Error: message})
}

func RespondWithDetails(w http.ResponseWriter, code int, message string, details []string) {
	RespondWithJSON(w, code, Response{Error: message, Details: details})
}

// RespondWithDomainError maps the error categories to status codes: validation 400, not found 404,
// anything else 500 with the message hidden from the client.
func RespondWithDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		RespondWithError(w, http.StatusNotFound, err.Error())
	default:
		RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// DecodeRequest reads a JSON body into v and checks its validate tags. On failure it writes the
// 400 reply itself and returns false.
func DecodeRequest(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if err := validate.Struct(v); err != nil {
		RespondWithDetails(w, http.StatusBadRequest, "Validation failed", validate.FormatValidationError(err))
		return false
	}
	return true
}
