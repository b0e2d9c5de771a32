package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/portfolio/backend/internal/validation"
)

// maxBodyBytes caps request bodies on create endpoints.
const maxBodyBytes = 64 << 10

type errorResponse struct {
	Error  string                  `json:"error"`
	Errors []validation.FieldError `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, errorResponse{Error: code})
}

// writeValidationError responds 400 with the field list carried by err.
func writeValidationError(w http.ResponseWriter, err error) {
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		writeError(w, http.StatusBadRequest, "validation_failed")
		return
	}
	writeJSON(w, http.StatusBadRequest, errorResponse{
		Error:  "validation_failed",
		Errors: verrs,
	})
}

// decodePayload reads the request body as a JSON object. On failure it has
// already written the response and returns false.
func decodePayload(w http.ResponseWriter, r *http.Request) (validation.Payload, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	p, err := validation.Decode(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "body_too_large")
			return nil, false
		}
		writeError(w, http.StatusBadRequest, "invalid_json")
		return nil, false
	}
	return p, true
}
