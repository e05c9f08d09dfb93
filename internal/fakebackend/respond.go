package fakebackend

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/channelgate/channelgate-go/client"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeOK writes a successful envelope around data.
func writeOK(w http.ResponseWriter, statusCode int, message string, data any) {
	writeJSON(w, statusCode, map[string]any{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// writeFail writes a failed envelope with an error body.
func writeFail(w http.ResponseWriter, statusCode int, message, code string) {
	writeJSON(w, statusCode, client.Envelope[struct{}]{
		Message: message,
		Error:   &client.ErrorBody{Code: code, Description: message},
	})
}

// decode reads a JSON body into dst and runs struct validation.
func (b *Backend) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid JSON body", "bad_request")
		return false
	}
	if err := b.validate.Struct(dst); err != nil {
		writeFail(w, http.StatusUnprocessableEntity, "Validation failed: "+err.Error(), "validation_error")
		return false
	}
	return true
}

// extractBearer pulls the token out of "Authorization: Bearer <token>".
func extractBearer(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("missing Authorization header")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", errors.New("invalid Authorization header format, expected 'Bearer <token>'")
	}
	return parts[1], nil
}
