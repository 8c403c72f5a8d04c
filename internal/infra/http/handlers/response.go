package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/novaclaw/agency-api/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeErrorResponse(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{
		"success": false,
		"error":   message,
	})
}

func writeValidationErrors(w http.ResponseWriter, errors []usecase.ValidationError) {
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"success": false,
		"errors":  errors,
	})
}
