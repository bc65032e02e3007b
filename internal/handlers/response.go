package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/asirianni/LatinAd/internal/models"
)

// SuccessResponse is the envelope returned by every successful endpoint.
// swagger:model SuccessResponse
type SuccessResponse struct {
	// Always true
	Success bool `json:"success"`

	// Human readable message, omitted when empty
	Message string `json:"message,omitempty"`

	// Endpoint specific payload
	Data any `json:"data,omitempty"`

	// Page metadata, present on list endpoints only
	Pagination *models.Pagination `json:"pagination,omitempty"`
}

// ErrorResponse is the envelope returned by every failed endpoint.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Always false
	Success bool `json:"success"`

	// Human readable message
	// default: Display not found
	Message string `json:"message"`

	// Field-keyed validation messages, present on 422 only
	Errors map[string]string `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func respondData(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, SuccessResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func respondError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{
		Success: false,
		Message: message,
	})
}

func respondValidation(w http.ResponseWriter, errs map[string]string) {
	writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
		Success: false,
		Message: "The given data was invalid",
		Errors:  errs,
	})
}
