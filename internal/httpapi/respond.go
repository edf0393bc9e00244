package httpapi

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"luxe-be/internal/logger"
)

// envelope is the uniform response body for every endpoint.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Errors  any    `json:"errors,omitempty"`
	Count   *int   `json:"count,omitempty"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.FromCtx(r.Context()).Error("failed to encode response", zap.Error(err))
	}
}

func ok(w http.ResponseWriter, r *http.Request, data any) {
	writeJSON(w, r, http.StatusOK, envelope{Success: true, Data: data})
}

func okMessage(w http.ResponseWriter, r *http.Request, data any, message string) {
	writeJSON(w, r, http.StatusOK, envelope{Success: true, Data: data, Message: message})
}

func okCount(w http.ResponseWriter, r *http.Request, data any, count int) {
	writeJSON(w, r, http.StatusOK, envelope{Success: true, Data: data, Count: &count})
}

func created(w http.ResponseWriter, r *http.Request, data any, message string) {
	writeJSON(w, r, http.StatusCreated, envelope{Success: true, Data: data, Message: message})
}

func fail(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, r, status, envelope{Success: false, Message: message})
}

func failFields(w http.ResponseWriter, r *http.Request, status int, message string, fieldErrors any) {
	writeJSON(w, r, status, envelope{Success: false, Message: message, Errors: fieldErrors})
}

// decode reads a JSON request body into dst.
func decode(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
