package handlers

import (
	"encoding/json"
	"net/http"

	pkgerrors "prioritize/pkg/errors"

	"go.uber.org/zap"
)

const contentTypeJSON = "application/json; charset=UTF-8"

// decode reads a JSON request body into v
func decode(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return pkgerrors.NewValidationError("Invalid request body: " + err.Error())
	}
	return nil
}

func respondJSON(w http.ResponseWriter, logger *zap.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("Failed to encode response", zap.Error(err))
	}
}

// respondOK acknowledges a mutation with an empty 200
func respondOK(w http.ResponseWriter) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(http.StatusOK)
}
