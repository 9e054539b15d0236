package util

import (
	"encoding/json"
	"net/http"

	"agri-connect/internal/shared/apperrors"
)

func ResponseInJson(w http.ResponseWriter, statusCode int, object interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(object)
}

func WriteJSONError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// ErrResponseInJson maps a domain error to its HTTP status and writes it.
func ErrResponseInJson(w http.ResponseWriter, err error) {
	WriteJSONError(w, err.Error(), apperrors.Status(err))
}
