package core

import (
	"encoding/json"
	"errors"
	"net/http"
)

// ErrorResponse is the error envelope every route renders on failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// JSON writes v as a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error renders err as a JSON error response. HTTPError values map to
// their status and key; anything else becomes a generic 500 so raw
// internal errors are never leaked to the caller.
func Error(w http.ResponseWriter, err error) {
	httpErr := ErrInternalServerError
	var he HTTPError
	if errors.As(err, &he) {
		httpErr = he
	}
	JSON(w, httpErr.Code, ErrorResponse{Error: httpErr.Key})
}
