package jsonutil

import (
	"encoding/json"
	"net/http"

	"github.com/example/nigelapi/internal/types"
)

// JSON writes a JSON response with status code.
func JSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes the standard {error, details} failure body.
func Error(w http.ResponseWriter, code int, label, details string) {
	JSON(w, code, types.ErrorResponse{Error: label, Details: details})
}
