package res

import (
	"encoding/json"
	"net/http"
)

// Json writes a JSON response with the given status code.
func Json(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// Error writes a JSON error envelope with the given status code.
func Error(w http.ResponseWriter, msg string, status int) {
	Json(w, map[string]string{"error": msg}, status)
}
