package utils

import (
	"encoding/json"
	"net/http"
)

// JSON writes data as a JSON response with the given status.
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// Detail writes the {"detail": ...} error shape the mobile client expects.
func Detail(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"detail": message})
}
