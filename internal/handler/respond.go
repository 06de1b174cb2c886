package handler

import (
	"encoding/json"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}

func messageResponse(msg string) map[string]string {
	return map[string]string{"message": msg}
}

// decodeJSON fills v from the request body. Absent or malformed bodies are
// treated as an empty object, leaving v at its zero value; the API never
// returns 400 for unparseable JSON.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) {
	if r.Body == nil {
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
	defer r.Body.Close()
	_ = json.NewDecoder(r.Body).Decode(v)
}
