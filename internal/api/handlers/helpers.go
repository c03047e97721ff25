package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

// Error envelope shared by every endpoint: {"error": "..."}.
type errorEnvelope struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s status=%d err=%v", r.Method, r.URL.Path, status, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, errorEnvelope{Error: msg})
}
