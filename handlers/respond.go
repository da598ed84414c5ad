package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"p9e.in/sheets/config"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondMessage(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"message": msg})
}

// respondError logs and returns a failure. The underlying error detail is
// included in the body outside production only.
func respondError(w http.ResponseWriter, status int, msg string, err error) {
	body := map[string]interface{}{"message": msg}
	if err != nil {
		log.Printf("%s: %v", msg, err)
		if !config.Production() {
			body["error"] = err.Error()
		}
	}
	respondJSON(w, status, body)
}
