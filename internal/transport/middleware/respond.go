package middleware

import (
	"encoding/json"
	"net/http"
)

// writeFailure answers with the {ok, message} envelope the REST handlers use.
func writeFailure(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(struct { //nolint:errcheck
		OK      bool   `json:"ok"`
		Message string `json:"message"`
	}{OK: false, Message: message})
}
