package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/uptraa/platform/internal/api/types"
)

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.ErrorBody{Error: msg})
}
