package handlers

import (
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// RequireToken guards a handler with a shared access token. tokenHash is the
// bcrypt hash of the expected token; when empty the gate is disabled.
func RequireToken(tokenHash string, next http.Handler) http.Handler {
	if tokenHash == "" {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if token == "" || bcrypt.CompareHashAndPassword([]byte(tokenHash), []byte(token)) != nil {
			http.Error(w, `{"status": 403, "error_msg": "You are not authorized to use this resource!"}`, http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
