package auth

import (
	"crypto/subtle"
	"net/http"

	"ms-rsvp/internal/config"
	"ms-rsvp/internal/logger"
)

// BasicAuth guards the admin area. Username and password are both compared in
// constant time on every request so a mismatch in either takes the same path.
func BasicAuth(creds config.AdminConfig, log *logger.Logger) func(http.Handler) http.Handler {
	wantUser := []byte(creds.Username)
	wantPass := []byte(creds.Password)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, pass, _ := r.BasicAuth()

			okUser := subtle.ConstantTimeCompare([]byte(user), wantUser)
			okPass := subtle.ConstantTimeCompare([]byte(pass), wantPass)
			if okUser&okPass != 1 {
				log.LogSecurity("AUTH_FAILED", r.Method+" "+r.URL.Path+" from "+r.RemoteAddr)
				w.Header().Set("WWW-Authenticate", "Basic")
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
