package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/andrewpaige1/studyset-web/auth"
	"github.com/andrewpaige1/studyset-web/utils"
)

const (
	LoginPath  = "/login/"
	LogoutPath = "/logout/"
)

// RequireCredential redirects to the login page when the credential cookie
// is missing, and to logout when it carries an expired JWT.
func RequireCredential(cookieName string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token := auth.Credential(r, cookieName)
			if token == "" {
				http.Redirect(w, r, LoginPath, http.StatusSeeOther)
				return
			}

			if auth.Expired(token, time.Now()) {
				log.Info().Str("path", r.URL.Path).Msg("RequireCredential: credential expired")
				http.Redirect(w, r, LogoutPath, http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r.WithContext(utils.WithCredential(r.Context(), token)))
		}
	}
}
