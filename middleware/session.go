package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/andrewpaige1/studyset-web/config"
	"github.com/andrewpaige1/studyset-web/utils"
)

const SessionCookie = "sid"

// Session gives every browser a stable id so drafts and preferences can be
// looked up again on the next request.
func Session(env config.Environment) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := ""
			if cookie, err := r.Cookie(SessionCookie); err == nil {
				if _, err := uuid.Parse(cookie.Value); err == nil {
					id = cookie.Value
				}
			}

			if id == "" {
				id = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookie,
					Value:    id,
					Path:     "/",
					Domain:   env.CookieDomain(),
					HttpOnly: true,
					Secure:   env.CookieSecure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			next.ServeHTTP(w, r.WithContext(utils.WithSessionID(r.Context(), id)))
		})
	}
}
