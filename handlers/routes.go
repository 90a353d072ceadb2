package handlers

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/andrewpaige1/studyset-web/config"
	"github.com/andrewpaige1/studyset-web/middleware"
	"github.com/andrewpaige1/studyset-web/utils"
)

// Routes wires every page and the API proxy. protect wraps the pages that
// need a credential.
func (h *Handler) Routes(api http.Handler, protect func(http.HandlerFunc) http.HandlerFunc, env config.Environment) http.Handler {
	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("GET /{$}", h.Landing)
	mux.HandleFunc("GET /login/{$}", h.Login)
	mux.HandleFunc("POST /login/guest/{$}", h.LoginGuest)
	mux.HandleFunc("GET /logout/{$}", h.Logout)

	// Dashboard
	mux.HandleFunc("GET /dashboard/{$}", protect(h.Dashboard))
	mux.HandleFunc("POST /preferences/{$}", protect(h.SetPreferences))

	// Study sets
	mux.HandleFunc("GET /sets/new/{$}", protect(h.NewStudySet))
	mux.HandleFunc("GET /sets/{setID}/edit/{$}", protect(h.EditStudySet))
	mux.HandleFunc("POST /sets/{setID}/delete/{$}", protect(h.DeleteStudySet))
	mux.HandleFunc("POST /sets/{setID}/play/{$}", protect(h.PlayStudySet))
	mux.HandleFunc("POST /sets/play/{$}", protect(h.PlayStudySet))

	// Drafts
	mux.HandleFunc("GET /drafts/{draftKey}/{$}", protect(h.ShowDraft))
	mux.HandleFunc("POST /drafts/{draftKey}/{$}", protect(h.UpdateDraft))

	// Games
	mux.HandleFunc("GET /games/{$}", protect(h.Games))

	// Backend
	mux.Handle("/api/", api)

	var handler http.Handler = mux
	handler = middleware.SecurityHeaders(handler)
	handler = hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("request_id", chimw.GetReqID(r.Context())).
			Str("session", utils.SessionID(r)).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	})(handler)
	handler = middleware.Session(env)(handler)
	handler = hlog.NewHandler(log.Logger)(handler)
	handler = chimw.Recoverer(handler)
	handler = chimw.RealIP(handler)
	handler = chimw.RequestID(handler)

	return handler
}
