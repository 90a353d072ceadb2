package handlers

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/rs/cors"
	"github.com/rs/zerolog/log"

	"github.com/andrewpaige1/studyset-web/auth"
)

// NewAPIProxy forwards /api/* to the backend with the /api prefix dropped,
// e.g. /api/studysets/ to {baseURL}/studysets/. The credential cookie becomes
// the Authorization header unless the browser already sent one.
func NewAPIProxy(baseURL, cookieName string, allowedOrigins []string) (http.Handler, error) {
	target, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}

	proxy := &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.Out.URL.Path = strings.TrimPrefix(pr.In.URL.Path, "/api")
			pr.Out.URL.RawPath = ""
			pr.SetURL(target)
			pr.SetXForwarded()

			if pr.Out.Header.Get("Authorization") == "" {
				if token := auth.Credential(pr.In, cookieName); token != "" {
					pr.Out.Header.Set("Authorization", auth.HeaderValue(token))
				}
			}
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			log.Error().Err(err).Str("path", r.URL.Path).Msg("APIProxy: backend unavailable")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte(`{"detail":"Backend unavailable"}`))
		},
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(proxy)

	return corsHandler, nil
}
