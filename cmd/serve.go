package cmd

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/andrewpaige1/studyset-web/auth"
	"github.com/andrewpaige1/studyset-web/client"
	"github.com/andrewpaige1/studyset-web/config"
	"github.com/andrewpaige1/studyset-web/handlers"
	"github.com/andrewpaige1/studyset-web/middleware"
	"github.com/andrewpaige1/studyset-web/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		srv, err := newServer(cfg)
		if err != nil {
			return err
		}

		log.Info().
			Str("addr", srv.Addr).
			Str("api", cfg.API.BaseURL).
			Bool("development", cfg.Env.IsDevelopment).
			Msg("Server starting")
		return srv.ListenAndServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// protection builds the credential check every page behind login goes
// through. Signature verification is added when a JWT secret is configured.
func protection(cfg *config.Config) (func(http.HandlerFunc) http.HandlerFunc, error) {
	check := middleware.RequireCredential(cfg.Auth.CookieName)
	if !cfg.VerifiesJWT() {
		return check, nil
	}

	verify, err := middleware.VerifyCredential(cfg.Auth)
	if err != nil {
		return nil, err
	}
	return func(next http.HandlerFunc) http.HandlerFunc {
		return check(verify(next))
	}, nil
}

func newServer(cfg *config.Config) (*http.Server, error) {
	db, err := config.Connect(cfg.Database, store.Models()...)
	if err != nil {
		return nil, err
	}

	timeout, err := cfg.APITimeout()
	if err != nil {
		return nil, err
	}

	h := &handlers.Handler{
		Store: store.New(db),
		API:   client.New(cfg.API.BaseURL, client.WithTimeout(timeout)),
		Cookie: auth.CookieSettings{
			Name:   cfg.Auth.CookieName,
			Domain: cfg.Env.CookieDomain(),
			Secure: cfg.Env.CookieSecure,
		},
		LoginURL:    cfg.Auth.LoginURL,
		GameCatalog: cfg.Games,
	}

	proxy, err := handlers.NewAPIProxy(cfg.API.BaseURL, cfg.Auth.CookieName, cfg.Server.AllowedOrigins)
	if err != nil {
		return nil, err
	}

	protect, err := protection(cfg)
	if err != nil {
		return nil, err
	}

	return &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           h.Routes(proxy, protect, cfg.Env),
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}
