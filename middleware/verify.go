package middleware

import (
	"context"
	"net/http"
	"time"

	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/rs/zerolog/log"

	"github.com/andrewpaige1/studyset-web/auth"
	"github.com/andrewpaige1/studyset-web/config"
	"github.com/andrewpaige1/studyset-web/models"
)

// CustomClaims are the non-registered claims the backend puts in its tokens.
type CustomClaims struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

func (c *CustomClaims) Validate(ctx context.Context) error {
	return nil
}

// VerifyCredential checks the credential's signature, issuer and audience
// before a page makes backend calls with it. Failures are sent to logout. The
// guest credential is not a JWT and passes through.
func VerifyCredential(cfg config.AuthConfig) (func(http.HandlerFunc) http.HandlerFunc, error) {
	secret := []byte(cfg.JWTSecret)
	keyFunc := func(ctx context.Context) (interface{}, error) {
		return secret, nil
	}

	jwtValidator, err := validator.New(
		keyFunc,
		validator.HS256,
		cfg.Issuer,
		cfg.Audience,
		validator.WithCustomClaims(func() validator.CustomClaims {
			return &CustomClaims{}
		}),
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		return nil, err
	}

	errorHandler := func(w http.ResponseWriter, r *http.Request, err error) {
		log.Warn().Err(err).Str("path", r.URL.Path).Msg("VerifyCredential: rejected credential")
		http.Redirect(w, r, LogoutPath, http.StatusSeeOther)
	}

	extractor := func(r *http.Request) (string, error) {
		return auth.RawToken(auth.Credential(r, cfg.CookieName)), nil
	}

	mw := jwtmiddleware.New(
		jwtValidator.ValidateToken,
		jwtmiddleware.WithTokenExtractor(extractor),
		jwtmiddleware.WithErrorHandler(errorHandler),
	)

	return func(next http.HandlerFunc) http.HandlerFunc {
		checked := mw.CheckJWT(next)
		return func(w http.ResponseWriter, r *http.Request) {
			if auth.Credential(r, cfg.CookieName) == models.GuestToken {
				next.ServeHTTP(w, r)
				return
			}
			checked.ServeHTTP(w, r)
		}
	}, nil
}
