package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieSettings controls how the credential cookie is written.
type CookieSettings struct {
	Name   string
	Domain string
	Secure bool
}

// HeaderValue turns a stored credential into an Authorization header value.
// Values that already carry a scheme are passed through.
func HeaderValue(token string) string {
	if strings.Contains(token, " ") {
		return token
	}
	return "Bearer " + token
}

// Credential returns the credential cookie value, or "" if it is absent.
func Credential(r *http.Request, name string) string {
	cookie, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// SetCredential stores token in the credential cookie.
func SetCredential(w http.ResponseWriter, s CookieSettings, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.Name,
		Value:    token,
		Path:     "/",
		Domain:   s.Domain,
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400,
	})
}

// ClearCredential removes the credential cookie.
func ClearCredential(w http.ResponseWriter, s CookieSettings) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.Name,
		Value:    "",
		Path:     "/",
		Domain:   s.Domain,
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// RawToken strips an auth scheme such as "Bearer " from token.
func RawToken(token string) string {
	if _, after, ok := strings.Cut(token, " "); ok {
		return after
	}
	return token
}

// Expired reports whether token is a JWT whose exp claim has passed. Opaque
// tokens, including the guest token, are never considered expired here; the
// backend decides about those.
func Expired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(RawToken(token), claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !exp.After(now)
}

// CreateToken mints an HS256 token for subject. It is used for local
// development against a backend that shares secret.
func CreateToken(subject string, secret []byte, ttl time.Duration) (string, error) {
	if len(secret) == 0 {
		return "", errors.New("auth: JWT secret key not set")
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256,
		jwt.MapClaims{
			"sub": subject,
			"iat": now.Unix(),
			"exp": now.Add(ttl).Unix(),
		})

	tokenString, err := token.SignedString(secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// VerifyToken checks an HS256 signature and the standard time claims.
func VerifyToken(tokenString string, secret []byte) error {
	if len(secret) == 0 {
		return fmt.Errorf("auth: JWT secret key not set")
	}

	token, err := jwt.Parse(RawToken(tokenString), func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		return err
	}

	if !token.Valid {
		return fmt.Errorf("invalid token")
	}

	return nil
}
