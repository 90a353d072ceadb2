package middleware

import "net/http"

var securityHeaders = map[string]string{
	"X-XSS-Protection":       "0",
	"X-Frame-Options":        "DENY",
	"X-Content-Type-Options": "nosniff",
	"Permissions-Policy":     "accelerometer=(), camera=(), geolocation=(), gyroscope=(), magnetometer=(), microphone=(), payment=(), usb=(), interest-cohort=()",
}

// SecurityHeaders sets the same hardening headers on every response.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for k, v := range securityHeaders {
			w.Header().Set(k, v)
		}
		next.ServeHTTP(w, r)
	})
}
