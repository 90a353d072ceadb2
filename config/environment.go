package config

import "os"

type Environment struct {
	IsDevelopment bool
	Domain        string
	CookieSecure  bool
}

// DetectEnvironment derives cookie settings from COOKIE_DOMAIN. No domain
// means local development over plain HTTP.
func DetectEnvironment() Environment {
	domain := os.Getenv("COOKIE_DOMAIN")

	isDev := domain == ""
	if isDev {
		domain = "localhost"
	}

	return Environment{
		IsDevelopment: isDev,
		Domain:        domain,
		CookieSecure:  !isDev,
	}
}

// CookieDomain is the Domain attribute for cookies. Development cookies are
// host-only so they work on both localhost and 127.0.0.1.
func (e Environment) CookieDomain() string {
	if e.IsDevelopment {
		return ""
	}
	return e.Domain
}
