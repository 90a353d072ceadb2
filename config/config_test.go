package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "ALLOWED_ORIGINS", "API_BASE_URL", "DB_URL", "LOGIN_URL",
		"JWT_SECRET_KEY", "JWT_ISSUER", "JWT_AUDIENCE", "LOG_LEVEL", "PRETTY_LOG", "COOKIE_DOMAIN",
	} {
		t.Setenv(key, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "Authorization", cfg.Auth.CookieName)
	assert.Equal(t, "http://127.0.0.1:8000", cfg.API.BaseURL)
	assert.NotEmpty(t, cfg.Games)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: "9090"
api:
  base_url: https://api.example.com
  timeout: 3s
games: [quiz]
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "https://api.example.com", cfg.API.BaseURL)
	assert.Equal(t, []string{"quiz"}, cfg.Games)
	assert.Equal(t, "Authorization", cfg.Auth.CookieName)

	timeout, err := cfg.APITimeout()
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, timeout)
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidTimeout(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api:\n  timeout: soon\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("server and api", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PORT", "8081")
		t.Setenv("API_BASE_URL", "http://backend:8000")
		t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")

		cfg, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, "8081", cfg.Server.Port)
		assert.Equal(t, "http://backend:8000", cfg.API.BaseURL)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	})

	t.Run("jwt verification needs all three", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("JWT_SECRET_KEY", "s")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.False(t, cfg.VerifiesJWT())

		t.Setenv("JWT_ISSUER", "https://issuer.example/")
		t.Setenv("JWT_AUDIENCE", "studysets")
		cfg, err = Load("")
		require.NoError(t, err)
		assert.True(t, cfg.VerifiesJWT())
	})

	t.Run("cookie domain switches to production", func(t *testing.T) {
		clearEnv(t)
		cfg, err := Load("")
		require.NoError(t, err)
		assert.True(t, cfg.Env.IsDevelopment)
		assert.False(t, cfg.Env.CookieSecure)

		t.Setenv("COOKIE_DOMAIN", ".example.com")
		cfg, err = Load("")
		require.NoError(t, err)
		assert.False(t, cfg.Env.IsDevelopment)
		assert.True(t, cfg.Env.CookieSecure)
		assert.Equal(t, ".example.com", cfg.Env.Domain)
	})
}

func TestSetupLogger(t *testing.T) {
	assert.NoError(t, SetupLogger(LogConfig{Level: "debug"}))
	assert.Error(t, SetupLogger(LogConfig{Level: "loud"}))
}

func TestConnect_SQLite(t *testing.T) {
	type row struct {
		ID   uint
		Name string
	}

	db, err := Connect(DatabaseConfig{URL: "file:" + t.Name() + "?mode=memory&cache=shared"}, &row{})
	require.NoError(t, err)

	require.NoError(t, db.Create(&row{Name: "x"}).Error)
	var got row
	require.NoError(t, db.First(&got).Error)
	assert.Equal(t, "x", got.Name)
}
