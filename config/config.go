package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all studyset-web configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	API      APIConfig      `yaml:"api"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`

	// Games offered on a study set card.
	Games []string `yaml:"games"`

	Env Environment `yaml:"-"`
}

type ServerConfig struct {
	Port           string   `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// APIConfig points at the study set backend.
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout string `yaml:"timeout"`
}

// DatabaseConfig selects where drafts and preferences are kept. A postgres://
// URL selects postgres, anything else is a sqlite path.
type DatabaseConfig struct {
	URL string `yaml:"url"`
}

type AuthConfig struct {
	CookieName string   `yaml:"cookie_name"`
	LoginURL   string   `yaml:"login_url"`
	JWTSecret  string   `yaml:"jwt_secret"`
	Issuer     string   `yaml:"issuer"`
	Audience   []string `yaml:"audience"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

// DefaultConfig returns a config for local development.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           "3000",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		API: APIConfig{
			BaseURL: "http://127.0.0.1:8000",
			Timeout: "15s",
		},
		Database: DatabaseConfig{
			URL: "studyset-web.db",
		},
		Auth: AuthConfig{
			CookieName: "Authorization",
		},
		Log: LogConfig{
			Level: "info",
		},
		Games: []string{"flashcards", "match", "quiz", "gravity"},
	}
}

// LoadDotEnv loads .env unless running on Railway, where the platform
// injects the environment.
func LoadDotEnv() error {
	if os.Getenv("RAILWAY_ENVIRONMENT_NAME") != "" {
		return nil
	}
	return godotenv.Load()
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()
	cfg.Env = DetectEnvironment()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		c.Server.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("API_BASE_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("DB_URL"); v != "" {
		c.Database.URL = v
	}
	if v := os.Getenv("LOGIN_URL"); v != "" {
		c.Auth.LoginURL = v
	}
	if v := os.Getenv("JWT_SECRET_KEY"); v != "" {
		c.Auth.JWTSecret = v
	}
	if v := os.Getenv("JWT_ISSUER"); v != "" {
		c.Auth.Issuer = v
	}
	if v := os.Getenv("JWT_AUDIENCE"); v != "" {
		c.Auth.Audience = splitList(v)
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if os.Getenv("PRETTY_LOG") == "true" {
		c.Log.Pretty = true
	}
}

// Validate checks values that would otherwise fail at first use.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("config: api.base_url is required")
	}
	if c.Auth.CookieName == "" {
		return fmt.Errorf("config: auth.cookie_name is required")
	}
	if _, err := c.APITimeout(); err != nil {
		return err
	}
	return nil
}

// APITimeout parses api.timeout.
func (c *Config) APITimeout() (time.Duration, error) {
	if c.API.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.API.Timeout)
	if err != nil {
		return 0, fmt.Errorf("config: api.timeout: %w", err)
	}
	return d, nil
}

// VerifiesJWT reports whether enough is configured to check credential
// signatures locally instead of leaving that to the backend.
func (c *Config) VerifiesJWT() bool {
	return c.Auth.JWTSecret != "" && c.Auth.Issuer != "" && len(c.Auth.Audience) > 0
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
