// config/config.go
package config

import (
	"os"
	"strings"
)

// Config contains application configuration parameters
type Config struct {
	Port            string   `json:"port"`
	DatabaseURL     string   `json:"database_url"`
	AllowedOrigins  []string `json:"allowed_origins"`
	Env             string   `json:"env"`
	ShutdownTimeout int      `json:"shutdown_timeout_seconds"`
}

// NewConfig creates and returns a new configuration instance
func NewConfig() (*Config, error) {
	cfg := &Config{
		Port:        ":8080",
		DatabaseURL: "sqlite://./sql_app.db",
		AllowedOrigins: []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
		},
		Env:             "development",
		ShutdownTimeout: 10,
	}

	// Override with environment variables if set
	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = ":" + port
	}
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.DatabaseURL = dbURL
	}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = cfg.AllowedOrigins[:0]
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}
	if env := os.Getenv("APP_ENV"); env != "" {
		cfg.Env = env
	}

	return cfg, nil
}

// OriginAllowed reports whether the given Origin header value may access the API.
func (c *Config) OriginAllowed(origin string) bool {
	for _, o := range c.AllowedOrigins {
		if o == origin || o == "*" {
			return true
		}
	}
	return false
}
