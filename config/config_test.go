package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Port)
	assert.Equal(t, "sqlite://./sql_app.db", cfg.DatabaseURL)
	assert.NotEmpty(t, cfg.AllowedOrigins)
}

func TestNewConfigEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "sqlite:///tmp/other.db")
	t.Setenv("ALLOWED_ORIGINS", "https://shop.example, https://admin.example")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Port)
	assert.Equal(t, "sqlite:///tmp/other.db", cfg.DatabaseURL)
	assert.Equal(t, []string{"https://shop.example", "https://admin.example"}, cfg.AllowedOrigins)
}

func TestOriginAllowed(t *testing.T) {
	cfg := &Config{AllowedOrigins: []string{"http://localhost:3000"}}

	assert.True(t, cfg.OriginAllowed("http://localhost:3000"))
	assert.False(t, cfg.OriginAllowed("http://evil.example"))

	cfg.AllowedOrigins = []string{"*"}
	assert.True(t, cfg.OriginAllowed("http://anywhere.example"))
}
