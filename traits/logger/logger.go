package logger

import (
	"os"

	"go.uber.org/zap"
)

// NewLogger creates the application logger. Production config by default,
// human-readable development config when APP_ENV=development.
func NewLogger() (*zap.Logger, error) {
	if os.Getenv("APP_ENV") == "development" {
		return zap.NewDevelopment()
	}

	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true
	return cfg.Build()
}
