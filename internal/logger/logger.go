// Package logger builds the application's structured logger.
package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/matchops/settlement-report/internal/config"
)

// New returns a zap logger configured for the runtime environment.
// Development gets human-readable console output; production gets JSON.
func New(cfg *config.Config) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if err := level.Set(strings.ToLower(cfg.LogLevel)); err != nil {
		level = zapcore.InfoLevel
	}

	zc := zap.NewProductionConfig()
	if cfg.IsDevelopment() {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	// Handlers attach stack traces explicitly where they matter.
	zc.DisableStacktrace = true

	return zc.Build()
}
