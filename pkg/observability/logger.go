package observability

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewAtomicLevel parses a log level name into a level that can be changed at runtime
func NewAtomicLevel(level string) (zap.AtomicLevel, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return zap.AtomicLevel{}, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return zap.NewAtomicLevelAt(lvl), nil
}

// NewLogger builds the production logger in production and the development
// logger everywhere else, both driven by level.
func NewLogger(environment string, level zap.AtomicLevel) (*zap.Logger, error) {
	var cfg zap.Config
	if environment == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = level

	return cfg.Build()
}
