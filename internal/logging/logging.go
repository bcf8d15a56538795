package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger: JSON in prod, console in dev.
func New(level string, prod bool) (*zap.Logger, error) {
	lvl := zapcore.InfoLevel
	if level == "debug" {
		lvl = zapcore.DebugLevel
	}

	var cfg zap.Config
	if prod {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
