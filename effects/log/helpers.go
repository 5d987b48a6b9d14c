package log

import (
	"fmt"
	"os"

	"github.com/on-the-ground/effect_ive_store/effects/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the registry logger from configuration:
// json encoding uses zap's production setup, console its development setup.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	lvl, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var zcfg zap.Config
	switch cfg.Encoding {
	case "json", "":
		zcfg = zap.NewProductionConfig()
	case "console":
		zcfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("unknown log encoding %q", cfg.Encoding)
	}
	zcfg.Level = zap.NewAtomicLevelAt(lvl.zapLevel())

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.Named("effects"), nil
}

// NewTestLogger writes every level to stdout with the console encoder.
func NewTestLogger() *zap.Logger {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stdout),
		zap.DebugLevel,
	)
	return zap.New(consoleCore).Named("effects")
}
