package log

import (
	"fmt"

	"github.com/on-the-ground/effect_ive_store/shared/helper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel defines the severity level for log messages.
type LogLevel string

const (
	// LogInfo is used for general informational messages.
	LogInfo LogLevel = "info"

	// LogWarn is used for potentially harmful situations.
	LogWarn LogLevel = "warn"

	// LogError is used for error events that might still allow the application to continue running.
	LogError LogLevel = "error"

	// LogDebug is used for debugging messages with detailed internal information.
	LogDebug LogLevel = "debug"
)

// ParseLevel converts a configured level name into a LogLevel.
func ParseLevel(s string) (LogLevel, error) {
	switch lvl := LogLevel(s); lvl {
	case LogInfo, LogWarn, LogError, LogDebug:
		return lvl, nil
	default:
		return "", fmt.Errorf("unknown log level %q", s)
	}
}

func (l LogLevel) zapLevel() zapcore.Level {
	switch l {
	case LogDebug:
		return zap.DebugLevel
	case LogWarn:
		return zap.WarnLevel
	case LogError:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// Diagnostics routes the dispatch layer's human-readable diagnostics
// (match failures, registration lint) to a zap logger at a fixed level.
type Diagnostics struct {
	logger *zap.Logger
	level  LogLevel
}

// NewDiagnostics returns a sink writing to logger. A nil logger discards everything.
func NewDiagnostics(logger *zap.Logger, level LogLevel) Diagnostics {
	if logger == nil {
		logger = zap.NewNop()
	}
	return Diagnostics{logger: logger, level: level}
}

func (d Diagnostics) Logger() *zap.Logger {
	if d.logger == nil {
		return zap.NewNop()
	}
	return d.logger
}

// With returns a sink whose entries carry fields in addition to their own.
func (d Diagnostics) With(fields ...zap.Field) Diagnostics {
	return Diagnostics{logger: d.Logger().With(fields...), level: d.level}
}

// Emit writes msg with fields at the sink's level.
func (d Diagnostics) Emit(msg string, fields map[string]interface{}) {
	logger := d.Logger()
	zfields := make([]zap.Field, 0, len(fields))
	for _, k := range helper.SortedKeys(fields) {
		zfields = append(zfields, zap.Any(k, fields[k]))
	}

	switch d.level {
	case LogInfo:
		logger.Info(msg, zfields...)
	case LogWarn:
		logger.Warn(msg, zfields...)
	case LogError:
		logger.Error(msg, zfields...)
	case LogDebug:
		logger.Debug(msg, zfields...)
	default:
		logger.Info(msg, zfields...)
	}
}
