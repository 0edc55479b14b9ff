package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide logger. It is a no-op logger until Init is called,
// so packages may log safely from tests.
var Log = zap.NewNop()

// Init builds a JSON logger writing to stdout.
func Init(level, environment string) *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.MessageKey = "message"
	config.Level = zap.NewAtomicLevelAt(parseLevel(level))
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	if environment == "development" {
		config.Development = true
	}

	l, err := config.Build(
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
	if err != nil {
		l, _ = zap.NewProduction()
	}

	Log = l.With(zap.String("env", environment))
	return Log
}

func parseLevel(level string) zapcore.Level {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}
