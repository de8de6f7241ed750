// Package logger builds the zap logger used by the command line tools.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger writing debug/info entries to stdout and warnings and
// above to stderr. Debug entries are only emitted when debug is true.
func New(debug bool) *zap.Logger {
	return zap.New(newCore(debug, zapcore.Lock(os.Stdout), zapcore.Lock(os.Stderr)))
}

func newCore(debug bool, stdout, stderr zapcore.WriteSyncer) zapcore.Core {
	encoderConfig := zap.NewProductionEncoderConfig()
	if debug {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	lowLevel := zap.LevelEnablerFunc(func(level zapcore.Level) bool {
		if debug && level == zapcore.DebugLevel {
			return true
		}
		return level == zapcore.InfoLevel
	})
	highLevel := zap.LevelEnablerFunc(func(level zapcore.Level) bool {
		return level >= zapcore.WarnLevel
	})

	return zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), stdout, lowLevel),
		zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), stderr, highLevel),
	)
}
