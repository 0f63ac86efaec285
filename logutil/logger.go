package logutil

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger configured with datetime and caller information,
// splitting output to stdout and stderr based on error level.
// Library packages default to a nop logger; binaries pass this one.
var Logger *zap.Logger

func init() {
	isErrorLevel := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapcore.ErrorLevel
	})
	isInfoLevel := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl < zapcore.ErrorLevel
	})
	stdoutWriter := zapcore.Lock(os.Stdout)
	stderrWriter := zapcore.Lock(os.Stderr)

	config := zap.NewProductionEncoderConfig()
	config.EncodeTime = zapcore.RFC3339TimeEncoder
	encoder := zapcore.NewJSONEncoder(config)

	core := zapcore.NewTee(
		zapcore.NewCore(encoder, stderrWriter, isErrorLevel),
		zapcore.NewCore(encoder, stdoutWriter, isInfoLevel),
	)
	Logger = zap.New(core, zap.AddCaller())
}
