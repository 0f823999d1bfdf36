package log

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var level = zap.NewAtomicLevelAt(zap.InfoLevel)
var logger = newLogger()

func newLogger() *zap.SugaredLogger {
	encoder := zap.NewProductionEncoderConfig()
	encoder.EncodeTime = zapcore.TimeEncoderOfLayout("2006/01/02 15:04:05")
	encoder.EncodeLevel = zapcore.CapitalLevelEncoder
	encoder.CallerKey = ""

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoder), zapcore.Lock(os.Stderr), level)

	return zap.New(core).Sugar()
}

func SetDebug(debug bool) {
	if debug {
		level.SetLevel(zap.DebugLevel)
	}
}

// SetLevel sets the minimum logged level from one of debug, info, warn or error.
func SetLevel(l string) error {
	return level.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(l))))
}

func Debugf(format string, args ...any) {
	logger.Debugf(format, args...)
}

func Infof(format string, args ...any) {
	logger.Infof(format, args...)
}

func Warnf(format string, args ...any) {
	logger.Warnf(format, args...)
}

func Errorf(format string, args ...any) {
	logger.Errorf(format, args...)
}

// Request logs an HTTP request with structured fields.
func Request(msg string, keysAndValues ...any) {
	logger.Infow(msg, keysAndValues...)
}

func Sync() {
	logger.Sync()
}
