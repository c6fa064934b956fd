package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process-wide logger. Every component receives it at
// construction; the caller owns its lifecycle and must Sync() at run end.
// When logFile is non-empty, entries are appended to that file in addition
// to stderr.
func New(logFile string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.MessageKey = "message"
	config.EncoderConfig.LevelKey = "level"

	if logFile != "" {
		config.OutputPaths = []string{logFile, "stderr"}
		config.ErrorOutputPaths = []string{logFile, "stderr"}
	}

	return config.Build()
}
