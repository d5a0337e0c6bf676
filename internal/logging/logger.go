// Package logging builds the zap logger shared by the CLI, the watcher and
// the MCP server. Output goes to stderr so stdout stays clean for command
// output and JSON-RPC traffic.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a JSON logger at the given level ("debug", "info", "warn",
// "error") writing to stderr. Unknown levels fall back to warn.
func New(level string) (*zap.Logger, error) {
	return build(level, "stderr")
}

// NewFile is New writing to the file at path instead, appending to it.
func NewFile(level, path string) (*zap.Logger, error) {
	return build(level, path)
}

func build(level, sink string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.WarnLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapLevel)
	config.Sampling = nil
	config.OutputPaths = []string{sink}
	config.ErrorOutputPaths = []string{"stderr"}
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.MessageKey = "message"
	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.CallerKey = "caller"

	return config.Build()
}

// Level picks the effective level: verbose forces debug, otherwise the
// configured level is used.
func Level(configured string, verbose bool) string {
	if verbose {
		return "debug"
	}
	if configured == "" {
		return "warn"
	}
	return configured
}
