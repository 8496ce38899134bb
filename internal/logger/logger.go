// Package logger builds the zap logger used by the command line tool.
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config contains configuration for the logger
type Config struct {
	Debug     bool   // Enable debug level logging
	LogFormat string // "json" or "human"
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		Debug:     false,
		LogFormat: "human",
	}
}

// New builds a logger writing to stderr, so it never mixes with command
// output on stdout.
func New(config Config) (*zap.Logger, error) {
	var zapConfig zap.Config

	switch config.LogFormat {
	case "json":
		zapConfig = zap.NewProductionConfig()
	case "human", "":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		// Development config defaults to debug.
		zapConfig.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	default:
		return nil, fmt.Errorf("unknown log format %q: want json or human", config.LogFormat)
	}

	zapConfig.OutputPaths = []string{"stderr"}
	zapConfig.ErrorOutputPaths = []string{"stderr"}

	if config.Debug {
		zapConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
