package logging

import (
	"fmt"
	"os"
)

// NewDefaultLogger creates a logger with default configuration using zap
func NewDefaultLogger() Logger {
	config := DefaultLogConfig()
	logger, err := NewZapLogger(config)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize default zap logger: %v", err))
	}
	return logger
}

// InitGlobalLogger initializes the global logger based solely on LOG_LEVEL
func InitGlobalLogger() {
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "INFO"
	}

	config := LogConfig{
		Level: ParseLevel(logLevel),
	}

	logger, err := NewZapLogger(config)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	SetGlobalLogger(logger)

	logger.Info("Logger initialized",
		Field{"level", config.Level.String()},
	)
}

// MustSync flushes any buffered log entries for zap loggers
// This should be called before application exit
func MustSync() {
	logger := GetGlobalLogger()
	if zapLogger, ok := logger.(*ZapAdapter); ok {
		_ = zapLogger.Sync()
	}
}

// Err creates an error field with key "error"
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}
