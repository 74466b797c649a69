package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.Logger with typed field helpers.
type Logger struct {
	*zap.Logger
}

// New creates a logger with the given level and encoding ("json" or "console").
func New(level, encoding string) (*Logger, error) {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	if encoding == "console" {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	cfg.Encoding = encoding

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build zap logger: %w", err)
	}

	return &Logger{Logger: l}, nil
}

// Field creates a zap field from an arbitrary value.
func Field(key string, value interface{}) zap.Field {
	return zap.Any(key, value)
}

// ErrorField creates a zap field from an error.
func ErrorField(err error) zap.Field {
	return zap.Error(err)
}

// StringField creates a zap string field.
func StringField(key, value string) zap.Field {
	return zap.String(key, value)
}

// IntField creates a zap int field.
func IntField(key string, value int) zap.Field {
	return zap.Int(key, value)
}

// Float64Field creates a zap float64 field.
func Float64Field(key string, value float64) zap.Field {
	return zap.Float64(key, value)
}
