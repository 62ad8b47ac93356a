package logger

import (
	"go.uber.org/zap"
)

// WrappedLogger is a wrapper to call logging functions in case a logger was passed.
type WrappedLogger struct {
	logger *zap.Logger
}

// NewWrappedLogger creates a new WrappedLogger.
func NewWrappedLogger(logger *zap.Logger) *WrappedLogger {
	return &WrappedLogger{logger: logger}
}

// LogDebug logs a message with the given fields at debug level.
func (l *WrappedLogger) LogDebug(msg string, fields ...zap.Field) {
	if l.logger != nil {
		l.logger.Debug(msg, fields...)
	}
}

// LogInfo logs a message with the given fields at info level.
func (l *WrappedLogger) LogInfo(msg string, fields ...zap.Field) {
	if l.logger != nil {
		l.logger.Info(msg, fields...)
	}
}

// LogWarn logs a message with the given fields at warn level.
func (l *WrappedLogger) LogWarn(msg string, fields ...zap.Field) {
	if l.logger != nil {
		l.logger.Warn(msg, fields...)
	}
}

// LogError logs a message with the given fields at error level.
func (l *WrappedLogger) LogError(msg string, fields ...zap.Field) {
	if l.logger != nil {
		l.logger.Error(msg, fields...)
	}
}
