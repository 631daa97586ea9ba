package logging

import (
	wailslogger "github.com/wailsapp/wails/v2/pkg/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// WailsLogger routes Wails runtime logs into zap.
type WailsLogger struct {
	log *zap.Logger
}

var _ wailslogger.Logger = (*WailsLogger)(nil)

func NewWailsLogger(log *zap.Logger) *WailsLogger {
	return &WailsLogger{log: log.Named("wails").WithOptions(zap.AddCallerSkip(1))}
}

func (l *WailsLogger) Print(message string)   { l.log.Info(message) }
func (l *WailsLogger) Trace(message string)   { l.log.Debug(message) }
func (l *WailsLogger) Debug(message string)   { l.log.Debug(message) }
func (l *WailsLogger) Info(message string)    { l.log.Info(message) }
func (l *WailsLogger) Warning(message string) { l.log.Warn(message) }
func (l *WailsLogger) Error(message string)   { l.log.Error(message) }

// Fatal logs at error level. Wails exits the process itself after calling it.
func (l *WailsLogger) Fatal(message string) { l.log.Error(message) }

// WailsLevel maps a zap level to the Wails runtime log level.
func WailsLevel(level zapcore.Level) wailslogger.LogLevel {
	switch {
	case level <= zapcore.DebugLevel:
		return wailslogger.DEBUG
	case level == zapcore.InfoLevel:
		return wailslogger.INFO
	case level == zapcore.WarnLevel:
		return wailslogger.WARNING
	default:
		return wailslogger.ERROR
	}
}
