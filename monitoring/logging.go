package monitoring

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

// Logger receives structural events from a matrix.
type Logger interface {
	// Enabled reports whether events at level would be written. Callers use it
	// to skip building details for discarded events.
	Enabled(level LogLevel) bool
	Log(level LogLevel, eventType string, message string, details map[string]interface{})
}

type logger struct {
	component string
	z         *zap.Logger
}

// NewLogger returns a Logger writing through z, tagging every entry with component.
// A nil z falls back to the process-wide zap.L().
func NewLogger(component string, z *zap.Logger) Logger {
	if z == nil {
		z = zap.L()
	}
	return &logger{
		component: component,
		z:         z.With(zap.String("component", component)),
	}
}

func (l *logger) Enabled(level LogLevel) bool {
	return l.z.Core().Enabled(level.zapLevel())
}

func (l *logger) Log(level LogLevel, eventType string, message string, details map[string]interface{}) {
	ce := l.z.Check(level.zapLevel(), message)
	if ce == nil {
		return
	}

	fields := make([]zap.Field, 0, len(details)+1)
	fields = append(fields, zap.String("event_type", eventType))
	for k, v := range details {
		fields = append(fields, zap.Any(k, v))
	}
	ce.Write(fields...)
}

func (l LogLevel) zapLevel() zapcore.Level {
	switch l {
	case DEBUG:
		return zapcore.DebugLevel
	case INFO:
		return zapcore.InfoLevel
	case WARN:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

type nopLogger struct{}

// NopLogger returns a Logger that discards everything.
func NopLogger() Logger { return nopLogger{} }

func (nopLogger) Enabled(LogLevel) bool { return false }
func (nopLogger) Log(LogLevel, string, string, map[string]interface{}) {}
