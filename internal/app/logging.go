package app

import (
	"io"
	"log/slog"
	"maps"
	"os"
	"strings"
)

// LogLevel represents the severity level of a log message.
type LogLevel int

const (
	// LogLevelDebug is for detailed debugging information.
	LogLevelDebug LogLevel = iota
	// LogLevelInfo is for general informational messages.
	LogLevelInfo
	// LogLevelWarn is for warning messages.
	LogLevelWarn
	// LogLevelError is for error messages.
	LogLevelError
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l LogLevel) slogLevel() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLogLevel parses a string into a LogLevel. Unknown values yield
// LogLevelInfo.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(s) {
	case "debug":
		return LogLevelDebug
	case "warn", "warning":
		return LogLevelWarn
	case "error":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

// Logger is the application logger. It writes key/value records through
// log/slog's text handler and carries fields into derived loggers.
type Logger struct {
	level  *slog.LevelVar
	slog   *slog.Logger
	fields map[string]any
}

// LoggerConfig configures the logger.
type LoggerConfig struct {
	// Level is the minimum log level to output.
	Level LogLevel
	// Output is where logs are written. Defaults to os.Stderr.
	Output io.Writer
	// Prefix is recorded as the "app" attribute of every record.
	Prefix string
}

// DefaultLoggerConfig returns the default logger configuration.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Level:  LogLevelInfo,
		Output: os.Stderr,
		Prefix: "tessera",
	}
}

// NewLogger creates a new logger with the given configuration.
func NewLogger(cfg LoggerConfig) *Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	level := new(slog.LevelVar)
	level.Set(cfg.Level.slogLevel())

	logger := slog.New(slog.NewTextHandler(cfg.Output, &slog.HandlerOptions{Level: level}))
	if cfg.Prefix != "" {
		logger = logger.With("app", cfg.Prefix)
	}
	return &Logger{
		level:  level,
		slog:   logger,
		fields: make(map[string]any),
	}
}

// NullLogger is a logger that discards all output.
var NullLogger = NewLogger(LoggerConfig{Output: io.Discard})

// WithField returns a new logger with the given field added.
func (l *Logger) WithField(key string, value any) *Logger {
	return l.WithFields(map[string]any{key: value})
}

// WithFields returns a new logger with the given fields added.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	newFields := maps.Clone(l.fields)
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		newFields[k] = v
		args = append(args, k, v)
	}
	return &Logger{
		level:  l.level,
		slog:   l.slog.With(args...),
		fields: newFields,
	}
}

// WithComponent returns a new logger with the component field set.
func (l *Logger) WithComponent(component string) *Logger {
	return l.WithField("component", component)
}

// Fields returns a copy of the fields attached to the logger.
func (l *Logger) Fields() map[string]any {
	return maps.Clone(l.fields)
}

// SetLevel sets the minimum log level. Derived loggers share the level.
func (l *Logger) SetLevel(level LogLevel) {
	l.level.Set(level.slogLevel())
}

// Enabled reports whether messages at level are written.
func (l *Logger) Enabled(level LogLevel) bool {
	return level.slogLevel() >= l.level.Level()
}

// Slog returns the underlying slog logger, for packages that take one.
func (l *Logger) Slog() *slog.Logger {
	return l.slog
}

// Debug logs a debug message with optional key/value pairs.
func (l *Logger) Debug(msg string, args ...any) {
	l.slog.Debug(msg, args...)
}

// Info logs an info message with optional key/value pairs.
func (l *Logger) Info(msg string, args ...any) {
	l.slog.Info(msg, args...)
}

// Warn logs a warning message with optional key/value pairs.
func (l *Logger) Warn(msg string, args ...any) {
	l.slog.Warn(msg, args...)
}

// Error logs an error message with optional key/value pairs.
func (l *Logger) Error(msg string, args ...any) {
	l.slog.Error(msg, args...)
}
