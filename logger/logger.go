package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Logger wraps zerolog.Logger with a component name.
type Logger struct {
	logger zerolog.Logger
	name   string
}

// New creates a logger from configuration. Invalid levels fall back to info.
func New(cfg Config, name string) *Logger {
	cfg.ApplyDefaults()

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = zerolog.InfoLevel
	}

	out := cfg.Writer
	if out == nil {
		out = outputWriter(cfg.Output)
	}
	if strings.ToLower(cfg.Format) == FormatConsole {
		out = zerolog.ConsoleWriter{Out: out, NoColor: cfg.NoColor, TimeFormat: "15:04:05"}
	}

	zc := zerolog.New(out).Level(level).With()
	if name != "" {
		zc = zc.Str(FieldService, name)
	}
	if cfg.Timestamp {
		zc = zc.Timestamp()
	}
	if cfg.Caller {
		zc = zc.Caller()
	}

	return &Logger{logger: zc.Logger(), name: name}
}

// NewDefault creates a JSON logger at info level writing to stderr.
func NewDefault(name string) *Logger {
	return New(Config{Timestamp: true}, name)
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{logger: zerolog.Nop()}
}

// WithComponent returns a logger tagged with a component name.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{
		logger: l.logger.With().Str(FieldComponent, name).Logger(),
		name:   l.name,
	}
}

// WithFields returns a logger with additional fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	zc := l.logger.With()
	for k, v := range fields {
		zc = zc.Interface(k, v)
	}
	return &Logger{logger: zc.Logger(), name: l.name}
}

// WithError returns a logger with an error field.
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		logger: l.logger.With().Err(err).Logger(),
		name:   l.name,
	}
}

// Zerolog returns the underlying zerolog.Logger.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.logger
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, fields ...map[string]any) {
	emit(l.logger.Debug(), msg, fields)
}

// Info logs an info message.
func (l *Logger) Info(msg string, fields ...map[string]any) {
	emit(l.logger.Info(), msg, fields)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, fields ...map[string]any) {
	emit(l.logger.Warn(), msg, fields)
}

// Error logs an error message.
func (l *Logger) Error(msg string, fields ...map[string]any) {
	emit(l.logger.Error(), msg, fields)
}

func emit(event *zerolog.Event, msg string, fields []map[string]any) {
	if event == nil {
		return
	}
	for _, fm := range fields {
		for k, v := range fm {
			event.Interface(k, v)
		}
	}
	event.Msg(msg)
}

func outputWriter(output string) io.Writer {
	if strings.ToLower(output) == "stdout" {
		return os.Stdout
	}
	return os.Stderr
}
