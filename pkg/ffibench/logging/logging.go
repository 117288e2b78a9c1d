package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Logger is the subset of structured logging used by ffibench.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}

// Options configures NewWithOptions.
type Options struct {
	// Prefix is printed before every message, for example the component name.
	Prefix string
	// Level is one of debug, info, warn, error. Empty means info.
	Level string
	// Timestamps adds a time field to every record.
	Timestamps bool
}

// New returns a Logger backed by the provided charmbracelet logger. Passing nil
// writes info and above to stderr.
func New(logger *log.Logger) Logger {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.InfoLevel})
	}
	return &charmLogger{logger: logger}
}

// NewWithOptions builds a logger writing to w.
func NewWithOptions(w io.Writer, opts Options) (Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	return &charmLogger{logger: log.NewWithOptions(w, log.Options{
		Prefix:          opts.Prefix,
		Level:           level,
		ReportTimestamp: opts.Timestamps,
	})}, nil
}

// Discard returns a Logger that drops every record.
func Discard() Logger {
	return &charmLogger{logger: log.New(io.Discard)}
}

// ParseLevel maps a level name to a charmbracelet level. Empty means info.
func ParseLevel(s string) (log.Level, error) {
	if strings.TrimSpace(s) == "" {
		return log.InfoLevel, nil
	}
	level, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return 0, fmt.Errorf("logging: invalid level %q", s)
	}
	return level, nil
}

type charmLogger struct {
	logger *log.Logger
}

func (l *charmLogger) Debug(_ context.Context, msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

func (l *charmLogger) Info(_ context.Context, msg string, args ...any) {
	l.logger.Info(msg, args...)
}

func (l *charmLogger) Warn(_ context.Context, msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

func (l *charmLogger) Error(_ context.Context, msg string, args ...any) {
	l.logger.Error(msg, args...)
}

func (l *charmLogger) With(args ...any) Logger {
	return &charmLogger{logger: l.logger.With(args...)}
}
