// Package logger wraps charmbracelet/log with the request-scoped helpers the
// services use. Init configures the process-wide backend once at startup.
package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

type Options struct {
	Level  string
	Format string // "text" or "json"
	Output io.Writer
}

var (
	mu   sync.RWMutex
	base = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           log.InfoLevel,
	})
)

// Init replaces the process-wide logger. Unknown levels fall back to info.
func Init(opts Options) {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	level, err := log.ParseLevel(strings.ToLower(opts.Level))
	if err != nil {
		level = log.InfoLevel
	}
	lo := log.Options{
		ReportTimestamp: true,
		Level:           level,
	}
	if strings.EqualFold(opts.Format, "json") {
		lo.Formatter = log.JSONFormatter
	}

	mu.Lock()
	base = log.NewWithOptions(out, lo)
	mu.Unlock()
}

func Base() *log.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

type requestIDKey struct{}

func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, rid)
}

func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if rid, ok := ctx.Value(requestIDKey{}).(string); ok {
		return rid
	}
	return ""
}

// Logger provides structured logging for one request
type Logger struct {
	l *log.Logger
}

// New creates a logger carrying the request id found in ctx
func New(ctx context.Context) *Logger {
	rid := RequestID(ctx)
	if rid == "" {
		rid = "unknown"
	}
	return &Logger{l: Base().With("request_id", rid)}
}

func (l *Logger) LogError(operation string, err error) {
	l.l.Error("operation failed", "operation", operation, "error", err)
}

func (l *Logger) LogErrorf(operation string, format string, args ...any) {
	l.l.With("operation", operation).Errorf(format, args...)
}

func (l *Logger) LogInfo(operation string, message string) {
	l.l.Info(message, "operation", operation)
}

func (l *Logger) LogInfof(operation string, format string, args ...any) {
	l.l.With("operation", operation).Infof(format, args...)
}

func (l *Logger) LogWarn(operation string, message string) {
	l.l.Warn(message, "operation", operation)
}

func (l *Logger) LogWarnf(operation string, format string, args ...any) {
	l.l.With("operation", operation).Warnf(format, args...)
}

func (l *Logger) LogDebugf(operation string, format string, args ...any) {
	l.l.With("operation", operation).Debugf(format, args...)
}
