// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/objdelta/objdelta/internal/core/ports"
)

// messager describes an error that can report its own message without the
// chain. This matches the Message() method provided by zerr.Error.
type messager interface {
	Message() string
}

var _ ports.Logger = (*Logger)(nil)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	jsonMode bool
	output   io.Writer
}

// New creates a new Logger writing pretty output to stderr.
func New() *Logger {
	handler := NewPrettyHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return &Logger{
		logger: slog.New(handler),
		output: os.Stderr,
	}
}

// SetOutput updates the logger's output destination, preserving the
// current JSON mode. A nil writer falls back to stderr.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.rebuildHandler()
}

// SetJSON switches between JSON and pretty logging.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.jsonMode = enable
	l.rebuildHandler()
}

// rebuildHandler replaces the slog handler for the current mode and
// output. Callers hold the write lock.
func (l *Logger) rebuildHandler() {
	w := l.output
	if w == nil {
		w = os.Stderr
	}

	var handler slog.Handler
	if l.jsonMode {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = NewPrettyHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	l.logger = slog.New(handler)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error. In pretty mode the zerr chain is rendered
// hierarchically; in JSON mode the error is attached as an attribute.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err)
		return
	}

	// Collect messages by walking the error chain.
	var messages []string
	current := err
	for current != nil {
		if m, ok := current.(messager); ok {
			messages = append(messages, m.Message())
			current = errors.Unwrap(current)
		} else {
			messages = append(messages, current.Error())
			break
		}
	}

	var lines []string
	for i, msg := range messages {
		switch i {
		case 0:
			lines = append(lines, "Error: "+msg)
		case 1:
			lines = append(lines, "", "  Caused by:", "    - "+msg)
		default:
			lines = append(lines, "    - "+msg)
		}
	}
	l.logger.Error(strings.Join(lines, "\n"))
}
