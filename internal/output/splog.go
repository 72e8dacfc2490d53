// Package output provides gitstack's console and file logging.
package output

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// simpleHandler is an slog handler that writes bare messages to the console,
// without timestamps or level prefixes.
type simpleHandler struct {
	writer    io.Writer
	debugMode bool
	quiet     *bool
}

func (h *simpleHandler) Enabled(_ context.Context, level slog.Level) bool {
	if level == slog.LevelDebug {
		return h.debugMode
	}
	return true
}

func (h *simpleHandler) Handle(_ context.Context, record slog.Record) error {
	if *h.quiet {
		return nil
	}
	_, err := fmt.Fprintln(h.writer, record.Message)
	return err
}

func (h *simpleHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *simpleHandler) WithGroup(_ string) slog.Handler {
	return h
}

// multiHandler fans out log records to multiple handlers
type multiHandler struct {
	handlers []slog.Handler
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithAttrs(attrs)
	}
	return &multiHandler{handlers: newHandlers}
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithGroup(name)
	}
	return &multiHandler{handlers: newHandlers}
}

// Splog provides structured logging and user-facing output
type Splog struct {
	logger    *slog.Logger
	writer    io.Writer
	logWriter io.WriteCloser
	quiet     bool
}

// NewSplog creates a splog instance with console-only logging.
// Debug messages are enabled when the DEBUG environment variable is set.
func NewSplog() *Splog {
	splog, _ := NewSplogWithFile("")
	return splog
}

// NewSplogWithFile creates a splog instance that also writes a timestamped
// debug log to the given file, rotated by lumberjack.
func NewSplogWithFile(logFilePath string) (*Splog, error) {
	splog := &Splog{
		writer: os.Stdout,
	}

	consoleHandler := &simpleHandler{
		writer:    splog.writer,
		debugMode: os.Getenv("DEBUG") != "",
		quiet:     &splog.quiet,
	}

	handlers := []slog.Handler{consoleHandler}

	if logFilePath != "" {
		if err := os.MkdirAll(filepath.Dir(logFilePath), 0750); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		fileWriter := &lumberjack.Logger{
			Filename:   logFilePath,
			MaxSize:    1, // megabytes
			MaxBackups: 2,
			MaxAge:     30, // days
		}
		splog.logWriter = fileWriter

		fileHandler := slog.NewTextHandler(fileWriter, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
		handlers = append(handlers, fileHandler)
	}

	splog.logger = slog.New(&multiHandler{handlers: handlers})
	return splog, nil
}

// SetQuiet suppresses all console output when set.
func (s *Splog) SetQuiet(quiet bool) {
	s.quiet = quiet
}

// SetWriter redirects console output, used by tests to capture it.
func (s *Splog) SetWriter(w io.Writer) {
	s.writer = w
	consoleHandler := &simpleHandler{
		writer:    w,
		debugMode: os.Getenv("DEBUG") != "",
		quiet:     &s.quiet,
	}
	s.logger = slog.New(&multiHandler{handlers: []slog.Handler{consoleHandler}})
}

// Close flushes and closes the file log, if any.
func (s *Splog) Close() error {
	if s.logWriter != nil {
		return s.logWriter.Close()
	}
	return nil
}

func (s *Splog) logMessage(level slog.Level, msg string) {
	s.logger.Log(context.Background(), level, msg)
}

// Info writes an info message
func (s *Splog) Info(format string, args ...interface{}) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	s.logMessage(slog.LevelInfo, msg)
}

// Warn writes a warning message
func (s *Splog) Warn(format string, args ...interface{}) {
	msg := "⚠️  " + format
	if len(args) > 0 {
		msg = fmt.Sprintf("⚠️  "+format, args...)
	}
	s.logMessage(slog.LevelWarn, msg)
}

// Error writes an error message
func (s *Splog) Error(format string, args ...interface{}) {
	msg := "❌ " + format
	if len(args) > 0 {
		msg = fmt.Sprintf("❌ "+format, args...)
	}
	s.logMessage(slog.LevelError, msg)
}

// Debug writes a debug message, shown on the console only when DEBUG is set
func (s *Splog) Debug(format string, args ...interface{}) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	s.logMessage(slog.LevelDebug, msg)
}

// Newline writes a newline
func (s *Splog) Newline() {
	_, _ = fmt.Fprintln(s.writer)
}
