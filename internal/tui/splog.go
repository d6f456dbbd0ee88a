// Package tui provides terminal output, logging and prompts.
package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/natefinch/lumberjack.v2"
)

// consoleHandler writes bare messages: no timestamps, no level prefixes.
// Errors go to errWriter so they stay visible when stdout is redirected.
type consoleHandler struct {
	writer    io.Writer
	errWriter io.Writer
	debugMode bool
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	if level == slog.LevelDebug {
		return h.debugMode
	}
	return true
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	w := h.writer
	if record.Level >= slog.LevelError {
		w = h.errWriter
	}
	_, err := fmt.Fprintln(w, record.Message)
	return err
}

func (h *consoleHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *consoleHandler) WithGroup(_ string) slog.Handler {
	return h
}

// createLumberjackLogger creates a lumberjack logger with configuration from environment variables
func createLumberjackLogger(logFilePath string) *lumberjack.Logger {
	config := &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    1, // megabytes
		MaxBackups: 2,
		MaxAge:     30, // days
		Compress:   false,
	}

	if n, ok := positiveEnv("GITFLOW_LOG_MAX_SIZE", false); ok {
		config.MaxSize = n
	}
	if n, ok := positiveEnv("GITFLOW_LOG_MAX_BACKUPS", true); ok {
		config.MaxBackups = n
	}
	if n, ok := positiveEnv("GITFLOW_LOG_MAX_AGE", false); ok {
		config.MaxAge = n
	}

	return config
}

func positiveEnv(name string, allowZero bool) (int, bool) {
	raw := os.Getenv(name)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 || (n == 0 && !allowZero) {
		return 0, false
	}
	return n, true
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

// Options configures a Splog
type Options struct {
	// Out receives info, warning and debug output. Defaults to os.Stdout.
	Out io.Writer
	// Err receives error output. Defaults to os.Stderr.
	Err io.Writer
	// Debug enables debug output on the console
	Debug bool
	// LogFilePath enables rotated file logging when set
	LogFilePath string
}

// Splog provides structured logging and output
type Splog struct {
	logger    *slog.Logger
	writer    io.Writer
	logWriter io.WriteCloser
}

// NewSplog creates a console-only splog. Debug output is enabled when the
// DEBUG environment variable is set.
func NewSplog() *Splog {
	splog, _ := NewSplogWithOptions(Options{Debug: os.Getenv("DEBUG") != ""})
	return splog
}

// NewSplogWithOptions creates a splog with optional file logging
func NewSplogWithOptions(opts Options) (*Splog, error) {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}

	splog := &Splog{writer: opts.Out}
	handlers := []slog.Handler{&consoleHandler{
		writer:    opts.Out,
		errWriter: opts.Err,
		debugMode: opts.Debug,
	}}

	if opts.LogFilePath != "" {
		if err := os.MkdirAll(filepath.Dir(opts.LogFilePath), 0o750); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		lumberjackLogger := createLumberjackLogger(opts.LogFilePath)
		splog.logWriter = lumberjackLogger

		fileHandler := slog.NewTextHandler(lumberjackLogger, &slog.HandlerOptions{
			Level: slog.LevelDebug,
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					return slog.Attr{Key: a.Key, Value: slog.StringValue(a.Value.Time().Format("2006-01-02 15:04:05.000"))}
				}
				return a
			},
		})
		handlers = append(handlers, fileHandler)
	}

	splog.logger = slog.New(&multiHandler{handlers: handlers})
	return splog, nil
}

// logMessage logs msg without treating it as a format string
func (s *Splog) logMessage(level slog.Level, msg string) {
	s.logger.Log(context.Background(), level, msg)
}

func format(prefix, f string, args []interface{}) string {
	if len(args) == 0 {
		return prefix + f
	}
	return fmt.Sprintf(prefix+f, args...)
}

// Info writes an info message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Info(f string, args ...interface{}) {
	s.logMessage(slog.LevelInfo, format("", f, args))
}

// Success writes a completion message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Success(f string, args ...interface{}) {
	s.logMessage(slog.LevelInfo, format("✅ ", f, args))
}

// Warn writes a warning message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Warn(f string, args ...interface{}) {
	s.logMessage(slog.LevelWarn, format("⚠️  ", f, args))
}

// Error writes an error message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Error(f string, args ...interface{}) {
	s.logMessage(slog.LevelError, format("❌ ", f, args))
}

// Debug writes a debug message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Debug(f string, args ...interface{}) {
	s.logMessage(slog.LevelDebug, format("", f, args))
}

// Tip writes a tip message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Tip(f string, args ...interface{}) {
	s.logMessage(slog.LevelInfo, format("💡 ", f, args))
}

// Page writes output verbatim to the console only
func (s *Splog) Page(content string) {
	_, _ = fmt.Fprint(s.writer, content)
}

// Newline writes a newline
func (s *Splog) Newline() {
	_, _ = fmt.Fprintln(s.writer)
}

// Close closes the log file if one was opened
func (s *Splog) Close() error {
	if s.logWriter != nil {
		return s.logWriter.Close()
	}
	return nil
}
