package debug

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/lmittmann/tint"
)

// EnvVar names the environment variable holding a debug log path.
const EnvVar = "LCD_DEBUG"

var (
	mu      sync.Mutex
	logFile *os.File
	logger  = slog.New(discardHandler{})
	envOnce sync.Once
)

// Init initializes debug logging to the specified file path.
// If path is empty, uses "debug.log" in the current directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		path = "debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	closeLocked()
	logFile = f
	logger = slog.New(tint.NewHandler(f, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: "15:04:05.000",
		NoColor:    true,
	}))
	return nil
}

// SetOutput sends log records at or above level to w.
// Color enables ANSI colors and should only be set for terminals.
func SetOutput(w io.Writer, level slog.Level, color bool) {
	mu.Lock()
	defer mu.Unlock()

	closeLocked()
	logger = slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    !color,
	}))
}

// Close closes the debug log file and disables logging.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	err := closeLocked()
	logger = slog.New(discardHandler{})
	return err
}

func closeLocked() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	envOnce.Do(func() {
		if path := os.Getenv(EnvVar); path != "" {
			mu.Lock()
			_ = initLocked(path)
			mu.Unlock()
		}
	})
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Log writes a printf-style debug message.
func Log(format string, args ...any) {
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.Debug(fmt.Sprintf(format, args...))
}

// Warn reports a recoverable problem, such as content that could not be measured.
func Warn(msg string, args ...any) {
	Logger().Warn(msg, args...)
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler { return d }
func (d discardHandler) WithGroup(string) slog.Handler { return d }
