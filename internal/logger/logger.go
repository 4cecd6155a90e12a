// Package logger writes the client's diagnostic log. The terminal UI owns
// stdout, so everything goes to a file under the app directory.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/palemoky/dice-room/internal/config"
)

var (
	mu      sync.Mutex
	writer  *rotatingWriter
	logPath string
)

// Init installs the global zerolog logger writing to cfg.File. On failure
// the global logger discards everything so nothing reaches the terminal.
func Init(cfg config.LogConfig) (err error) {
	mu.Lock()
	defer mu.Unlock()
	defer func() {
		if err != nil {
			log.Logger = zerolog.Nop()
		}
	}()

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	w, err := newRotatingWriter(cfg.File, cfg.MaxMB)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	if writer != nil {
		_ = writer.Close()
	}
	writer = w
	logPath = cfg.File

	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level))); err == nil && parsed != zerolog.NoLevel {
		level = parsed
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(w).With().Timestamp().Caller().Logger()

	log.Info().Str("path", logPath).Msg("logger initialized")
	return nil
}

// Close closes the log file. Later writes are discarded.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if writer != nil {
		_ = writer.Close()
		writer = nil
	}
	log.Logger = zerolog.Nop()
}

// Component returns a child of the global logger tagged with name.
func Component(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// LogPanic logs a recovered panic with its stack trace.
func LogPanic(r any) {
	log.Error().Str("stack", string(debug.Stack())).Msgf("panic: %v", r)
}

// GetLogPath returns the current log file path.
func GetLogPath() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}
