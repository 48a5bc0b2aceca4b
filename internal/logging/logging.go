// Package logging sets up the process logger. The terminal belongs to the
// UI, so logs only ever go to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init opens path for appending and returns a JSON logger at level, plus a
// closer for the file. An empty path disables logging and returns a no-op
// logger. The result is also installed as the zerolog global logger.
func Init(app, path, level string) (zerolog.Logger, io.Closer, error) {
	if path == "" {
		logger := zerolog.Nop()
		log.Logger = logger
		return logger, io.NopCloser(nil), nil
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("create log dir: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}

	logger := New(f, app, lvl)
	log.Logger = logger
	return logger, f, nil
}

// New builds a timestamped logger writing JSON lines to w.
func New(w io.Writer, app string, level zerolog.Level) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	return zerolog.New(w).Level(level).With().Timestamp().Str("app", app).Logger()
}
