// Package logging builds the process-wide structured logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/wydatki-dev/wydatki/internal/config"
)

// New creates a console logger writing to w at the given level. Unknown
// levels fall back to info.
func New(level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).Level(lvl).With().Timestamp().Logger()
}

// Setup builds the logger from config, attaching the optional log file sink.
// The returned closer releases the file; it is safe to call when no file is
// configured.
func Setup(cfg config.LoggingConfig) (zerolog.Logger, func(), error) {
	if cfg.File == "" {
		return New(cfg.Level, os.Stderr), func() {}, nil
	}

	f, err := os.OpenFile(cfg.File, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("opening log file %s: %w", cfg.File, err)
	}

	lvl, lvlErr := zerolog.ParseLevel(cfg.Level)
	if lvlErr != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	sink := zerolog.MultiLevelWriter(console, f)
	logger := zerolog.New(sink).Level(lvl).With().Timestamp().Logger()
	return logger, func() { f.Close() }, nil
}
