package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/sunthewhat/quote-notify-api/type/shared"
	"gopkg.in/natefinch/lumberjack.v2"
)

// InitLogger installs the process-wide slog logger. With a log file
// configured, records are written as JSON to stdout and to a rotating file;
// otherwise as text to stdout.
func InitLogger(cfg shared.LogConfig) *slog.Logger {
	var handler slog.Handler
	if cfg.File != "" {
		handler = newHandler(io.MultiWriter(os.Stdout, rotatingFile(cfg)), true, cfg.Level)
	} else {
		handler = newHandler(os.Stdout, false, cfg.Level)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func rotatingFile(cfg shared.LogConfig) *lumberjack.Logger {
	if dir := filepath.Dir(cfg.File); dir != "." && dir != "" {
		_ = os.MkdirAll(dir, 0o755)
	}
	return &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
}

func newHandler(w io.Writer, json bool, level string) slog.Handler {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	if json {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// ParseLevel maps a config level name to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
