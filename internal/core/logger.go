package core

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LoggerOptions configures NewLogger.
type LoggerOptions struct {
	// File is the log file path. Empty means DefaultLogFile().
	File string
	// Debug also mirrors debug-level records to stderr.
	Debug bool
}

// DefaultLogFile returns <UserCacheDir>/dev-sweep/dev-sweep.log.
func DefaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "dev-sweep", "dev-sweep.log")
}

// NewLogger builds the application logger. Records always go to a rotating
// log file so deletions leave a trail; --debug adds stderr output.
func NewLogger(opts LoggerOptions) (*slog.Logger, io.Closer, error) {
	file := opts.File
	if file == "" {
		file = DefaultLogFile()
	}
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return nil, nil, err
	}

	rotator := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    5, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	level := slog.LevelInfo
	var w io.Writer = rotator
	if opts.Debug {
		level = slog.LevelDebug
		w = io.MultiWriter(os.Stderr, rotator)
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler), rotator, nil
}

// DiscardLogger returns a logger that drops every record.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
