// Package logging configures the process-wide loggers. Terminal output
// goes to stderr through a console encoder; everything is mirrored to a
// persistent log file so findings survive the terminal session, the way
// the tool's log directory under $XDG_DATA_HOME is meant to be used.
//
// The package distinguishes two sinks. [For] returns a component logger
// writing to both terminal and file; [File] returns one writing to the
// file alone, used for the findings ledger so issues rendered to stdout
// are not repeated on stderr. Before [Setup] runs, both return no-op
// loggers, which keeps library code free to log unconditionally.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu         sync.RWMutex
	fileLogger = zap.NewNop()
)

// Setup replaces the global logger with a tee of a console core on stderr
// and, when path is non-empty, a timestamped core appending to the log
// file at path. Both cores filter at the given level. The returned
// function flushes buffered entries and is meant to be deferred by main.
func Setup(level, path string) (func(), error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	consoleCfg := zap.NewDevelopmentEncoderConfig()
	consoleCfg.TimeKey = zapcore.OmitKey // terminal lines carry no timestamp
	consoleCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	console := zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), zapcore.Lock(os.Stderr), lvl)

	cores := []zapcore.Core{console}
	var fileCore zapcore.Core
	if path != "" {
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		fileCfg := zap.NewProductionEncoderConfig()
		fileCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		fileCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		fileCore = zapcore.NewCore(zapcore.NewConsoleEncoder(fileCfg), zapcore.Lock(f), lvl)
		cores = append(cores, fileCore)
	}

	logger := zap.New(zapcore.NewTee(cores...))
	zap.ReplaceGlobals(logger)

	mu.Lock()
	if fileCore != nil {
		fileLogger = zap.New(fileCore)
	} else {
		fileLogger = zap.NewNop()
	}
	mu.Unlock()

	return func() {
		_ = logger.Sync()
	}, nil
}

// For returns a named component logger writing to terminal and log file.
func For(component string) *zap.SugaredLogger {
	return zap.S().Named(component)
}

// File returns a named component logger writing to the log file only.
// Without a configured file it is a no-op.
func File(component string) *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return fileLogger.Sugar().Named(component)
}

// ParseLevel maps the user-facing level names onto zap levels. The names
// follow the tool's historical set (DEBUG, INFO, WARNING, ERROR,
// CRITICAL), case-insensitively, alongside zap's own warn and fatal.
func ParseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "warning", "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	case "critical", "fatal":
		return zapcore.FatalLevel, nil
	}
	return zapcore.InfoLevel, fmt.Errorf("unrecognized log level %q", s)
}

// DefaultPath returns the standard log file location,
// $XDG_DATA_HOME/nvme-lint/nvme-lint.log with the usual ~/.local/share
// fallback, creating the directory if needed.
func DefaultPath() (string, error) {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve log directory: %w", err)
		}
		base = filepath.Join(home, ".local", "share")
	}
	dir := filepath.Join(base, "nvme-lint")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create log directory: %w", err)
	}
	return filepath.Join(dir, "nvme-lint.log"), nil
}
