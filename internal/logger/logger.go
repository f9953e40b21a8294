// Package logger provides file-backed structured logging for the dock.
//
// A GUI process has no useful stderr on Windows, so everything goes to a log
// file. Packages obtain a component-scoped *slog.Logger once and keep it.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// DefaultFileName is the log file name used when no path is configured.
const DefaultFileName = "filerelay-dock.log"

var (
	mu       sync.Mutex
	levelVar = new(slog.LevelVar)
	logFile  *os.File
	root     = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: levelVar}))
)

// DefaultPath returns the log location under the OS temp directory.
func DefaultPath() string {
	return filepath.Join(os.TempDir(), DefaultFileName)
}

// Init opens path for appending and routes all loggers to it.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file %s: %w", path, err)
	}
	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	root = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: levelVar}))
	root.Info("logger initialized", "path", path)
	return nil
}

// InitWriter routes all loggers to w. Intended for tests and console runs.
func InitWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	root = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: levelVar}))
}

// SetDebug toggles debug level output.
func SetDebug(enabled bool) {
	if enabled {
		levelVar.Set(slog.LevelDebug)
	} else {
		levelVar.Set(slog.LevelInfo)
	}
}

// ComponentLogger returns a logger tagged with the component name. It follows
// later calls to Init, so it is safe to create at package init time.
func ComponentLogger(component string) *slog.Logger {
	h := &forwardHandler{}
	return slog.New(h.WithAttrs([]slog.Attr{slog.String("component", component)}))
}

// Close flushes and closes the log file. Subsequent logging is discarded.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	root = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: levelVar}))
}

func current() slog.Handler {
	mu.Lock()
	defer mu.Unlock()
	return root.Handler()
}
