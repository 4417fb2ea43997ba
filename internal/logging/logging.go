// Package logging provides pre-configured logrus loggers. Both surfaces
// render to the terminal, so log output always goes to a file under the
// data directory, never to stdout or stderr.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex
	logDir    string
)

// SetDir sets the directory log files are written to. Call once at startup
// before any NewLogger call; later calls do not move existing loggers.
func SetDir(dir string) {
	loggersMu.Lock()
	defer loggersMu.Unlock()
	logDir = dir
}

// NewLogger returns a logger for a component, creating it on first use.
// The level comes from SHOWROOM_LOG_LEVEL (default info). If the log file
// cannot be opened the logger silently discards output rather than
// corrupting the TUI.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if entry, ok := loggers[component]; ok {
		return entry
	}

	logger := logrus.New()

	level, err := logrus.ParseLevel(os.Getenv("SHOWROOM_LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	logger.SetOutput(io.Discard)

	if logDir != "" {
		if err := os.MkdirAll(logDir, 0o755); err == nil {
			path := filepath.Join(logDir, "showroom.log")
			file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err == nil {
				logger.SetOutput(file)
			}
		}
	}

	entry := logger.WithField("component", component)
	loggers[component] = entry
	return entry
}
