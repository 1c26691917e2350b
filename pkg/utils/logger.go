package utils

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// The TUI owns stdout, so logs go to a dated file under /tmp. Without the
// verbose flag everything is discarded.
var logger = newDiscardLogger()

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// InitLogger initializes the logging system. With verbose enabled, debug
// messages are written to /tmp/agenda_<date>.log.
func InitLogger(verbose bool) {
	if !verbose {
		return
	}

	logFileName := fmt.Sprintf("/tmp/agenda_%s.log", time.Now().Format("2006-01-02"))
	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file: %v\n", err)
		return
	}

	logger.SetOutput(logFile)
	logger.SetLevel(logrus.DebugLevel)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	Log("Verbose logging enabled")
}

// Log writes a debug message to the log file if verbose mode is enabled.
func Log(text string, args ...interface{}) {
	logger.Debugf(text, args...)
}

// Logger exposes the shared logrus instance for callers that want fields.
func Logger() *logrus.Logger {
	return logger
}
