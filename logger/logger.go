package logger

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/jwhearn/tunetext/config"
)

var logger *log.Logger

// Init initializes the logger. Diagnostics go to the configured log file so
// stdout stays clean for notation output; stderr is the fallback.
func Init(verbose bool) {
	logLevel := log.InfoLevel
	if verbose {
		logLevel = log.DebugLevel
	}

	f, err := os.OpenFile(config.GetString("log.file"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		f = os.Stderr
	}

	logger = log.New(f)
	logger.SetLevel(logLevel)
}

func Debug(msg string, args ...interface{}) {
	if logger != nil {
		logger.Debug(msg, args...)
	}
}

func Info(msg string, args ...interface{}) {
	if logger != nil {
		logger.Info(msg, args...)
	}
}

func Warn(msg string, args ...interface{}) {
	if logger != nil {
		logger.Warn(msg, args...)
	}
}

func Error(msg string, args ...interface{}) {
	if logger != nil {
		logger.Error(msg, args...)
	}
}

func Fatal(msg string, args ...interface{}) {
	if logger != nil {
		logger.Fatal(msg, args...)
	} else {
		os.Exit(1)
	}
}
