package util

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
)

const (
	// LevelError error level
	LevelError = iota
	// LevelWarning warning level
	LevelWarning
	// LevelInformational info level
	LevelInformational
	// LevelDebug debug level
	LevelDebug
)

var (
	logger     *Logger
	globalMu   sync.Mutex
	errorTag   = color.New(color.FgRed).Add(color.Bold).SprintFunc()
	warningTag = color.New(color.FgYellow).SprintFunc()
	infoTag    = color.New(color.FgCyan).SprintFunc()
	debugTag   = color.New(color.FgWhite).SprintFunc()
)

// Logger leveled console logger
type Logger struct {
	level int
	mu    sync.Mutex
}

// Println prints a timestamped line
func (ll *Logger) Println(prefix string, msg string) {
	ll.mu.Lock()
	defer ll.mu.Unlock()
	fmt.Printf("%s %s %s\n", prefix, time.Now().Format("2006-01-02 15:04:05"), msg)
}

// Panic logs the message and exits
func (ll *Logger) Panic(format string, v ...interface{}) {
	if LevelError > ll.level {
		return
	}
	msg := fmt.Sprintf(format, v...)
	ll.Println(errorTag("[Panic]"), msg)
	os.Exit(1)
}

// Error logs an error message
func (ll *Logger) Error(format string, v ...interface{}) {
	if LevelError > ll.level {
		return
	}
	msg := fmt.Sprintf(format, v...)
	ll.Println(errorTag("[E]"), msg)
}

// Warning logs a warning message
func (ll *Logger) Warning(format string, v ...interface{}) {
	if LevelWarning > ll.level {
		return
	}
	msg := fmt.Sprintf(format, v...)
	ll.Println(warningTag("[W]"), msg)
}

// Info logs an informational message
func (ll *Logger) Info(format string, v ...interface{}) {
	if LevelInformational > ll.level {
		return
	}
	msg := fmt.Sprintf(format, v...)
	ll.Println(infoTag("[I]"), msg)
}

// Debug logs a debug message
func (ll *Logger) Debug(format string, v ...interface{}) {
	if LevelDebug > ll.level {
		return
	}
	msg := fmt.Sprintf(format, v...)
	ll.Println(debugTag("[D]"), msg)
}

// BuildLogger initializes the global logger with the given level
func BuildLogger(level string) {
	intLevel := LevelError
	switch level {
	case "error":
		intLevel = LevelError
	case "warning":
		intLevel = LevelWarning
	case "info":
		intLevel = LevelInformational
	case "debug":
		intLevel = LevelDebug
	}

	globalMu.Lock()
	defer globalMu.Unlock()
	logger = &Logger{
		level: intLevel,
	}
}

// Log returns the global logger, building a debug one if absent
func Log() *Logger {
	globalMu.Lock()
	defer globalMu.Unlock()
	if logger == nil {
		logger = &Logger{
			level: LevelDebug,
		}
	}
	return logger
}
