package debug

import (
	"fmt"
	"log"
	"sync"
)

// Logger interface for debug logging.
//
// Example usage:
//
//	logger := debug.GetLogger()
//	logger.Debugf("bounds check failed: index %d, length %d", i, n)
type Logger interface {
	// Debugf logs a formatted debug message
	Debugf(format string, args ...any)
	// Debug logs debug arguments
	Debug(args ...any)
}

// nopLogger does nothing (used when debug mode is disabled).
type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Debug(...any)          {}

// stdLogger logs to the standard logger with a configurable prefix.
type stdLogger struct {
	prefix string
}

func (s stdLogger) Debugf(format string, args ...any) {
	log.Printf(s.prefix+format, args...)
}

func (s stdLogger) Debug(args ...any) {
	log.Printf("%s%v", s.prefix, fmt.Sprint(args...))
}

var (
	// l is the private global debug logger (use GetLogger() to access)
	l    Logger = nopLogger{}
	once sync.Once
)

// GetLogger returns the configured debug logger.
// Always use this function to access the logger instead of storing a reference.
func GetLogger() Logger {
	return l
}

// InitLogger initializes the debug logger based on debug mode.
// It runs at most once per process. When the host has not called Init,
// the environment is read here.
func InitLogger() {
	once.Do(func() {
		if Active == (Config{}) {
			Init()
		}
		if Active.Enabled {
			prefix := Active.Prefix
			if prefix == "" {
				prefix = "[DEBUG] "
			}
			l = stdLogger{prefix: prefix}
			l.Debug("Debug logging enabled")
		}
	})
}

// LogViolation reports a violation message if violation logging is on.
func LogViolation(msg string) {
	InitLogger()
	if Active.LogViolations {
		l.Debugf("%s", msg)
	}
}
