package debug

import (
	"os"
	"strconv"
)

// Config holds runtime debug settings for violation reporting.
// It has no say over which check categories are compiled in; that is
// decided by build tags alone.
type Config struct {
	// Enabled is the global debug on/off switch
	Enabled bool

	// LogViolations logs every raised violation before it propagates
	LogViolations bool

	// Prefix is prepended to every debug log line
	Prefix string
}

// Active is the global debug configuration
var Active Config

// Init initializes debug configuration from environment variables
func Init() {
	Active = Config{
		Enabled:       parseBool(os.Getenv("DEVCHECK_DEBUG"), false),
		LogViolations: parseBool(os.Getenv("DEVCHECK_DEBUG_LOG"), false),
		Prefix:        getEnvOrDefault("DEVCHECK_DEBUG_PREFIX", "[DEBUG] "),
	}

	// Logging violations implies debug output
	if Active.LogViolations {
		Active.Enabled = true
	}
}

func parseBool(s string, defaultVal bool) bool {
	if s == "" {
		return defaultVal
	}
	val, err := strconv.ParseBool(s)
	if err != nil {
		return defaultVal
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// IsEnabled returns whether debug mode is enabled
func IsEnabled() bool {
	return Active.Enabled
}
