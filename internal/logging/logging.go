// Package logging builds the structured loggers used across tagfind.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// EnvLogLevel overrides the configured log level.
const EnvLogLevel = "TAGFIND_LOG_LEVEL"

const prefix = "tagfind"

// DefaultLevel is used when no level is configured.
const DefaultLevel = log.WarnLevel

// ValidLevels lists the accepted level names.
var ValidLevels = []string{"debug", "info", "warn", "error"}

// New returns a logger writing to w at the given level name.
// Unknown or empty names fall back to DefaultLevel.
func New(w io.Writer, level string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix: prefix,
		Level:  ParseLevel(level),
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// ParseLevel converts a level name to a log.Level, defaulting to DefaultLevel.
func ParseLevel(level string) log.Level {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || !IsValidLevel(level) {
		return DefaultLevel
	}
	return lvl
}

// IsValidLevel reports whether level is one of ValidLevels (case-insensitive).
// The empty string is valid and means "default".
func IsValidLevel(level string) bool {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		return true
	}
	for _, v := range ValidLevels {
		if v == level {
			return true
		}
	}
	return false
}

// ResolveLevel picks the effective level name: flag, then environment, then config.
func ResolveLevel(flagLevel, configLevel string) string {
	if flagLevel != "" {
		return flagLevel
	}
	if env := os.Getenv(EnvLogLevel); env != "" {
		return env
	}
	return configLevel
}
