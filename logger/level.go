package logger

import (
	"github.com/philipp01105/runlog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	InfoLevel    = core.InfoLevel
	WarningLevel = core.WarningLevel
	SevereLevel  = core.SevereLevel
	ErrorLevel   = core.ErrorLevel
)

// ParseLevel converts a string to a Level, defaulting to InfoLevel
func ParseLevel(s string) Level {
	level, _ := core.ParseLevel(s)
	return level
}
