package logger

import (
	"github.com/pkg/errors"
)

// Level is a log severity. The order is fixed and total: debug is the most
// verbose, error the most severe. There are no custom levels.
type Level int8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel parses a level token ("debug", "info", "warn", "error").
// An unrecognized token is a programmer error and fails fast.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelError, errors.Errorf("unknown log level %q", s)
}

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	}
	return "unknown"
}

// Tag returns the fixed 3-character uppercase tag used by the prefixed
// console sink, so lines stay column-aligned regardless of level.
func (l Level) Tag() string {
	switch l {
	case LevelDebug:
		return "DBG"
	case LevelInfo:
		return "INF"
	case LevelWarn:
		return "WRN"
	case LevelError:
		return "ERR"
	}
	return "???"
}

// Enabled reports whether a logger bound at min emits messages at l.
// Error is enabled at every min level, debug only when min is debug.
func (l Level) Enabled(min Level) bool {
	return l >= min
}

// levels in verbosity order, used by the binder's slot table.
var levels = [...]Level{LevelDebug, LevelInfo, LevelWarn, LevelError}
