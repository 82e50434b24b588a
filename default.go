package logger

import (
	"go.uber.org/atomic"
)

// defaultLC holds the process-wide default LogContext.
var defaultLC atomic.Pointer[LogContext]

// Default returns the process-wide default LogContext, lazily initializing
// it to an info-level console logger.
func Default() *LogContext {
	if lc := defaultLC.Load(); lc != nil {
		return lc
	}
	lc := New()
	if defaultLC.CompareAndSwap(nil, lc) {
		return lc
	}
	return defaultLC.Load()
}

// SetDefault replaces the process-wide default LogContext. Loggers already
// derived from the previous default keep logging through it.
func SetDefault(lc *LogContext) {
	defaultLC.Store(lc)
}
