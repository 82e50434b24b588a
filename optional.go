package logger

// LogFunc emits one message at the level it was bound to.
type LogFunc func(args ...any)

// OptionalLogger exposes one function slot per enabled level. A slot for a
// level more verbose than the bound level is nil, not a no-op: callers
// guard with a nil check, so arguments for a disabled level are never
// built at all. Flush is always present.
//
// The four profiles are fixed by the bound level: error -> {Error},
// warn -> {Warn, Error}, info -> {Info, Warn, Error}, debug -> all four.
type OptionalLogger struct {
	Debug LogFunc
	Info  LogFunc
	Warn  LogFunc
	Error LogFunc
	Flush func() error
}

// Bind produces an OptionalLogger over sink. Each slot at or above the
// bound level forwards (its level, ctx, args) to the sink; the rest stay
// nil. Gating happens here and only here, never inside a sink.
func Bind(sink Sink, level Level, ctx Context) OptionalLogger {
	ol := OptionalLogger{
		Flush: func() error { return flushSink(sink) },
	}
	for _, lvl := range levels {
		if !lvl.Enabled(level) {
			continue
		}
		lvl := lvl
		fn := func(args ...any) { sink.Log(lvl, ctx, args...) }
		switch lvl {
		case LevelDebug:
			ol.Debug = fn
		case LevelInfo:
			ol.Info = fn
		case LevelWarn:
			ol.Warn = fn
		case LevelError:
			ol.Error = fn
		}
	}
	return ol
}

// Silent returns an OptionalLogger with no level slots populated, for when
// logging must be fully suppressed. Flush trivially succeeds.
func Silent() OptionalLogger {
	return OptionalLogger{
		Flush: func() error { return nil },
	}
}

// At returns the slot for level, or nil when that level is disabled.
func (l OptionalLogger) At(level Level) LogFunc {
	switch level {
	case LevelDebug:
		return l.Debug
	case LevelInfo:
		return l.Info
	case LevelWarn:
		return l.Warn
	case LevelError:
		return l.Error
	}
	return nil
}
