package logger

// Sink is the minimal destination capability. A sink must accept any level
// it is given; level gating belongs entirely to the binder, never to the
// sink. Sinks that buffer additionally implement Flusher.
type Sink interface {
	Log(level Level, ctx Context, args ...any)
}

// Flusher is the optional flushing side of a Sink. Flush returns once
// nothing is pending; a sink with no internal buffering simply does not
// implement it.
type Flusher interface {
	Flush() error
}

// flushSink flushes s if it can; sinks without Flush count as flushed.
func flushSink(s Sink) error {
	if f, ok := s.(Flusher); ok {
		return f.Flush()
	}
	return nil
}
