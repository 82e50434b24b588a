package logger

import (
	"github.com/pkg/errors"
)

// FormatFunc reshapes a log call before it is written. It receives the
// level, the rendered context tokens, and the caller's raw arguments, and
// returns the values to emit. It must be pure.
type FormatFunc func(level Level, args []any) []any

// FormatSink writes through a WriterSink after passing every call through
// a caller-supplied FormatFunc, so a custom prefix or shape does not
// require a whole new sink.
type FormatSink struct {
	ws *WriterSink
	fn FormatFunc
}

// NewFormatSink builds a format sink over the standard console streams.
func NewFormatSink(fn FormatFunc, opts ...WriterOption) (*FormatSink, error) {
	return NewFormatWriterSink(fn, NewConsoleSink(opts...))
}

// NewFormatWriterSink builds a format sink over an existing WriterSink.
func NewFormatWriterSink(fn FormatFunc, ws *WriterSink) (*FormatSink, error) {
	if fn == nil {
		return nil, errors.New("format function must not be nil")
	}
	if ws == nil {
		return nil, errors.New("writer sink must not be nil")
	}
	return &FormatSink{ws: ws, fn: fn}, nil
}

func (s *FormatSink) Log(level Level, ctx Context, args ...any) {
	rendered := ctx.Render()
	in := make([]any, 0, len(rendered)+len(args))
	for _, tok := range rendered {
		in = append(in, tok)
	}
	in = append(in, args...)

	out := s.fn(level, in)
	tokens := make([]string, len(out))
	for i, a := range out {
		tokens[i] = renderToken(a)
	}
	s.ws.emit(level, tokens)
}

// Flush delegates to the underlying writer sink.
func (s *FormatSink) Flush() error { return s.ws.Flush() }
