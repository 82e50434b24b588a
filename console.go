package logger

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/trickstertwo/xclock"
)

// tokenSeparator joins the rendered tokens of a line.
const tokenSeparator = " "

// WriterSink writes one line per log call to a pair of output streams:
// debug and info go to out, warn and error to errOut. Rendered context
// tokens come first, then the normalized message arguments. It underlies
// the console, prefixed-console, format, and rotating-file sinks.
type WriterSink struct {
	mu        sync.Mutex
	out       io.Writer
	errOut    io.Writer
	outBuf    *bufio.Writer
	errBuf    *bufio.Writer
	prefixed  bool
	timestamp bool
	bufSize   int
}

// WriterOption configures a writer-backed sink.
type WriterOption func(*WriterSink)

// WithLevelPrefix prepends the fixed 3-character level tag (DBG, INF, WRN,
// ERR) to every line.
func WithLevelPrefix() WriterOption {
	return func(s *WriterSink) { s.prefixed = true }
}

// WithTimestamp prepends an RFC 3339 timestamp to every line. The clock is
// read through xclock so timestamped output stays testable.
func WithTimestamp() WriterOption {
	return func(s *WriterSink) { s.timestamp = true }
}

// WithBuffering adds internal line buffering of the given size; buffered
// output is only guaranteed to reach the streams after Flush.
func WithBuffering(size int) WriterOption {
	return func(s *WriterSink) { s.bufSize = size }
}

// NewWriterSink builds a sink over the given streams. out receives debug
// and info lines, errOut receives warn and error lines; the two may be the
// same writer.
func NewWriterSink(out, errOut io.Writer, opts ...WriterOption) *WriterSink {
	s := &WriterSink{out: out, errOut: errOut}
	for _, opt := range opts {
		opt(s)
	}
	if s.bufSize > 0 {
		s.outBuf = bufio.NewWriterSize(out, s.bufSize)
		s.out = s.outBuf
		if errOut == out {
			s.errOut = s.outBuf
		} else {
			s.errBuf = bufio.NewWriterSize(errOut, s.bufSize)
			s.errOut = s.errBuf
		}
	}
	return s
}

// NewConsoleSink builds the default console sink over the process's
// standard streams.
func NewConsoleSink(opts ...WriterOption) *WriterSink {
	return NewWriterSink(os.Stdout, os.Stderr, opts...)
}

// NewPrefixedConsoleSink is NewConsoleSink with the level prefix enabled.
func NewPrefixedConsoleSink(opts ...WriterOption) *WriterSink {
	return NewConsoleSink(append([]WriterOption{WithLevelPrefix()}, opts...)...)
}

// Log renders the context and normalized arguments as a single line on the
// stream matching level.
func (s *WriterSink) Log(level Level, ctx Context, args ...any) {
	tokens := make([]string, 0, 2+ctx.Len()+len(args))
	if s.timestamp {
		tokens = append(tokens, xclock.Now().Format(time.RFC3339))
	}
	if s.prefixed {
		tokens = append(tokens, level.Tag())
	}
	tokens = append(tokens, ctx.Render()...)
	for _, a := range args {
		tokens = append(tokens, renderToken(a))
	}
	s.emit(level, tokens)
}

func (s *WriterSink) emit(level Level, tokens []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = fmt.Fprintln(s.writerFor(level), strings.Join(tokens, tokenSeparator))
}

func (s *WriterSink) writerFor(level Level) io.Writer {
	if level >= LevelWarn {
		return s.errOut
	}
	return s.out
}

// Flush drains the internal buffers, if buffering was enabled.
func (s *WriterSink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.outBuf != nil {
		if err := s.outBuf.Flush(); err != nil {
			return err
		}
	}
	if s.errBuf != nil {
		return s.errBuf.Flush()
	}
	return nil
}
