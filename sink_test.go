package logger

import (
	"sync"
	"time"
)

// recordedCall captures one Log invocation.
type recordedCall struct {
	level Level
	ctx   Context
	args  []any
}

// recordingSink records every call. It does not implement Flusher.
type recordingSink struct {
	mu    sync.Mutex
	calls []recordedCall
}

func (s *recordingSink) Log(level Level, ctx Context, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, recordedCall{level: level, ctx: ctx, args: args})
}

func (s *recordingSink) recorded() []recordedCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]recordedCall, len(s.calls))
	copy(out, s.calls)
	return out
}

// flushingSink records calls and flushes, optionally slowly or with an
// injected error.
type flushingSink struct {
	recordingSink
	flushDelay time.Duration
	flushErr   error
	flushes    int
}

func (s *flushingSink) Flush() error {
	if s.flushDelay > 0 {
		time.Sleep(s.flushDelay)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flushes++
	return s.flushErr
}

func (s *flushingSink) flushCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flushes
}

// panickySink panics on every operation.
type panickySink struct{}

func (panickySink) Log(Level, Context, ...any) { panic("sink exploded") }
func (panickySink) Flush() error              { panic("flush exploded") }
