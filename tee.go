package logger

import (
	stderrs "errors"
	"sync"

	"github.com/pkg/errors"
)

// TeeSink fans every log call out to an ordered sequence of sub-sinks.
//
// Delivery is unconditional: a sub-sink that panics is recovered and the
// remaining sub-sinks still receive the call (swallow-and-continue; the
// panic is not re-raised). Flush runs every flushable sub-sink
// concurrently, waits for all of them, and joins their errors; sub-sinks
// without Flush count as already flushed.
type TeeSink struct {
	sinks []Sink
}

// NewTeeSink builds a tee over the given sub-sinks, in delivery order.
func NewTeeSink(sinks ...Sink) *TeeSink {
	out := make([]Sink, len(sinks))
	copy(out, sinks)
	return &TeeSink{sinks: out}
}

func (t *TeeSink) Log(level Level, ctx Context, args ...any) {
	for _, s := range t.sinks {
		logRecovering(s, level, ctx, args)
	}
}

func logRecovering(s Sink, level Level, ctx Context, args []any) {
	defer func() {
		_ = recover()
	}()
	s.Log(level, ctx, args...)
}

func (t *TeeSink) Flush() error {
	var wg sync.WaitGroup
	errs := make([]error, len(t.sinks))
	for i, s := range t.sinks {
		f, ok := s.(Flusher)
		if !ok {
			continue
		}
		wg.Add(1)
		go func(i int, f Flusher) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					errs[i] = errors.Errorf("flush panicked: %v", r)
				}
			}()
			errs[i] = f.Flush()
		}(i, f)
	}
	wg.Wait()
	return stderrs.Join(errs...)
}
