package logger

import (
	"strings"

	"github.com/rs/zerolog"
)

// ZerologSink forwards log calls into a zerolog.Logger: context entries
// become structured fields (valueless flags become boolean true fields)
// and the normalized arguments become the message. It is how an
// application bridges this facade onto an existing zerolog backend.
type ZerologSink struct {
	l zerolog.Logger
}

func NewZerologSink(l zerolog.Logger) *ZerologSink {
	return &ZerologSink{l: l}
}

func (s *ZerologSink) Log(level Level, ctx Context, args ...any) {
	// zerolog events are nil-safe when the backend level filters the call.
	ev := s.l.WithLevel(zerologLevel(level))
	for _, e := range ctx.entries {
		if e.hasValue {
			ev = ev.Interface(e.key, Normalize(e.value))
		} else {
			ev = ev.Bool(e.key, true)
		}
	}
	tokens := make([]string, len(args))
	for i, a := range args {
		tokens[i] = renderToken(a)
	}
	ev.Msg(strings.Join(tokens, tokenSeparator))
}

func zerologLevel(level Level) zerolog.Level {
	switch level {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}
