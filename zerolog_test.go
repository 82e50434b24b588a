package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func decodeEntries(t *testing.T, buf *bytes.Buffer) []logEntry {
	t.Helper()
	var out []logEntry
	dec := json.NewDecoder(buf)
	for dec.More() {
		var e logEntry
		require.NoError(t, dec.Decode(&e))
		out = append(out, e)
	}
	return out
}

func TestZerologSinkEmitsFieldsAndMessage(t *testing.T) {
	var buf bytes.Buffer
	sink := NewZerologSink(zerolog.New(&buf))

	ctx := Context{}.Extend("user", "bob").ExtendFlag("admin")
	sink.Log(LevelInfo, ctx, "hi", map[string]any{"b": 1})

	entries := decodeEntries(t, &buf)
	require.Len(t, entries, 1)
	e := entries[0]

	assert.Equal(t, "info", e[zerolog.LevelFieldName])
	assert.Equal(t, "bob", e["user"])
	assert.Equal(t, true, e["admin"])
	assert.Equal(t, `hi {"b":1}`, e[zerolog.MessageFieldName])
}

func TestZerologSinkLevelMapping(t *testing.T) {
	var buf bytes.Buffer
	sink := NewZerologSink(zerolog.New(&buf))

	for _, lvl := range levels {
		sink.Log(lvl, Context{}, "x")
	}

	entries := decodeEntries(t, &buf)
	require.Len(t, entries, 4)
	assert.Equal(t, "debug", entries[0][zerolog.LevelFieldName])
	assert.Equal(t, "info", entries[1][zerolog.LevelFieldName])
	assert.Equal(t, "warn", entries[2][zerolog.LevelFieldName])
	assert.Equal(t, "error", entries[3][zerolog.LevelFieldName])
}

func TestZerologSinkRespectsBackendLevel(t *testing.T) {
	// The facade's gating lives in the binder, but a level-restricted
	// zerolog backend may still drop what it is given.
	var buf bytes.Buffer
	sink := NewZerologSink(zerolog.New(&buf).Level(zerolog.WarnLevel))

	sink.Log(LevelDebug, Context{}, "dropped")
	sink.Log(LevelError, Context{}, "kept")

	entries := decodeEntries(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "error", entries[0][zerolog.LevelFieldName])
}

func TestZerologSinkThroughLogContext(t *testing.T) {
	var buf bytes.Buffer
	lc := New(WithSink(NewZerologSink(zerolog.New(&buf))))

	lc.WithContext("request_id", "r1").Info("handled")

	entries := decodeEntries(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "r1", entries[0]["request_id"])
	assert.Equal(t, "handled", entries[0][zerolog.MessageFieldName])
}
