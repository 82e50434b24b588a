package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatSinkShapesOutput(t *testing.T) {
	var out, errOut bytes.Buffer
	fs, err := NewFormatWriterSink(func(level Level, args []any) []any {
		return append([]any{"fmt>", level.String()}, args...)
	}, NewWriterSink(&out, &errOut))
	require.NoError(t, err)

	fs.Log(LevelInfo, Context{}.Extend("name", "alice"), "hello")
	assert.Equal(t, "fmt> info name=alice hello\n", out.String())

	fs.Log(LevelError, Context{}, "boom")
	assert.Equal(t, "fmt> error boom\n", errOut.String())
}

func TestFormatSinkReceivesContextTokensAndRawArgs(t *testing.T) {
	var out, errOut bytes.Buffer
	var got []any
	fs, err := NewFormatWriterSink(func(level Level, args []any) []any {
		got = append([]any(nil), args...)
		return nil
	}, NewWriterSink(&out, &errOut))
	require.NoError(t, err)

	payload := map[string]any{"b": 1}
	fs.Log(LevelWarn, Context{}.Extend("x", 1), "msg", payload)

	require.Len(t, got, 3)
	assert.Equal(t, "x=1", got[0])
	assert.Equal(t, "msg", got[1])
	assert.Equal(t, payload, got[2])
}

func TestFormatSinkConstructionErrors(t *testing.T) {
	_, err := NewFormatSink(nil)
	require.Error(t, err)

	_, err = NewFormatWriterSink(func(Level, []any) []any { return nil }, nil)
	require.Error(t, err)
}

func TestFormatSinkFlushDelegates(t *testing.T) {
	var buf bytes.Buffer
	fs, err := NewFormatWriterSink(func(level Level, args []any) []any {
		return args
	}, NewWriterSink(&buf, &buf, WithBuffering(4096)))
	require.NoError(t, err)

	fs.Log(LevelInfo, Context{}, "pending")
	assert.Empty(t, buf.String())
	require.NoError(t, fs.Flush())
	assert.Equal(t, "pending\n", buf.String())
}
