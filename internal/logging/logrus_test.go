package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogrusLogger_LevelsAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogrusLoggerTo(&buf, "debug")
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", "two")
	log.Warn(ctx, "wrn")
	log.Error(ctx, "err", "d", 4)

	out := buf.String()
	for _, s := range []string{
		"level=debug", "msg=dbg", "a=1",
		"level=info", "msg=inf", "b=two",
		"level=warning", "msg=wrn",
		"level=error", "msg=err", "d=4",
	} {
		assert.Contains(t, out, s)
	}
}

func TestLogrusLogger_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogrusLoggerTo(&buf, "warn")

	log.Info(context.Background(), "hidden")
	log.Warn(context.Background(), "shown")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
}

func TestLogrusLogger_With(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogrusLoggerTo(&buf, "info").With("request_id", "r-1")
	log.Info(context.Background(), "hello", "k", "v")

	out := buf.String()
	assert.Contains(t, out, "request_id=r-1")
	assert.Contains(t, out, "k=v")
}

func TestFields_DanglingKey(t *testing.T) {
	f := fields([]any{"a", 1, "dangling"})
	assert.Equal(t, 1, f["a"])
	assert.Equal(t, "dangling", f["!BADKEY"])
}

func TestFields_NonStringKeyKeepsFollowingPair(t *testing.T) {
	f := fields([]any{42, "k", "v"})
	assert.Equal(t, 42, f["!BADKEY"])
	assert.Equal(t, "v", f["k"])
	assert.Len(t, f, 2)
}
