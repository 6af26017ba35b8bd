package gfaview

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/gfaview/graph"
)

func TestLoggerConstructors(t *testing.T) {
	assert.NotNil(t, NewLogger(nil))
	assert.NotNil(t, NewTextLogger(slog.LevelInfo))
	assert.NotNil(t, NewJSONLogger(slog.LevelInfo))
	assert.NotNil(t, NoopLogger())
}

func TestJSONLoggerOutput(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	l := NewLogger(handler).WithNode(graph.NodeID(7)).WithPath(graph.PathID(2))

	l.LogQuery(context.Background(), "node_stats", time.Millisecond)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "query served", entry["msg"])
	assert.Equal(t, "node_stats", entry["kind"])
	assert.Equal(t, float64(7), entry["node"])
	assert.Equal(t, float64(2), entry["path"])
}

func TestNoopLoggerDiscards(t *testing.T) {
	// Must not panic; output goes nowhere visible.
	NoopLogger().LogBuild(context.Background(), 4, 2, time.Millisecond)
}
