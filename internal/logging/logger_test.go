package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  []string
	}{
		{LevelDebug, []string{"DEBUG", "INFO", "WARN", "ERROR"}},
		{LevelInfo, []string{"INFO", "WARN", "ERROR"}},
		{"warn", []string{"WARN", "ERROR"}},
		{LevelError, []string{"ERROR"}},
		{"bogus", []string{"INFO", "WARN", "ERROR"}},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf, tt.level)

			logger.Debug("d")
			logger.Info("i")
			logger.Warn("w")
			logger.Error("e")

			var got []string
			for _, entry := range decodeLines(t, &buf) {
				got = append(got, entry["level"].(string))
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLogger_WithSessionAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	base := NewLogger(&buf, LevelDebug)
	logger := base.WithSession("abc").WithComponent("store").With("task_id", "7", 42, "skipped")

	logger.Info("task created", "title", "Interview")
	base.Info("untagged")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)

	assert.Equal(t, "task created", entries[0]["msg"])
	assert.Equal(t, "abc", entries[0]["session_id"])
	assert.Equal(t, "store", entries[0]["component"])
	assert.Equal(t, "7", entries[0]["task_id"])
	assert.Equal(t, "Interview", entries[0]["title"])

	_, tagged := entries[1]["session_id"]
	assert.False(t, tagged, "parent logger must not inherit child attributes")
}

func TestLogger_WithNoAttrsReturnsSame(t *testing.T) {
	logger := NopLogger()
	assert.Same(t, logger, logger.With())
}

func TestNewFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.log")

	logger, err := NewFileLogger(path, LevelInfo)
	require.NoError(t, err)
	logger.WithSession("s1").Warn("task not found", "task_id", "9")
	require.NoError(t, logger.Close())
	require.NoError(t, logger.Close(), "second close is a no-op")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"session_id":"s1"`)
	assert.Contains(t, string(data), `"task_id":"9"`)
}

func TestNewFileLogger_Stderr(t *testing.T) {
	logger, err := NewFileLogger("", LevelInfo)
	require.NoError(t, err)
	assert.Nil(t, logger.file)
	assert.NoError(t, logger.Close())
}

func TestNewFileLogger_BadPath(t *testing.T) {
	_, err := NewFileLogger(filepath.Join(t.TempDir(), "missing", "dir", "tasks.log"), LevelInfo)
	assert.Error(t, err)
}
