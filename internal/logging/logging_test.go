package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "production", "")
	logger.Info().Str("report", "activity").Msg("built")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "activity", entry["report"])
	assert.Equal(t, "built", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, EnvDevelopment, "debug")
	logger.Debug().Msg("starting")

	out := buf.String()
	assert.Contains(t, out, "starting")
	assert.False(t, json.Valid(buf.Bytes()), "console output is not JSON")
}

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "production", "warn")
	logger.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	logger.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "production", "loud")
	logger.Debug().Msg("hidden")
	assert.Empty(t, buf.String())
	logger.Info().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}
