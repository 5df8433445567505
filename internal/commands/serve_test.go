package commands

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regu-ai/regu/internal/config"
)

func TestLoadServeSettings_Defaults(t *testing.T) {
	cfg := config.Default("RSUD Sehat", "blu_hospital")
	cmd := newServeCommand()

	s, err := loadServeSettings(cmd, cfg)
	require.NoError(t, err)
	assert.Equal(t, "8000", s.Port)
	assert.Equal(t, "production", s.Env)
	assert.Equal(t, "info", s.LogLevel)
}

func TestLoadServeSettings_EnvOverridesConfig(t *testing.T) {
	t.Setenv("REGU_PORT", "9090")
	t.Setenv("REGU_ENV", "development")
	t.Setenv("REGU_LOG_LEVEL", "debug")

	s, err := loadServeSettings(newServeCommand(), config.Default("RSUD Sehat", "blu_hospital"))
	require.NoError(t, err)
	assert.Equal(t, "9090", s.Port)
	assert.Equal(t, "development", s.Env)
	assert.Equal(t, "debug", s.LogLevel)
}

func TestLoadServeSettings_FlagOverridesEnv(t *testing.T) {
	t.Setenv("REGU_PORT", "9090")
	cmd := newServeCommand()
	require.NoError(t, cmd.Flags().Set("port", "7070"))

	s, err := loadServeSettings(cmd, config.Default("RSUD Sehat", "blu_hospital"))
	require.NoError(t, err)
	assert.Equal(t, "7070", s.Port)
}

func TestLoadServeSettings_EmptyConfigPort(t *testing.T) {
	cfg := config.Default("RSUD Sehat", "blu_hospital")
	cfg.Server.Port = ""

	s, err := loadServeSettings(newServeCommand(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "8000", s.Port)
}

func TestParseAsOf(t *testing.T) {
	ref, err := parseAsOf("2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", ref.Format(time.DateOnly))

	today, err := parseAsOf("")
	require.NoError(t, err)
	assert.Zero(t, today.Hour())

	_, err = parseAsOf("2024/01/01")
	assert.Error(t, err)
}

func TestRelativeTo(t *testing.T) {
	assert.Equal(t, "exports/aging.pdf", relativeTo("/srv/rsud", "/srv/rsud/exports/aging.pdf"))
	assert.Equal(t, "/tmp/out.pdf", relativeTo("/srv/rsud", "/tmp/out.pdf"))
}
