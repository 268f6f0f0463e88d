package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, env := range []string{"XLWAVE_SHEET", "XLWAVE_NO_HEADER", "XLWAVE_HSCALE", "XLWAVE_PRETTY", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(env, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Read.Sheet)
	assert.False(t, cfg.Read.NoHeader)
	assert.Equal(t, 0.0, cfg.Render.HScale)
	assert.False(t, cfg.Render.Pretty)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("XLWAVE_SHEET", "Example2")
	t.Setenv("XLWAVE_NO_HEADER", "true")
	t.Setenv("XLWAVE_HSCALE", "0.5")
	t.Setenv("XLWAVE_PRETTY", "1")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Example2", cfg.Read.Sheet)
	assert.True(t, cfg.Read.NoHeader)
	assert.Equal(t, 0.5, cfg.Render.HScale)
	assert.True(t, cfg.Render.Pretty)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		env   string
		value string
	}{
		{"XLWAVE_HSCALE", "wide"},
		{"XLWAVE_HSCALE", "-1"},
		{"XLWAVE_PRETTY", "maybe"},
		{"LOG_FORMAT", "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.env+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.env, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
