package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "u", cfg.TimeUnit)
	assert.Equal(t, "Python Script", cfg.Marker)
	assert.Len(t, cfg.Channels, 8)
	assert.Equal(t, 3.0, cfg.Trace.MaxValue)
	assert.Equal(t, 1.0, cfg.Trace.RiseTime)
	assert.Equal(t, 2, cfg.AC.Cycles)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "run.yaml", `
output_dir: out
cycles: 3
trace:
  max_value: 5
  rise_time: 10
  raw: true
ac:
  frequency_hz: 250
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, 3, cfg.Cycles)
	assert.Equal(t, 5.0, cfg.Trace.MaxValue)
	assert.Equal(t, 10.0, cfg.Trace.RiseTime)
	assert.True(t, cfg.Trace.Raw)
	assert.Equal(t, 1e6, cfg.Trace.TimeScale, "unset keys keep defaults")
	assert.Equal(t, 250.0, cfg.AC.FrequencyHz)
	assert.Equal(t, 240.0, cfg.AC.PulseWidthUS)
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "run.toml", `
output_dir = "pwl"
channels = ["en", "sel", "r1", "r2"]

[ac]
rpr = 4.0
cycles = 0
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "pwl", cfg.OutputDir)
	assert.Equal(t, []string{"en", "sel", "r1", "r2"}, cfg.Channels)
	assert.Equal(t, 4.0, cfg.AC.RPR)
	assert.Equal(t, 0, cfg.AC.Cycles)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "run.json", `{}`))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "run.yaml", "cycles: [1"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "run.yaml", "cycles: -1"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no output", func(c *Config) { c.OutputDir = "" }},
		{"no marker", func(c *Config) { c.Marker = "" }},
		{"few channels", func(c *Config) { c.Channels = []string{"a"} }},
		{"duplicate channel", func(c *Config) { c.Channels = []string{"a", "b", "a", "c"} }},
		{"path in channel", func(c *Config) { c.Channels = []string{"a", "b", "../c", "d"} }},
		{"zero scale", func(c *Config) { c.Trace.TimeScale = 0 }},
		{"negative rise", func(c *Config) { c.Trace.RiseTime = -1 }},
		{"bad ac", func(c *Config) { c.AC.FrequencyHz = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
