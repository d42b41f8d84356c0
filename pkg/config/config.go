// Package config loads run settings from YAML or TOML files.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/edp1096/pwlgen/internal/consts"
	"github.com/edp1096/pwlgen/pkg/pulse"
)

// Config contains the settings shared by all subcommands
type Config struct {
	OutputDir string   `yaml:"output_dir" toml:"output_dir"` // Directory receiving one file per channel
	TimeUnit  string   `yaml:"time_unit" toml:"time_unit"`   // Suffix after each breakpoint time
	Marker    string   `yaml:"marker" toml:"marker"`         // Netlist text holding the phase table
	Cycles    int      `yaml:"cycles" toml:"cycles"`         // Extra bursts appended to a script ladder
	Channels  []string `yaml:"channels" toml:"channels"`     // Labels of the script columns

	Trace TraceConfig  `yaml:"trace" toml:"trace"`
	AC    pulse.ACSpec `yaml:"ac" toml:"ac"`
}

// TraceConfig holds the edge detector settings
type TraceConfig struct {
	TimeColumn string  `yaml:"time_column" toml:"time_column"`
	TimeScale  float64 `yaml:"time_scale" toml:"time_scale"`
	MaxValue   float64 `yaml:"max_value" toml:"max_value"`
	RiseTime   float64 `yaml:"rise_time" toml:"rise_time"` // Gap between held and new level, output time units
	Raw        bool    `yaml:"raw" toml:"raw"`
}

// Default returns the bench settings: 4 or 8 labelled channels in microseconds
func Default() Config {
	return Config{
		OutputDir: ".",
		TimeUnit:  consts.TimeUnit,
		Marker:    consts.Marker,
		Channels:  append([]string(nil), consts.Channels...),
		Trace: TraceConfig{
			TimeColumn: "Time",
			TimeScale:  consts.MicroScale,
			MaxValue:   consts.MaxValue,
			RiseTime:   consts.RiseTime,
		},
		AC: pulse.DefaultACSpec(),
	}
}

// Load reads path over the defaults. The decoder is chosen by extension.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "reading config")
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		_, err = toml.Decode(string(data), &cfg)
	default:
		return cfg, errors.Errorf("unsupported config format %q", filepath.Ext(path))
	}
	if err != nil {
		return cfg, errors.Wrapf(err, "decoding %s", path)
	}

	return cfg, cfg.Validate()
}

// Validate checks if the configuration is valid
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory is required")
	}

	if c.Marker == "" {
		return errors.New("script marker is required")
	}

	if c.Cycles < 0 {
		return errors.Errorf("invalid cycles: %d", c.Cycles)
	}

	if len(c.Channels) < consts.BaseChannels {
		return errors.Errorf("need at least %d channel labels, got %d", consts.BaseChannels, len(c.Channels))
	}

	seen := make(map[string]bool, len(c.Channels))
	for _, ch := range c.Channels {
		if ch == "" || strings.ContainsAny(ch, `/\`) {
			return errors.Errorf("invalid channel label %q", ch)
		}
		if seen[ch] {
			return errors.Errorf("duplicate channel label %q", ch)
		}
		seen[ch] = true
	}

	if c.Trace.TimeScale <= 0 {
		return errors.Errorf("invalid trace time scale: %g", c.Trace.TimeScale)
	}

	if c.Trace.RiseTime < 0 {
		return errors.Errorf("invalid trace rise time: %g", c.Trace.RiseTime)
	}

	return errors.Wrap(c.AC.Validate(), "ac")
}
