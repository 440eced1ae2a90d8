// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// ImportConfig bounds what the importers are handed.
type ImportConfig struct {
	// the maximum input size in bytes accepted before parsing
	MaxBytes int64 `mapstructure:"max-bytes"`
}

// AnalyticsConfig is settings for the analytics commands.
type AnalyticsConfig struct {
	// the default GC-skew sliding window in bp
	SkewWindow int `mapstructure:"skew-window"`
}

// ToolkitConfig is settings for the design commands.
type ToolkitConfig struct {
	// the preset used when none is passed on the command line
	Preset string `mapstructure:"preset"`
}

// Config is the root-level settings struct and is a mix of settings
// available in settings.yaml and those available from the command line.
type Config struct {
	// whether to log progress and timing
	Verbose bool `mapstructure:"verbose"`

	// import limits
	Import ImportConfig `mapstructure:"import"`

	// analytics settings
	Analytics AnalyticsConfig `mapstructure:"analytics"`

	// toolkit settings
	Toolkit ToolkitConfig `mapstructure:"toolkit"`
}

// New returns a new Config struct populated by Viper settings (either
// from the local settings.yaml) and/or command line arguments.
func New() *Config {
	c := &Config{}

	if err := viper.Unmarshal(c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}

	if c.Import.MaxBytes == 0 {
		c.Import.MaxBytes = 32 << 20
	}
	if c.Analytics.SkewWindow == 0 {
		c.Analytics.SkewWindow = 100
	}

	return c
}
