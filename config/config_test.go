// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestNew(t *testing.T) {
	viper.Reset()

	c := New()
	if c.Import.MaxBytes != 32<<20 {
		t.Errorf("Config.Import.MaxBytes = %d, want %d", c.Import.MaxBytes, 32<<20)
	}
	if c.Analytics.SkewWindow != 100 {
		t.Errorf("Config.Analytics.SkewWindow = %d, want 100", c.Analytics.SkewWindow)
	}
	if c.Verbose {
		t.Error("Config.Verbose = true, want false by default")
	}
	if c.Toolkit.Preset != "" {
		t.Errorf("Config.Toolkit.Preset = %q, want empty so the toolkit substitutes its own default", c.Toolkit.Preset)
	}
}

func TestNewFromSettings(t *testing.T) {
	viper.Reset()
	viper.Set("verbose", true)
	viper.Set("import.max-bytes", 1024)
	viper.Set("analytics.skew-window", 250)
	viper.Set("toolkit.preset", "multiplex")
	defer viper.Reset()

	c := New()
	if !c.Verbose {
		t.Error("Config.Verbose = false, want true")
	}
	if c.Import.MaxBytes != 1024 {
		t.Errorf("Config.Import.MaxBytes = %d, want 1024", c.Import.MaxBytes)
	}
	if c.Analytics.SkewWindow != 250 {
		t.Errorf("Config.Analytics.SkewWindow = %d, want 250", c.Analytics.SkewWindow)
	}
	if c.Toolkit.Preset != "multiplex" {
		t.Errorf("Config.Toolkit.Preset = %q, want multiplex", c.Toolkit.Preset)
	}
}
