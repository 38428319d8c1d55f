package performer

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/loomstream/loom/spigot"
)

type (
	// AppConfig is the serialized performance setup. YAML is the primary
	// format; JSON parses too since every JSON file is valid YAML apart
	// from some corner cases, which the loader falls back for.
	AppConfig struct {
		Left       spigot.Config `yaml:"left" json:"left"`
		Right      spigot.Config `yaml:"right" json:"right"`
		TempoBPM   int           `yaml:"tempo" json:"tempo"`
		Program    byte          `yaml:"program" json:"program"`
		Velocity   byte          `yaml:"velocity" json:"velocity"`
		Channel    byte          `yaml:"channel" json:"channel"`
		TicksPerQc int           `yaml:"ticksperquarter" json:"ticksperquarter"`
		Scale      string        `yaml:"scale" json:"scale"`
		Root       byte          `yaml:"root" json:"root"`
		Durations  string        `yaml:"durations" json:"durations"`
		Ribbon     int           `yaml:"ribbon" json:"ribbon"`
	}
)

// DefaultAppConfig is a playable pi-against-e setup in base 10.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Left:       spigot.Config{Constant: spigot.Pi, Base: 10},
		Right:      spigot.Config{Constant: spigot.E, Base: 10},
		TempoBPM:   120,
		Velocity:   100,
		TicksPerQc: 480,
		Scale:      "major",
		Root:       60,
		Durations:  "musical",
		Ribbon:     32,
	}
}

// LoadAppConfig reads a setup file, filling unset fields from the defaults.
func LoadAppConfig(path string) (AppConfig, error) {
	cfg := DefaultAppConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if yerr := yaml.Unmarshal(data, &cfg); yerr != nil {
		if jerr := json.Unmarshal(data, &cfg); jerr != nil {
			return cfg, fmt.Errorf("parse config: %w", yerr)
		}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects out-of-range settings instead of clamping them, matching
// the construction-time error policy of the rest of the system. Velocity and
// channel are the documented exceptions and clamp later, at use.
func (c AppConfig) Validate() error {
	if err := c.Left.Validate(); err != nil {
		return fmt.Errorf("left: %w", err)
	}
	if err := c.Right.Validate(); err != nil {
		return fmt.Errorf("right: %w", err)
	}
	if c.TempoBPM < 1 || c.TempoBPM > 300 {
		return fmt.Errorf("tempo %d out of range 1..300", c.TempoBPM)
	}
	if c.TicksPerQc <= 0 {
		return fmt.Errorf("ticksperquarter must be positive, got %d", c.TicksPerQc)
	}
	if c.Program > 127 {
		return fmt.Errorf("program %d out of range 0..127", c.Program)
	}
	if c.Root > 127 {
		return fmt.Errorf("root %d out of range 0..127", c.Root)
	}
	return nil
}
