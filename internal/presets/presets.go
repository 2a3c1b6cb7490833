// Package presets defines the difficulty presets and physics tuning, with
// compiled-in defaults that an optional config/presets.yaml can override.
package presets

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"tiltmaze/internal/physics"
)

// PresetsPath is the optional presets file, relative to the process working
// directory. A missing file is not an error; defaults are used.
const PresetsPath = "config/presets.yaml"

// Difficulty identifies one of the selectable maze sizes.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Preset is one difficulty's parameters: maze cells per side and the visual
// scale the renderer applies to the whole cube.
type Preset struct {
	CellsPerSide int     `yaml:"cells_per_side"`
	VisualScale  float32 `yaml:"visual_scale"`
}

// Config is the full tunable set: per-difficulty presets plus physics
// constants. Values are fixed for the whole session once loaded.
type Config struct {
	Difficulties map[Difficulty]Preset `yaml:"difficulties"`
	Physics      physics.Tuning        `yaml:"physics"`
}

// Default returns the stock presets: easy/medium/hard at 3/4/6 cells per side.
func Default() Config {
	return Config{
		Difficulties: map[Difficulty]Preset{
			Easy:   {CellsPerSide: 3, VisualScale: 1.0},
			Medium: {CellsPerSide: 4, VisualScale: 0.85},
			Hard:   {CellsPerSide: 6, VisualScale: 0.7},
		},
		Physics: physics.DefaultTuning(),
	}
}

// Load reads PresetsPath if present, overlaying it on Default, and validates
// the result. A missing file yields the defaults; a malformed or degenerate
// file is an error so bad geometry is rejected before a level is ever built.
func Load() (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(PresetsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("presets: parse %s: %w", PresetsPath, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects presets that would produce degenerate geometry or an
// unstable integrator.
func (c Config) Validate() error {
	if len(c.Difficulties) == 0 {
		return fmt.Errorf("presets: no difficulties defined")
	}
	for name, p := range c.Difficulties {
		if p.CellsPerSide < 2 {
			return fmt.Errorf("presets: difficulty %q: cells_per_side must be >= 2, got %d", name, p.CellsPerSide)
		}
		if p.VisualScale <= 0 {
			return fmt.Errorf("presets: difficulty %q: visual_scale must be positive, got %v", name, p.VisualScale)
		}
	}
	t := c.Physics
	if t.Gravity <= 0 {
		return fmt.Errorf("presets: physics gravity must be positive, got %v", t.Gravity)
	}
	if t.Restitution < 0 || t.Restitution >= 1 {
		return fmt.Errorf("presets: physics restitution must be in [0,1), got %v", t.Restitution)
	}
	if t.Damping <= 0 || t.Damping > 1 {
		return fmt.Errorf("presets: physics damping must be in (0,1], got %v", t.Damping)
	}
	if t.MaxSubstep <= 0 || t.MaxFrameDelta <= 0 || t.MaxSubstep > t.MaxFrameDelta {
		return fmt.Errorf("presets: physics step limits invalid (substep %v, frame %v)", t.MaxSubstep, t.MaxFrameDelta)
	}
	return nil
}
