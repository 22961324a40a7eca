// Package config loads the settings shared by the demo programs.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"honnef.co/go/bezier"
)

// ErrInvalid is wrapped by every error returned from [Config.Validate].
var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Animation AnimationConfig `yaml:"animation"`
	Editor    EditorConfig    `yaml:"editor"`
	Hell      HellConfig      `yaml:"hell"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// AnimationConfig describes the animation the editor starts with.
type AnimationConfig struct {
	Duration float64       `yaml:"duration"` // seconds
	Loop     bool          `yaml:"loop"`
	Easing   bezier.Easing `yaml:"easing"`
	// Interior is the number of evenly spaced interior points inserted
	// between the anchors.
	Interior int `yaml:"interior"`
}

type EditorConfig struct {
	PointRadius      float64 `yaml:"point_radius"`
	SegmentTolerance float64 `yaml:"segment_tolerance"`
}

// HellConfig configures the bullet-pattern demo. Durations are in seconds.
type HellConfig struct {
	EnemyDuration  float64 `yaml:"enemy_duration"`
	BulletDuration float64 `yaml:"bullet_duration"`
	RingSize       int     `yaml:"ring_size"`
	SpawnInterval  float64 `yaml:"spawn_interval"`
	Sound          bool    `yaml:"sound"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1080,
			Height: 720,
			Title:  "bezier",
		},
		Animation: AnimationConfig{
			Duration: 2,
			Loop:     true,
			Easing:   bezier.Normal,
			Interior: 2,
		},
		Editor: EditorConfig{
			PointRadius:      8,
			SegmentTolerance: 6,
		},
		Hell: HellConfig{
			EnemyDuration:  3,
			BulletDuration: 2,
			RingSize:       12,
			SpawnInterval:  0.8,
			Sound:          true,
		},
	}
}

// LoadConfig reads a YAML file. Fields missing from the file keep their
// values from [Default].
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load returns [Default] if path is empty and calls [LoadConfig] otherwise.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadConfig(path)
}

func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case !(c.Animation.Duration > 0):
		return fmt.Errorf("%w: animation duration %g", ErrInvalid, c.Animation.Duration)
	case c.Animation.Interior < 0:
		return fmt.Errorf("%w: %d interior points", ErrInvalid, c.Animation.Interior)
	case c.Editor.PointRadius <= 0 || c.Editor.SegmentTolerance < 0:
		return fmt.Errorf("%w: editor point radius %g, segment tolerance %g",
			ErrInvalid, c.Editor.PointRadius, c.Editor.SegmentTolerance)
	case !(c.Hell.EnemyDuration > 0) || !(c.Hell.BulletDuration > 0):
		return fmt.Errorf("%w: hell durations %g and %g", ErrInvalid, c.Hell.EnemyDuration, c.Hell.BulletDuration)
	case c.Hell.RingSize < 1:
		return fmt.Errorf("%w: ring size %d", ErrInvalid, c.Hell.RingSize)
	case !(c.Hell.SpawnInterval > 0):
		return fmt.Errorf("%w: spawn interval %g", ErrInvalid, c.Hell.SpawnInterval)
	}
	return nil
}
