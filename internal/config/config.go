package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/scenekit/scenekit/internal/scene"
)

type Config struct {
	Scene   SceneConfig   `toml:"scene"`
	Frame   FrameConfig   `toml:"frame"`
	Camera  CameraConfig  `toml:"camera"`
	Window  WindowConfig  `toml:"window"`
	Logging LoggingConfig `toml:"logging"`
	Profile ProfileConfig `toml:"profile"`
}

type SceneConfig struct {
	File              string `toml:"file"` // YAML scene description, empty for an empty scene
	Headless          bool   `toml:"headless"`
	MaxHierarchyDepth int    `toml:"max_hierarchy_depth"`
}

type FrameConfig struct {
	Rate      time.Duration `toml:"rate"`
	MaxFrames uint64        `toml:"max_frames"` // 0 = run until signalled
}

type CameraConfig struct {
	MoveSpeed         float32 `toml:"move_speed"`
	LookSensitivity   float32 `toml:"look_sensitivity"`
	PitchLimitDegrees float32 `toml:"pitch_limit_degrees"`
}

type WindowConfig struct {
	Title  string `toml:"title"`
	Width  uint32 `toml:"width"`
	Height uint32 `toml:"height"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type ProfileConfig struct {
	Mode string `toml:"mode"` // "", "cpu", "mem" or "allocs"
	Path string `toml:"path"` // directory for the profile output
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the configuration used when no file is present.
func Default() *Config { return defaults() }

func defaults() *Config {
	return &Config{
		Scene: SceneConfig{
			Headless:          true,
			MaxHierarchyDepth: scene.DefaultMaxHierarchyDepth,
		},
		Frame: FrameConfig{
			Rate: 16 * time.Millisecond,
		},
		Camera: CameraConfig{
			MoveSpeed:         10,
			LookSensitivity:   1,
			PitchLimitDegrees: 89,
		},
		Window: WindowConfig{
			Title:  "scenekit",
			Width:  1280,
			Height: 720,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Profile: ProfileConfig{
			Path: ".",
		},
	}
}

func (c *Config) validate() error {
	if c.Frame.Rate <= 0 {
		return fmt.Errorf("frame.rate must be positive, got %s", c.Frame.Rate)
	}
	if c.Scene.MaxHierarchyDepth < 0 {
		return fmt.Errorf("scene.max_hierarchy_depth must not be negative, got %d", c.Scene.MaxHierarchyDepth)
	}
	if c.Camera.PitchLimitDegrees <= 0 || c.Camera.PitchLimitDegrees >= 90 {
		return fmt.Errorf("camera.pitch_limit_degrees must be in (0, 90), got %g", c.Camera.PitchLimitDegrees)
	}
	switch c.Profile.Mode {
	case "", "cpu", "mem", "allocs":
	default:
		return fmt.Errorf("profile.mode must be cpu, mem or allocs, got %q", c.Profile.Mode)
	}
	return nil
}

// SceneOptions converts the [scene] section for scene.NewContext.
func (c *Config) SceneOptions() scene.Options {
	return scene.Options{
		MaxHierarchyDepth: c.Scene.MaxHierarchyDepth,
		Headless:          c.Scene.Headless,
	}
}

// CameraControls converts the [camera] section, keeping the default key map.
func (c *Config) CameraControls() scene.CameraControls {
	controls := scene.DefaultCameraControls()
	controls.MoveSpeed = c.Camera.MoveSpeed
	controls.LookSensitivity = c.Camera.LookSensitivity
	controls.PitchLimit = mgl32.DegToRad(c.Camera.PitchLimitDegrees)
	return controls
}
