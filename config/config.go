package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// -- config

const envPrefix = "WOLFCORE"

// Config holds every tunable of the renderer and simulation. It is loaded once at
// startup and handed by value to whatever needs it.
type Config struct {
	MapSize  int      `mapstructure:"map_size"`
	Render   Render   `mapstructure:"render"`
	Movement Movement `mapstructure:"movement"`
	Timing   Timing   `mapstructure:"timing"`
	Log      Log      `mapstructure:"log"`
}

type Render struct {
	ViewportWidth   int     `mapstructure:"viewport_width"`
	ViewportHeight  int     `mapstructure:"viewport_height"`
	TextureWidth    int     `mapstructure:"texture_width"`
	TextureHeight   int     `mapstructure:"texture_height"`
	FiringTolerance int     `mapstructure:"firing_tolerance"`
	CeilingColor    uint32  `mapstructure:"ceiling_color"`
	FloorColor      uint32  `mapstructure:"floor_color"`
	Zoom            float64 `mapstructure:"zoom"`
	// door panels sit this far into their cell
	DoorRecess float64 `mapstructure:"door_recess"`
}

type Movement struct {
	// tiles per second
	MovementSpeed float64 `mapstructure:"movement_speed"`
	// radians per second
	RotationSpeed  float64 `mapstructure:"rotation_speed"`
	ActionDistance float64 `mapstructure:"action_distance"`
	PlayerRadius   float64 `mapstructure:"player_radius"`
}

// Timing values are milliseconds.
type Timing struct {
	DoorOpeningMs  float64 `mapstructure:"door_opening_ms"`
	DoorOpenMs     float64 `mapstructure:"door_open_ms"`
	DoorClosingMs  float64 `mapstructure:"door_closing_ms"`
	WeaponFrameMs  float64 `mapstructure:"weapon_frame_ms"`
	DemoStepMs     float64 `mapstructure:"demo_step_ms"`
	DemoHoldFrames int     `mapstructure:"demo_hold_frames"`
}

type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ActionReach is how far away a door can be and still be opened. Rendered door
// distances include the recess, so the allowance is added here.
func (c Config) ActionReach() float64 {
	return c.Movement.ActionDistance + c.Render.DoorRecess
}

var defaults = map[string]interface{}{
	"map_size":                 64,
	"render.viewport_width":    304 * 2,
	"render.viewport_height":   152 * 2,
	"render.texture_width":     64,
	"render.texture_height":    64,
	"render.firing_tolerance":  40,
	"render.ceiling_color":     0xFF393939,
	"render.floor_color":       0xFF737373,
	"render.zoom":              2.0,
	"render.door_recess":       0.5,
	"movement.movement_speed":  6.0,
	"movement.rotation_speed":  4.0,
	"movement.action_distance": 0.75,
	"movement.player_radius":   0.5,
	"timing.door_opening_ms":   1000.0,
	"timing.door_open_ms":      5000.0,
	"timing.door_closing_ms":   1000.0,
	"timing.weapon_frame_ms":   100.0,
	"timing.demo_step_ms":      500.0,
	"timing.demo_hold_frames":  4,
	"log.level":                "info",
	"log.format":               "text",
}

func newViper() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Default returns the built-in configuration (environment overrides still apply).
func Default() Config {
	cfg, err := unmarshal(newViper())
	if err != nil {
		// defaults are static, a failure here is a programming error
		panic(err)
	}
	return cfg
}

// Load reads the config file at path (if any) on top of the defaults and then
// applies WOLFCORE_* environment overrides.
func Load(path string) (Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("config file %s not found: %w", path, err)
			}
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}
	return unmarshal(v)
}

func unmarshal(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the renderer cannot work with.
func (c Config) Validate() error {
	if c.Render.ViewportWidth <= 0 || c.Render.ViewportHeight <= 0 {
		return fmt.Errorf("invalid viewport %dx%d", c.Render.ViewportWidth, c.Render.ViewportHeight)
	}
	// texture rows are wrapped with a bitmask
	th := c.Render.TextureHeight
	if th <= 0 || th&(th-1) != 0 {
		return fmt.Errorf("texture height %d is not a power of two", th)
	}
	if c.Render.DoorRecess < 0 || c.Render.DoorRecess >= 1 {
		return fmt.Errorf("door recess %g outside [0, 1)", c.Render.DoorRecess)
	}
	if c.Render.TextureWidth <= 0 {
		return fmt.Errorf("invalid texture width %d", c.Render.TextureWidth)
	}
	if c.Timing.DoorOpeningMs <= 0 || c.Timing.DoorClosingMs <= 0 || c.Timing.DoorOpenMs <= 0 {
		return errors.New("door timings must be positive")
	}
	if c.MapSize <= 0 {
		return fmt.Errorf("invalid map size %d", c.MapSize)
	}
	return nil
}
