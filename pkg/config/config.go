// Package config loads teslite.cfg.json through viper and exposes the
// typed settings the game needs.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/golangdaddy/teslite/pkg/physics"
	"github.com/golangdaddy/teslite/pkg/vehicle"
)

// FileName is the config file looked up in the config directory
const FileName = "teslite.cfg.json"

// WindowConfig sizes the game window
type WindowConfig struct {
	Width  int    `json:"width" mapstructure:"width"`
	Height int    `json:"height" mapstructure:"height"`
	Title  string `json:"title" mapstructure:"title"`
}

// SimConfig controls the fixed-step clock
type SimConfig struct {
	Step       float64 `json:"step" mapstructure:"step"` // seconds
	MaxCatchUp int     `json:"maxCatchUp" mapstructure:"maxCatchUp"`
}

// Bindings maps each control to an ebiten key name such as "ArrowUp" or "P"
type Bindings struct {
	Accelerate string `json:"accelerate" mapstructure:"accelerate"`
	Brake      string `json:"brake" mapstructure:"brake"`
	SteerLeft  string `json:"steerLeft" mapstructure:"steerLeft"`
	SteerRight string `json:"steerRight" mapstructure:"steerRight"`
	Park       string `json:"park" mapstructure:"park"`
	Drive      string `json:"drive" mapstructure:"drive"`
	Reverse    string `json:"reverse" mapstructure:"reverse"`
	Exit       string `json:"exit" mapstructure:"exit"`
}

// Load reads configuration from JSON file and sets default values.
// configDir is the directory containing the config file. A missing file
// leaves the defaults in place.
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logFile", "")

	viper.SetDefault("window.width", 1024)
	viper.SetDefault("window.height", 600)
	viper.SetDefault("window.title", "Teslite")

	viper.SetDefault("sim.step", 1.0/60.0)
	viper.SetDefault("sim.maxCatchUp", 5)

	viper.SetDefault("surface.name", physics.DefaultSurface.Name)
	viper.SetDefault("vehicle.preset", vehicle.DefaultPreset)

	viper.SetDefault("controls.accelerate", "ArrowUp")
	viper.SetDefault("controls.brake", "ArrowDown")
	viper.SetDefault("controls.steerLeft", "ArrowLeft")
	viper.SetDefault("controls.steerRight", "ArrowRight")
	viper.SetDefault("controls.park", "P")
	viper.SetDefault("controls.drive", "D")
	viper.SetDefault("controls.reverse", "R")
	viper.SetDefault("controls.exit", "Escape")

	viper.SetConfigName(FileName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}

// LogLevel returns the configured log level name
func LogLevel() string {
	return viper.GetString("logLevel")
}

// LogFile returns the path of the plain-text log copy, empty for console only
func LogFile() string {
	return viper.GetString("logFile")
}

// PresetName returns the configured vehicle preset
func PresetName() string {
	return viper.GetString("vehicle.preset")
}

// VehicleParams returns the named preset with any vehicle.params overrides
// applied, validated.
func VehicleParams(preset string) (vehicle.Params, error) {
	p, err := vehicle.Preset(preset)
	if err != nil {
		return vehicle.Params{}, err
	}
	if err := viper.UnmarshalKey("vehicle.params", &p); err != nil {
		return vehicle.Params{}, fmt.Errorf("decoding vehicle.params: %w", err)
	}
	if err := p.Validate(); err != nil {
		return vehicle.Params{}, fmt.Errorf("vehicle %q: %w", preset, err)
	}
	return p, nil
}

// Surface returns the configured ground surface
func Surface() (physics.SurfaceProperties, error) {
	return physics.Surface(viper.GetString("surface.name"))
}

// Sim returns the fixed-step clock settings
func Sim() (SimConfig, error) {
	c := SimConfig{
		Step:       viper.GetFloat64("sim.step"),
		MaxCatchUp: viper.GetInt("sim.maxCatchUp"),
	}
	if !(c.Step > 0) {
		return SimConfig{}, fmt.Errorf("sim.step must be positive, got %v", c.Step)
	}
	if c.MaxCatchUp < 1 {
		return SimConfig{}, fmt.Errorf("sim.maxCatchUp must be at least 1, got %d", c.MaxCatchUp)
	}
	return c, nil
}

// Window returns the window settings
func Window() WindowConfig {
	return WindowConfig{
		Width:  viper.GetInt("window.width"),
		Height: viper.GetInt("window.height"),
		Title:  viper.GetString("window.title"),
	}
}

// Controls returns the key bindings
func Controls() Bindings {
	return Bindings{
		Accelerate: viper.GetString("controls.accelerate"),
		Brake:      viper.GetString("controls.brake"),
		SteerLeft:  viper.GetString("controls.steerLeft"),
		SteerRight: viper.GetString("controls.steerRight"),
		Park:       viper.GetString("controls.park"),
		Drive:      viper.GetString("controls.drive"),
		Reverse:    viper.GetString("controls.reverse"),
		Exit:       viper.GetString("controls.exit"),
	}
}
