package vehicle

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownPreset is returned when a preset name is not in the catalogue
var ErrUnknownPreset = errors.New("unknown vehicle preset")

// DefaultPreset is the car offered first in the garage
const DefaultPreset = "teslite"

// presets holds the built-in catalogue of cars
var presets = map[string]Params{
	// Balanced hatchback, tuned for a 1/60 s tick
	"teslite": {
		MaxSteeringAngle:   0.02,
		SteeringAngleSpeed: 2.0,
		SteeringInputRate:  0.1,
		MaxSpeed:           200.0,
		Wheelbase:          2.5,
		Mass:               1.0,
		TireGrip:           1.0,
		AccelRampUp:        8.0,
		AccelRampDown:      8.0,
		BrakeRampUp:        40.0,
		BrakeRampDown:      10.0,
		MaxAcceleration:    80.0,
		MaxBraking:         300.0,
		IdleSpeedForward:   30.0,
		IdleSpeedReverse:   -30.0,
	},
	// Light sports car - quick steering, sticky tyres
	"roadster": {
		MaxSteeringAngle:   0.03,
		SteeringAngleSpeed: 3.0,
		SteeringInputRate:  0.15,
		MaxSpeed:           260.0,
		Wheelbase:          2.3,
		Mass:               0.8,
		TireGrip:           1.2,
		AccelRampUp:        10.0,
		AccelRampDown:      10.0,
		BrakeRampUp:        40.0,
		BrakeRampDown:      12.0,
		MaxAcceleration:    80.0,
		MaxBraking:         320.0,
		IdleSpeedForward:   30.0,
		IdleSpeedReverse:   -30.0,
	},
	// Heavy truck - slow to respond, long wheelbase
	"pickup": {
		MaxSteeringAngle:   0.025,
		SteeringAngleSpeed: 1.5,
		SteeringInputRate:  0.08,
		MaxSpeed:           160.0,
		Wheelbase:          3.6,
		Mass:               1.8,
		TireGrip:           0.9,
		AccelRampUp:        5.0,
		AccelRampDown:      6.0,
		BrakeRampUp:        30.0,
		BrakeRampDown:      8.0,
		MaxAcceleration:    90.0,
		MaxBraking:         280.0,
		IdleSpeedForward:   20.0,
		IdleSpeedReverse:   -20.0,
	},
}

// Preset returns the parameters of a named car
func Preset(name string) (Params, error) {
	p, ok := presets[name]
	if !ok {
		return Params{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return p, nil
}

// PresetNames lists the catalogue in alphabetical order
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
