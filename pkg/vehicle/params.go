package vehicle

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParams is returned when a parameter set would make the physics undefined
var ErrInvalidParams = errors.New("invalid vehicle parameters")

// Params holds the designer-chosen characteristics of a car.
// They are fixed once the vehicle is created.
type Params struct {
	// Steering
	MaxSteeringAngle   float64 `json:"max_steering_angle" mapstructure:"maxSteeringAngle"`     // radians
	SteeringAngleSpeed float64 `json:"steering_angle_speed" mapstructure:"steeringAngleSpeed"` // radians/s the wheels can turn
	SteeringInputRate  float64 `json:"steering_input_rate" mapstructure:"steeringInputRate"`   // radians/s the target moves at standstill

	// Characteristics
	MaxSpeed  float64 `json:"max_speed" mapstructure:"maxSpeed"`
	Wheelbase float64 `json:"wheelbase" mapstructure:"wheelbase"`
	Mass      float64 `json:"mass" mapstructure:"mass"`
	TireGrip  float64 `json:"tire_grip" mapstructure:"tireGrip"`

	// Pedal ramps, in pedal travel per second
	AccelRampUp   float64 `json:"accel_ramp_up" mapstructure:"accelRampUp"`
	AccelRampDown float64 `json:"accel_ramp_down" mapstructure:"accelRampDown"`
	BrakeRampUp   float64 `json:"brake_ramp_up" mapstructure:"brakeRampUp"`
	BrakeRampDown float64 `json:"brake_ramp_down" mapstructure:"brakeRampDown"`

	// Forces
	MaxAcceleration float64 `json:"max_acceleration" mapstructure:"maxAcceleration"`
	MaxBraking      float64 `json:"max_braking" mapstructure:"maxBraking"`

	// Creep speeds; forward is >= 0, reverse is <= 0
	IdleSpeedForward float64 `json:"idle_speed_forward" mapstructure:"idleSpeedForward"`
	IdleSpeedReverse float64 `json:"idle_speed_reverse" mapstructure:"idleSpeedReverse"`
}

// Validate checks every field and reports all violations at once
func (p Params) Validate() error {
	var errs []error

	positive := func(name string, v float64) {
		if !(v > 0) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Errorf("%s must be positive and finite, got %v", name, v))
		}
	}
	nonNegative := func(name string, v float64) {
		if !(v >= 0) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Errorf("%s must be non-negative and finite, got %v", name, v))
		}
	}

	// Divisors
	positive("mass", p.Mass)
	positive("wheelbase", p.Wheelbase)
	positive("max speed", p.MaxSpeed)

	nonNegative("max steering angle", p.MaxSteeringAngle)
	if p.MaxSteeringAngle >= math.Pi/2 {
		errs = append(errs, fmt.Errorf("max steering angle must be below pi/2, got %v", p.MaxSteeringAngle))
	}
	nonNegative("steering angle speed", p.SteeringAngleSpeed)
	nonNegative("steering input rate", p.SteeringInputRate)
	nonNegative("tire grip", p.TireGrip)
	nonNegative("accelerator ramp up", p.AccelRampUp)
	nonNegative("accelerator ramp down", p.AccelRampDown)
	nonNegative("brake ramp up", p.BrakeRampUp)
	nonNegative("brake ramp down", p.BrakeRampDown)
	nonNegative("max acceleration", p.MaxAcceleration)
	nonNegative("max braking", p.MaxBraking)

	if !(p.IdleSpeedForward >= 0 && p.IdleSpeedForward <= p.MaxSpeed) {
		errs = append(errs, fmt.Errorf("forward idle speed must be within [0, max speed], got %v", p.IdleSpeedForward))
	}
	if !(p.IdleSpeedReverse <= 0 && p.IdleSpeedReverse >= -p.MaxSpeed) {
		errs = append(errs, fmt.Errorf("reverse idle speed must be within [-max speed, 0], got %v", p.IdleSpeedReverse))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidParams, errors.Join(errs...))
	}
	return nil
}
