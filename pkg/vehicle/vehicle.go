package vehicle

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// State is the mutable physical state of one simulated car.
// It is owned by the simulation loop and only mutated by the control
// mapper and the physics integrator, in that order, once per tick.
type State struct {
	Speed    float64    // Signed longitudinal speed; negative means travelling backwards
	Heading  float64    // World yaw in radians, accumulates without wrapping
	Position mgl64.Vec2 // World position

	SteeringAngle       float64 // Current front-wheel angle
	TargetSteeringAngle float64 // Angle the wheels are turning toward

	Accelerator float64 // Smoothed pedal level, 0 to 1
	Brake       float64 // Smoothed pedal level, 0 to 1

	Mode TransmissionMode

	params Params
}

// New creates a car at rest at the origin, in Park, facing heading 0
func New(params Params) (*State, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &State{
		Mode:   Park,
		params: params,
	}, nil
}

// Params returns the immutable characteristics of the car
func (s *State) Params() Params {
	return s.params
}

// IdleSpeed is the creep speed for the current mode
func (s *State) IdleSpeed() float64 {
	return s.Mode.IdleSpeed(s.params)
}

// ClampSteering keeps both steering angles inside the lock limits
func (s *State) ClampSteering() {
	limit := s.params.MaxSteeringAngle
	s.SteeringAngle = Clamp(s.SteeringAngle, -limit, limit)
	s.TargetSteeringAngle = Clamp(s.TargetSteeringAngle, -limit, limit)
}

// ClampSpeed keeps the speed inside [-MaxSpeed, MaxSpeed]
func (s *State) ClampSpeed() {
	s.Speed = Clamp(s.Speed, -s.params.MaxSpeed, s.params.MaxSpeed)
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
