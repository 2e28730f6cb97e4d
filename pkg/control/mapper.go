// Package control turns raw driver input into smoothed actuation targets:
// gearbox mode, pedal levels and the steering target angle.
package control

import (
	"math"

	"github.com/golangdaddy/teslite/pkg/vehicle"
)

// Apply updates the mode, pedal levels and steering target of s for one tick.
// It must run before the physics integrator in the same tick and never
// touches speed, heading, position or the current steering angle.
func Apply(s *vehicle.State, in Input, dt float64) {
	if dt == 0 {
		return
	}
	p := s.Params()

	// Gear selection is edge triggered; the last request of the tick wins
	if in.SelectPark {
		s.Mode = vehicle.Park
	}
	if in.SelectDrive {
		s.Mode = vehicle.Drive
	}
	if in.SelectReverse {
		s.Mode = vehicle.Reverse
	}

	s.Accelerator = Ramp(s.Accelerator, pedalTarget(in.Accelerate), p.AccelRampUp, p.AccelRampDown, dt)
	s.Brake = Ramp(s.Brake, pedalTarget(in.Brake), p.BrakeRampUp, p.BrakeRampDown, dt)

	// Steering authority drops as speed rises
	step := SteeringStep(p.SteeringInputRate, s.Speed, p.MaxSpeed, dt)
	target := s.TargetSteeringAngle
	if in.SteerLeft {
		target += step
	}
	if in.SteerRight {
		target -= step
	}
	s.TargetSteeringAngle = vehicle.Clamp(target, -p.MaxSteeringAngle, p.MaxSteeringAngle)
}

// Ramp moves level toward target by at most up*dt when rising or down*dt
// when falling, without overshooting, and keeps the result in [0, 1].
func Ramp(level, target, up, down, dt float64) float64 {
	switch {
	case level < target:
		level += math.Min(target-level, up*dt)
	case level > target:
		level -= math.Min(level-target, down*dt)
	}
	return vehicle.Clamp(level, 0, 1)
}

// SteeringStep is how far one held turn key moves the steering target this tick
func SteeringStep(rate, speed, maxSpeed, dt float64) float64 {
	return rate / (1 + math.Abs(speed)/maxSpeed) * dt
}

func pedalTarget(held bool) float64 {
	if held {
		return 1
	}
	return 0
}
