// Package physics advances a car's steering, speed, heading and position
// from its actuation state using a kinematic bicycle model.
package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/golangdaddy/teslite/pkg/vehicle"
)

const (
	// BrakeCoefficient shapes the brake actuator curve 1 - exp(-k*b)
	BrakeCoefficient = 3.0

	// SteeringEpsilon is the smallest wheel angle that produces yaw
	SteeringEpsilon = 1e-6
)

// Integrate advances s by dt seconds on the given surface.
// It runs after control.Apply in the same tick and is defined for every
// state a validated vehicle can reach.
func Integrate(s *vehicle.State, surface SurfaceProperties, dt float64) {
	if dt == 0 {
		return
	}
	p := s.Params()

	relaxSteering(s, p, dt)

	// Park holds the car: no forces, no motion
	if s.Mode.HoldsVehicle() {
		s.Speed = 0
		return
	}

	integrateSpeed(s, p, surface, dt)
	advance(s, p, dt)
}

// relaxSteering turns the wheels toward the target at a capped rate,
// snapping onto it once the remaining gap fits in one step.
func relaxSteering(s *vehicle.State, p vehicle.Params, dt float64) {
	gap := s.TargetSteeringAngle - s.SteeringAngle
	maxStep := p.SteeringAngleSpeed * dt
	if math.Abs(gap) <= maxStep {
		s.SteeringAngle = s.TargetSteeringAngle
	} else {
		s.SteeringAngle += math.Copysign(maxStep, gap)
	}
	s.SteeringAngle = vehicle.Clamp(s.SteeringAngle, -p.MaxSteeringAngle, p.MaxSteeringAngle)
}

// integrateSpeed applies the pedal forces, or the idle pull when both
// pedals are released, scaled by ground friction, tyre grip and mass.
func integrateSpeed(s *vehicle.State, p vehicle.Params, surface SurfaceProperties, dt float64) {
	// Ground and tyres jointly limit the force reaching the road
	gain := surface.FrictionCoefficient * p.TireGrip / p.Mass

	if s.Accelerator == 0 && s.Brake == 0 {
		// Pedals released: proportional pull toward the creep speed
		idle := s.IdleSpeed()
		pull := gain * dt
		if pull >= 1 {
			s.Speed = idle
		} else {
			s.Speed += (idle - s.Speed) * pull
		}
		s.ClampSpeed()
		return
	}

	drive := s.Accelerator * p.MaxAcceleration * s.Mode.Direction()
	braking := BrakeResponse(s.Brake) * p.MaxBraking * opposing(s.Speed)

	s.Speed += (drive + braking) * gain * dt
	s.ClampSpeed()
}

// advance integrates heading and position with the bicycle model
func advance(s *vehicle.State, p vehicle.Params, dt float64) {
	s.Heading += YawRate(s.Speed, s.SteeringAngle, p.Wheelbase) * dt

	forward := mgl64.Vec2{math.Cos(s.Heading), math.Sin(s.Heading)}
	s.Position = s.Position.Add(forward.Mul(s.Speed * dt))
}

// YawRate is the heading change per second for a given speed and wheel angle
func YawRate(speed, steeringAngle, wheelbase float64) float64 {
	if math.Abs(steeringAngle) <= SteeringEpsilon {
		return 0
	}
	return speed / wheelbase * math.Tan(steeringAngle)
}

// BrakeResponse maps pedal travel to braking intensity. Small travel bites
// hard, full travel saturates below 1.
func BrakeResponse(brake float64) float64 {
	return 1 - math.Exp(-BrakeCoefficient*brake)
}

// opposing points from speed toward zero
func opposing(speed float64) float64 {
	switch {
	case speed > 0:
		return -1
	case speed < 0:
		return 1
	}
	return 0
}
