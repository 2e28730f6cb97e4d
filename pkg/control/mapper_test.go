package control

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/teslite/pkg/vehicle"
)

const tick = 1.0 / 60.0

func newCar(t *testing.T) *vehicle.State {
	t.Helper()
	p, err := vehicle.Preset(vehicle.DefaultPreset)
	require.NoError(t, err)
	s, err := vehicle.New(p)
	require.NoError(t, err)
	return s
}

func TestApply_ModeSelection(t *testing.T) {
	s := newCar(t)

	Apply(s, Input{SelectDrive: true}, tick)
	assert.Equal(t, vehicle.Drive, s.Mode)

	// No new press, mode stays
	Apply(s, Input{}, tick)
	assert.Equal(t, vehicle.Drive, s.Mode)

	Apply(s, Input{SelectReverse: true}, tick)
	assert.Equal(t, vehicle.Reverse, s.Mode)

	Apply(s, Input{SelectPark: true}, tick)
	assert.Equal(t, vehicle.Park, s.Mode)
}

func TestApply_ModeSelectionSameTickLastWins(t *testing.T) {
	s := newCar(t)

	Apply(s, Input{SelectPark: true, SelectDrive: true}, tick)
	assert.Equal(t, vehicle.Drive, s.Mode)

	Apply(s, Input{SelectPark: true, SelectDrive: true, SelectReverse: true}, tick)
	assert.Equal(t, vehicle.Reverse, s.Mode)
}

func TestApply_ZeroDeltaChangesNothing(t *testing.T) {
	s := newCar(t)
	s.Accelerator = 0.3
	s.Brake = 0.6
	s.TargetSteeringAngle = 0.01
	s.Speed = 12
	before := *s

	Apply(s, Input{Accelerate: true, SteerLeft: true, SelectDrive: true}, 0)
	assert.Equal(t, before, *s)
}

func TestApply_NeverTouchesKinematics(t *testing.T) {
	s := newCar(t)
	s.Mode = vehicle.Drive
	s.Speed = 17
	s.Heading = 1.5
	s.SteeringAngle = 0.005
	s.Position[0] = 4
	s.Position[1] = 9

	Apply(s, Input{Accelerate: true, Brake: true, SteerRight: true}, tick)

	assert.Equal(t, 17.0, s.Speed)
	assert.Equal(t, 1.5, s.Heading)
	assert.Equal(t, 0.005, s.SteeringAngle)
	assert.Equal(t, 4.0, s.Position.X())
	assert.Equal(t, 9.0, s.Position.Y())
}

func TestApply_AcceleratorRampMonotonic(t *testing.T) {
	s := newCar(t)

	prev := s.Accelerator
	for i := 0; i < 30; i++ {
		Apply(s, Input{Accelerate: true}, tick)
		assert.GreaterOrEqual(t, s.Accelerator, prev)
		assert.LessOrEqual(t, s.Accelerator, 1.0)
		prev = s.Accelerator
	}
	// Ramp up of 8/s reaches full travel within 1/8 s
	assert.Equal(t, 1.0, s.Accelerator)

	for i := 0; i < 30; i++ {
		Apply(s, Input{}, tick)
		assert.LessOrEqual(t, s.Accelerator, prev)
		assert.GreaterOrEqual(t, s.Accelerator, 0.0)
		prev = s.Accelerator
	}
	assert.Equal(t, 0.0, s.Accelerator)
}

func TestApply_BrakeRampAsymmetric(t *testing.T) {
	s := newCar(t)
	p := s.Params()

	Apply(s, Input{Brake: true}, tick)
	assert.InDelta(t, p.BrakeRampUp*tick, s.Brake, 1e-12)

	s.Brake = 1
	Apply(s, Input{}, tick)
	assert.InDelta(t, 1-p.BrakeRampDown*tick, s.Brake, 1e-12)
}

func TestRamp(t *testing.T) {
	tests := []struct {
		name          string
		level, target float64
		up, down, dt  float64
		want          float64
	}{
		{"rise limited by rate", 0, 1, 2, 4, 0.1, 0.2},
		{"rise clamped at target", 0.95, 1, 2, 4, 0.1, 1},
		{"fall limited by rate", 1, 0, 2, 4, 0.1, 0.6},
		{"fall clamped at target", 0.1, 0, 2, 4, 0.1, 0},
		{"already at target", 1, 1, 2, 4, 0.1, 1},
		{"huge step never overshoots", 0, 1, 2, 4, 100, 1},
		{"out of range level pulled back", 1.5, 1, 2, 4, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Ramp(tt.level, tt.target, tt.up, tt.down, tt.dt), 1e-12)
		})
	}
}

func TestApply_SteeringDirectionAndClamp(t *testing.T) {
	s := newCar(t)
	p := s.Params()

	Apply(s, Input{SteerLeft: true}, tick)
	assert.InDelta(t, p.SteeringInputRate*tick, s.TargetSteeringAngle, 1e-12)

	Apply(s, Input{SteerRight: true}, tick)
	assert.InDelta(t, 0, s.TargetSteeringAngle, 1e-12)

	for i := 0; i < 600; i++ {
		Apply(s, Input{SteerLeft: true}, tick)
		assert.LessOrEqual(t, s.TargetSteeringAngle, p.MaxSteeringAngle)
	}
	assert.Equal(t, p.MaxSteeringAngle, s.TargetSteeringAngle)

	for i := 0; i < 600; i++ {
		Apply(s, Input{SteerRight: true}, tick)
		assert.GreaterOrEqual(t, s.TargetSteeringAngle, -p.MaxSteeringAngle)
	}
	assert.Equal(t, -p.MaxSteeringAngle, s.TargetSteeringAngle)
}

func TestApply_BothTurnKeysCancel(t *testing.T) {
	s := newCar(t)
	s.TargetSteeringAngle = 0.004

	Apply(s, Input{SteerLeft: true, SteerRight: true}, tick)
	assert.InDelta(t, 0.004, s.TargetSteeringAngle, 1e-15)
}

func TestApply_ClampsExternallyModifiedTarget(t *testing.T) {
	s := newCar(t)
	s.TargetSteeringAngle = 3

	Apply(s, Input{}, tick)
	assert.Equal(t, s.Params().MaxSteeringAngle, s.TargetSteeringAngle)
}

func TestSteeringStep_DecreasesWithSpeed(t *testing.T) {
	const rate, maxSpeed = 0.1, 200.0

	atRest := SteeringStep(rate, 0, maxSpeed, tick)
	half := SteeringStep(rate, 100, maxSpeed, tick)
	full := SteeringStep(rate, -200, maxSpeed, tick)

	assert.InDelta(t, rate*tick, atRest, 1e-15)
	assert.InDelta(t, rate/1.5*tick, half, 1e-15)
	assert.InDelta(t, rate/2*tick, full, 1e-15)
	assert.Greater(t, atRest, half)
	assert.Greater(t, half, full)
	assert.Greater(t, full, 0.0)
}
