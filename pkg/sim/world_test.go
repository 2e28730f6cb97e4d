package sim

import (
	"bytes"
	"fmt"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/teslite/pkg/control"
	"github.com/golangdaddy/teslite/pkg/physics"
	"github.com/golangdaddy/teslite/pkg/vehicle"
)

const tick = 1.0 / 60.0

func preset(t *testing.T, name string) vehicle.Params {
	t.Helper()
	p, err := vehicle.Preset(name)
	require.NoError(t, err)
	return p
}

func TestNewWorld_RejectsBadSurface(t *testing.T) {
	_, err := NewWorld(physics.SurfaceProperties{Name: "bad", FrictionCoefficient: -1})
	assert.Error(t, err)
}

func TestAddVehicle(t *testing.T) {
	w, err := NewWorld(physics.DefaultSurface)
	require.NoError(t, err)

	s, err := w.AddVehicle("player", preset(t, "teslite"))
	require.NoError(t, err)
	assert.Equal(t, vehicle.Park, s.Mode)

	got, ok := w.Vehicle("player")
	require.True(t, ok)
	assert.Same(t, s, got)

	_, err = w.AddVehicle("player", preset(t, "roadster"))
	assert.ErrorIs(t, err, ErrDuplicateVehicle)

	_, err = w.AddVehicle("broken", vehicle.Params{})
	assert.ErrorIs(t, err, vehicle.ErrInvalidParams)

	assert.Equal(t, 1, w.Len())
	_, ok = w.Vehicle("broken")
	assert.False(t, ok)
}

func TestStep_RejectsInvalidDelta(t *testing.T) {
	w, err := NewWorld(physics.DefaultSurface)
	require.NoError(t, err)

	for _, dt := range []float64{-tick, math.NaN(), math.Inf(1)} {
		assert.ErrorIs(t, w.Step(dt, nil), ErrInvalidDelta, "%v", dt)
	}
	assert.NoError(t, w.Step(0, nil))
}

func TestStep_RunsMapperThenIntegrator(t *testing.T) {
	w, err := NewWorld(physics.DefaultSurface)
	require.NoError(t, err)
	s, err := w.AddVehicle("player", preset(t, "teslite"))
	require.NoError(t, err)

	// Selecting Drive takes effect in the same tick's integration
	require.NoError(t, w.Step(tick, map[string]control.Input{"player": {SelectDrive: true}}))
	assert.Equal(t, vehicle.Drive, s.Mode)
	assert.InDelta(t, 30*tick, s.Speed, 1e-12)

	// The first accelerator tick already pushes
	prev := s.Speed
	require.NoError(t, w.Step(tick, map[string]control.Input{"player": {Accelerate: true}}))
	assert.Greater(t, s.Speed, prev)
}

func TestStep_VehiclesAreIndependent(t *testing.T) {
	w, err := NewWorld(physics.DefaultSurface)
	require.NoError(t, err)
	a, err := w.AddVehicle("a", preset(t, "teslite"))
	require.NoError(t, err)
	b, err := w.AddVehicle("b", preset(t, "teslite"))
	require.NoError(t, err)

	inputs := map[string]control.Input{
		"a":     {SelectDrive: true},
		"ghost": {SelectReverse: true},
	}
	require.NoError(t, w.Step(tick, inputs))

	assert.Equal(t, vehicle.Drive, a.Mode)
	assert.Equal(t, vehicle.Park, b.Mode)
	assert.Equal(t, 0.0, b.Speed)
}

func TestStep_ParallelMatchesSequential(t *testing.T) {
	build := func(opts ...Option) *World {
		w, err := NewWorld(physics.DefaultSurface, opts...)
		require.NoError(t, err)
		for i, name := range []string{"teslite", "roadster", "pickup", "teslite"} {
			_, err := w.AddVehicle(fmt.Sprintf("car-%d", i), preset(t, name))
			require.NoError(t, err)
		}
		return w
	}
	seq := build()
	par := build(WithParallel(3))

	script := func(i int) map[string]control.Input {
		return map[string]control.Input{
			"car-0": {SelectDrive: i == 0, Accelerate: true, SteerLeft: i%3 == 0},
			"car-1": {SelectReverse: i == 0, Accelerate: i%2 == 0},
			"car-2": {SelectDrive: i == 0, Brake: i > 60},
			"car-3": {SelectDrive: i == 10, SteerRight: true},
		}
	}
	for i := 0; i < 240; i++ {
		require.NoError(t, seq.Step(tick, script(i)))
		require.NoError(t, par.Step(tick, script(i)))
	}

	assert.Equal(t, seq.Snapshot(), par.Snapshot())
}

func TestStep_LogsModeChanges(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWorld(physics.DefaultSurface, WithLogger(zerolog.New(&buf)))
	require.NoError(t, err)
	_, err = w.AddVehicle("player", preset(t, "teslite"))
	require.NoError(t, err)

	require.NoError(t, w.Step(tick, map[string]control.Input{"player": {SelectReverse: true}}))
	assert.Contains(t, buf.String(), `"vehicle":"player"`)
	assert.Contains(t, buf.String(), `"from":"Park"`)
	assert.Contains(t, buf.String(), `"to":"Reverse"`)

	buf.Reset()
	require.NoError(t, w.Step(tick, map[string]control.Input{"player": {SelectReverse: true}}))
	assert.NotContains(t, buf.String(), "Mode changed")
}

func TestSetSurface(t *testing.T) {
	w, err := NewWorld(physics.DefaultSurface)
	require.NoError(t, err)
	s, err := w.AddVehicle("player", preset(t, "teslite"))
	require.NoError(t, err)
	s.Mode = vehicle.Drive
	s.Speed = 50

	assert.Error(t, w.SetSurface(physics.SurfaceProperties{Name: "bad", FrictionCoefficient: math.NaN()}))
	assert.Equal(t, physics.DefaultSurface, w.Surface())

	require.NoError(t, w.SetSurface(physics.SurfaceProperties{Name: "frictionless"}))
	for i := 0; i < 60; i++ {
		require.NoError(t, w.Step(tick, nil))
	}
	assert.Equal(t, 50.0, s.Speed)
}

func TestSnapshot(t *testing.T) {
	w, err := NewWorld(physics.DefaultSurface)
	require.NoError(t, err)
	_, err = w.AddVehicle("player", preset(t, "teslite"))
	require.NoError(t, err)
	_, err = w.AddVehicle("rival", preset(t, "pickup"))
	require.NoError(t, err)

	require.NoError(t, w.Step(tick, map[string]control.Input{"rival": {SelectDrive: true}}))

	snap := w.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, "Park", snap["player"].Mode)
	assert.Equal(t, "Drive", snap["rival"].Mode)
	assert.Greater(t, snap["rival"].Speed, 0.0)
	assert.Equal(t, 0.025, snap["rival"].MaxSteeringAngle)
}
