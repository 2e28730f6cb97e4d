// Package sim owns the cars and the ground they drive on, and steps them
// through control mapping and physics once per tick.
package sim

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/golangdaddy/teslite/pkg/control"
	"github.com/golangdaddy/teslite/pkg/physics"
	"github.com/golangdaddy/teslite/pkg/vehicle"
)

var (
	// ErrInvalidDelta is returned by Step for a negative or non-finite dt
	ErrInvalidDelta = errors.New("invalid time step")
	// ErrDuplicateVehicle is returned when a vehicle id is already taken
	ErrDuplicateVehicle = errors.New("vehicle already exists")
)

type entry struct {
	id    string
	state *vehicle.State
}

// World is a set of independent vehicles sharing one surface
type World struct {
	mu       sync.Mutex
	surface  physics.SurfaceProperties
	vehicles []entry
	index    map[string]int

	parallel int
	log      zerolog.Logger
}

// Option configures a World
type Option func(*World)

// WithLogger sets the logger used for mode changes and surface swaps
func WithLogger(l zerolog.Logger) Option {
	return func(w *World) {
		w.log = l
	}
}

// WithParallel steps up to limit vehicles concurrently. A limit below 2
// keeps stepping sequential.
func WithParallel(limit int) Option {
	return func(w *World) {
		w.parallel = limit
	}
}

// NewWorld creates an empty world on the given surface
func NewWorld(surface physics.SurfaceProperties, opts ...Option) (*World, error) {
	if err := surface.Validate(); err != nil {
		return nil, err
	}
	w := &World{
		surface: surface,
		index:   make(map[string]int),
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// AddVehicle creates a parked car at the origin under id
func (w *World) AddVehicle(id string, params vehicle.Params) (*vehicle.State, error) {
	s, err := vehicle.New(params)
	if err != nil {
		return nil, fmt.Errorf("adding vehicle %q: %w", id, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.index[id]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateVehicle, id)
	}
	w.index[id] = len(w.vehicles)
	w.vehicles = append(w.vehicles, entry{id: id, state: s})

	w.log.Debug().Str("vehicle", id).Msg("Vehicle added")
	return s, nil
}

// Vehicle returns the state of a vehicle by id
func (w *World) Vehicle(id string) (*vehicle.State, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	i, ok := w.index[id]
	if !ok {
		return nil, false
	}
	return w.vehicles[i].state, true
}

// Len returns the number of vehicles
func (w *World) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.vehicles)
}

// Surface returns the current surface
func (w *World) Surface() physics.SurfaceProperties {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.surface
}

// SetSurface swaps the ground for every vehicle. It waits for any running
// step, so the surface never changes inside a tick.
func (w *World) SetSurface(s physics.SurfaceProperties) error {
	if err := s.Validate(); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if s != w.surface {
		w.log.Info().Str("from", w.surface.Name).Str("to", s.Name).Msg("Surface changed")
	}
	w.surface = s
	return nil
}

// Step advances every vehicle by dt. Each car runs its control mapper
// then its integrator; cars without an entry in inputs get no controls
// pressed. Inputs for unknown ids are ignored.
func (w *World) Step(dt float64, inputs map[string]control.Input) error {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidDelta, dt)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	before := make([]vehicle.TransmissionMode, len(w.vehicles))
	for i, e := range w.vehicles {
		before[i] = e.state.Mode
	}

	surface := w.surface
	tick := func(e entry) {
		control.Apply(e.state, inputs[e.id], dt)
		physics.Integrate(e.state, surface, dt)
	}

	if w.parallel > 1 && len(w.vehicles) > 1 {
		var g errgroup.Group
		g.SetLimit(w.parallel)
		for _, e := range w.vehicles {
			g.Go(func() error {
				tick(e)
				return nil
			})
		}
		// Ticks cannot fail
		_ = g.Wait()
	} else {
		for _, e := range w.vehicles {
			tick(e)
		}
	}

	for i, e := range w.vehicles {
		if e.state.Mode != before[i] {
			w.log.Info().
				Str("vehicle", e.id).
				Stringer("from", before[i]).
				Stringer("to", e.state.Mode).
				Msg("Mode changed")
		}
	}
	return nil
}

// Snapshot exports the telemetry of every vehicle
func (w *World) Snapshot() map[string]vehicle.Telemetry {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make(map[string]vehicle.Telemetry, len(w.vehicles))
	for _, e := range w.vehicles {
		out[e.id] = e.state.Telemetry()
	}
	return out
}
