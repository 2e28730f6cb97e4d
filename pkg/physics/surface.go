package physics

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrUnknownSurface is returned for a surface name missing from the catalogue
var ErrUnknownSurface = errors.New("unknown surface")

// SurfaceProperties describes the ground every car is driving on.
// It is shared read-only by all vehicles during a tick.
type SurfaceProperties struct {
	Name                string
	FrictionCoefficient float64 // Multiplier on driving and braking force; 0 is frictionless
}

var surfaces = map[string]SurfaceProperties{
	"asphalt": {Name: "asphalt", FrictionCoefficient: 1.0},
	"gravel":  {Name: "gravel", FrictionCoefficient: 0.6},
	"ice":     {Name: "ice", FrictionCoefficient: 0.1},
}

// DefaultSurface is dry asphalt
var DefaultSurface = surfaces["asphalt"]

// Surface looks up a named surface
func Surface(name string) (SurfaceProperties, error) {
	s, ok := surfaces[name]
	if !ok {
		return SurfaceProperties{}, fmt.Errorf("%w: %q", ErrUnknownSurface, name)
	}
	return s, nil
}

// SurfaceNames lists the catalogue ordered by decreasing grip
func SurfaceNames() []string {
	names := make([]string, 0, len(surfaces))
	for name := range surfaces {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return surfaces[names[i]].FrictionCoefficient > surfaces[names[j]].FrictionCoefficient
	})
	return names
}

// Validate rejects negative or non-finite friction
func (s SurfaceProperties) Validate() error {
	if !(s.FrictionCoefficient >= 0) || math.IsInf(s.FrictionCoefficient, 0) {
		return fmt.Errorf("surface %q: friction coefficient must be non-negative and finite, got %v", s.Name, s.FrictionCoefficient)
	}
	return nil
}
