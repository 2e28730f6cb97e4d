package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurface_Lookup(t *testing.T) {
	ice, err := Surface("ice")
	require.NoError(t, err)
	assert.Equal(t, 0.1, ice.FrictionCoefficient)

	_, err = Surface("lava")
	assert.ErrorIs(t, err, ErrUnknownSurface)
	assert.Contains(t, err.Error(), `"lava"`)
}

func TestSurface_DefaultIsAsphalt(t *testing.T) {
	assert.Equal(t, "asphalt", DefaultSurface.Name)
	assert.Equal(t, 1.0, DefaultSurface.FrictionCoefficient)
}

func TestSurfaceNames_OrderedByGrip(t *testing.T) {
	assert.Equal(t, []string{"asphalt", "gravel", "ice"}, SurfaceNames())
}

func TestSurfaceProperties_Validate(t *testing.T) {
	for _, name := range SurfaceNames() {
		s, err := Surface(name)
		require.NoError(t, err)
		assert.NoError(t, s.Validate(), name)
	}

	assert.NoError(t, SurfaceProperties{Name: "frictionless"}.Validate())

	for _, bad := range []float64{-0.5, math.NaN(), math.Inf(1)} {
		err := SurfaceProperties{Name: "bad", FrictionCoefficient: bad}.Validate()
		assert.Error(t, err, "%v", bad)
	}
}
