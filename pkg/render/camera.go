// Package render draws the simulated cars in a top-down view.
package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera maps world coordinates (y up) to screen pixels (y down),
// keeping Center in the middle of the screen.
type Camera struct {
	Center mgl64.Vec2
	Width  int
	Height int
	Zoom   float64 // Pixels per world unit
}

// NewCamera creates a camera for a screen of the given size
func NewCamera(width, height int) *Camera {
	return &Camera{
		Width:  width,
		Height: height,
		Zoom:   1,
	}
}

// Follow eases the camera toward target. A rate of 1 snaps onto it.
func (c *Camera) Follow(target mgl64.Vec2, rate float64) {
	c.Center = c.Center.Add(target.Sub(c.Center).Mul(rate))
}

// WorldToScreen converts a world position to screen pixels
func (c *Camera) WorldToScreen(p mgl64.Vec2) (float64, float64) {
	d := p.Sub(c.Center).Mul(c.Zoom)
	return float64(c.Width)/2 + d.X(), float64(c.Height)/2 - d.Y()
}

// SpriteRotation converts a world heading into the screen rotation of a
// sprite drawn nose-up.
func SpriteRotation(heading float64) float64 {
	return math.Pi/2 - heading
}
