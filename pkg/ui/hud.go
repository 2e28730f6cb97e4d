package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/teslite/pkg/physics"
	"github.com/golangdaddy/teslite/pkg/vehicle"
)

var (
	hudBackground = color.RGBA{20, 20, 30, 200}
	hudBorder     = color.RGBA{100, 100, 120, 255}
	hudText       = color.RGBA{220, 220, 230, 255}
	brakeColor    = color.RGBA{255, 90, 70, 255}
)

// HUD draws the driver readouts over the driving view
type HUD struct {
	screenWidth  int
	screenHeight int

	rim   *ebiten.Image
	wheel *ebiten.Image
}

// NewHUD creates a HUD for a screen of the given size
func NewHUD(screenWidth, screenHeight int) *HUD {
	return &HUD{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
	}
}

// Draw renders the readouts for one car
func (h *HUD) Draw(screen *ebiten.Image, t vehicle.Telemetry, surface physics.SurfaceProperties) {
	x, y := 20.0, 20.0
	width, height := 260.0, 170.0
	drawPanel(screen, x, y, width, height, hudBackground, hudBorder, 2)

	lines := []string{
		t.AngleLabel(),
		t.SpeedLabel(),
		t.ModeLabel(),
		SurfaceLabel(surface),
	}
	for i, line := range lines {
		drawTextAt(screen, line, x+12, y+20+float64(i)*22, glyphHeight, hudText)
	}

	// Pedal travel
	drawTextAt(screen, "ACC", x+12, y+116, glyphHeight, hudText)
	drawGauge(screen, x+60, y+108, width-75, 14, t.AcceleratorPercent/100, GaugeColor(t.AcceleratorPercent/100))
	drawTextAt(screen, "BRK", x+12, y+142, glyphHeight, hudText)
	drawGauge(screen, x+60, y+134, width-75, 14, t.BrakePercent/100, brakeColor)

	h.drawSteeringIndicator(screen, t)
}

// SurfaceLabel formats the ground readout
func SurfaceLabel(s physics.SurfaceProperties) string {
	return fmt.Sprintf("Surface : %s (%.2f)", s.Name, s.FrictionCoefficient)
}

// GaugeColor shades a gauge from green through yellow to red as fraction goes 0 to 1
func GaugeColor(fraction float64) color.RGBA {
	fraction = vehicle.Clamp(fraction, 0, 1)
	if fraction < 0.5 {
		ratio := fraction / 0.5
		return color.RGBA{uint8(100 + ratio*155), 255, 100, 255}
	}
	ratio := (fraction - 0.5) / 0.5
	return color.RGBA{255, uint8(255 - ratio*155), uint8(100 - ratio*100), 255}
}

// drawGauge draws a horizontal bar filled to fraction
func drawGauge(screen *ebiten.Image, x, y, width, height, fraction float64, fill color.Color) {
	drawPanel(screen, x, y, width, height, color.RGBA{40, 40, 40, 255}, color.RGBA{150, 150, 150, 255}, 1)

	filled := int(width * vehicle.Clamp(fraction, 0, 1))
	if filled <= 0 {
		return
	}
	drawBar(screen, x, y, float64(filled), height, fill)
}

const (
	wheelSize   = 70
	wheelRadius = 30.0
)

// plotDot sets a 5x5 dot centred on (x, y), clipped to the image
func plotDot(img *ebiten.Image, x, y int, c color.Color) {
	for dx := -2; dx <= 2; dx++ {
		for dy := -2; dy <= 2; dy++ {
			if x+dx >= 0 && x+dx < wheelSize && y+dy >= 0 && y+dy < wheelSize {
				img.Set(x+dx, y+dy, c)
			}
		}
	}
}

// drawSteeringIndicator draws a wheel in the bottom-right corner turned by
// the current steering lock
func (h *HUD) drawSteeringIndicator(screen *ebiten.Image, t vehicle.Telemetry) {
	if h.rim == nil {
		h.rim = ebiten.NewImage(wheelSize, wheelSize)
		for angle := 0.0; angle < 2*math.Pi; angle += 0.1 {
			plotDot(h.rim, wheelSize/2+int(wheelRadius*math.Cos(angle)), wheelSize/2+int(wheelRadius*math.Sin(angle)), color.RGBA{100, 100, 100, 255})
		}
		h.wheel = ebiten.NewImage(wheelSize, wheelSize)
	}
	h.wheel.Clear()
	h.wheel.DrawImage(h.rim, nil)

	// Spoke: green when centred, red when turned. Left lock turns it anticlockwise.
	lock := SteeringLock(t)
	indicator := color.RGBA{50, 255, 50, 255}
	if math.Abs(lock) > 0.1 {
		indicator = color.RGBA{255, 50, 50, 255}
	}
	lineAngle := -lock * math.Pi / 2
	for s := 0.0; s <= 1.0; s += 0.02 {
		l := (wheelRadius - 5) * s
		plotDot(h.wheel, wheelSize/2+int(l*math.Sin(lineAngle)), wheelSize/2-int(l*math.Cos(lineAngle)), indicator)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(h.screenWidth-80)-wheelSize/2, float64(h.screenHeight-80)-wheelSize/2)
	screen.DrawImage(h.wheel, op)
}

// SteeringLock is the steering angle as a fraction of full lock, positive left
func SteeringLock(t vehicle.Telemetry) float64 {
	if t.MaxSteeringAngle == 0 {
		return 0
	}
	return vehicle.Clamp(t.SteeringAngle/t.MaxSteeringAngle, -1, 1)
}
