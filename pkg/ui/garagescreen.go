package ui

import (
	"fmt"
	"image/color"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/golangdaddy/teslite/pkg/vehicle"
)

// GarageScreen lets the player pick a vehicle preset
type GarageScreen struct {
	names         []string
	selected      int
	onCarSelected func(name string) // Callback when a preset is chosen
}

// NewGarageScreen creates a new garage selection screen with the
// preferred preset highlighted
func NewGarageScreen(preferred string, onCarSelected func(name string)) *GarageScreen {
	names := vehicle.PresetNames()
	selected := slices.Index(names, preferred)
	if selected < 0 {
		selected = 0
	}
	return &GarageScreen{
		names:         names,
		selected:      selected,
		onCarSelected: onCarSelected,
	}
}

// Selected returns the highlighted preset name
func (gs *GarageScreen) Selected() string {
	return gs.names[gs.selected]
}

// Update handles input for the garage screen
func (gs *GarageScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		gs.Move(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		gs.Move(1)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if gs.onCarSelected != nil {
			gs.onCarSelected(gs.Selected())
		}
	}
	return nil
}

// Move shifts the highlight by delta, wrapping at both ends
func (gs *GarageScreen) Move(delta int) {
	n := len(gs.names)
	gs.selected = ((gs.selected+delta)%n + n) % n
}

// Draw renders the garage screen
func (gs *GarageScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{20, 20, 30, 255})

	centerX := float64(width) / 2
	drawText(screen, "SELECT CAR", centerX, 70, 64, color.RGBA{255, 200, 50, 255})

	startY := 150.0
	spacing := 80.0
	buttonWidth := 700.0
	buttonHeight := 60.0
	buttonX := centerX - buttonWidth/2

	for i, name := range gs.names {
		bgColor := color.RGBA{40, 40, 60, 255}
		textColor := color.RGBA{255, 255, 255, 255}
		if i == gs.selected {
			bgColor = color.RGBA{60, 100, 140, 255}
			textColor = color.RGBA{200, 240, 255, 255}
		}
		p, err := vehicle.Preset(name)
		if err != nil {
			continue
		}
		drawButton(screen, FormatPreset(name, p), buttonX, startY+float64(i)*spacing, buttonWidth, buttonHeight, bgColor, textColor)
	}

	drawText(screen, "Arrow Keys: Navigate | Enter: Select", centerX, float64(height)-50, 20, color.RGBA{150, 150, 150, 255})
}

// FormatPreset summarises a preset for the garage list
func FormatPreset(name string, p vehicle.Params) string {
	return fmt.Sprintf("%s - Top speed: %.0f | Mass: %.1f | Grip: %.1f | Lock: %.3f rad",
		name, p.MaxSpeed, p.Mass, p.TireGrip, p.MaxSteeringAngle)
}
