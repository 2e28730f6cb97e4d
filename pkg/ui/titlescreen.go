package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// controlsHelp lists the default driving keys shown on the title screen
var controlsHelp = []string{
	"UP / DOWN      accelerator / brake",
	"LEFT / RIGHT   steer",
	"P  D  R        park / drive / reverse",
	"1  2  3        asphalt / gravel / ice",
	"ESC            quit",
}

// TitleScreen represents the main title screen
type TitleScreen struct {
	startTime      time.Time
	onStartPressed func() // Callback when user presses to start
}

// NewTitleScreen creates a new title screen
func NewTitleScreen(onStartPressed func()) *TitleScreen {
	return &TitleScreen{
		startTime:      time.Now(),
		onStartPressed: onStartPressed,
	}
}

// Update handles input for the title screen
func (ts *TitleScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if ts.onStartPressed != nil {
			ts.onStartPressed()
		}
	}
	return nil
}

// Draw renders the title screen
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{15, 20, 35, 255})

	elapsed := time.Since(ts.startTime).Seconds()
	centerX := float64(width) / 2
	centerY := float64(height) / 4

	// Pulsing title
	titleText := "TESLITE"
	titleScale := 6.0 * (1.0 + 0.05*math.Sin(elapsed*2.0))
	titleOp := &text.DrawOptions{}
	titleOp.GeoM.Scale(titleScale, titleScale)
	titleOp.GeoM.Translate(centerX-text.Advance(titleText, face)*titleScale/2, centerY-glyphHeight*titleScale/2)
	titleOp.ColorScale.ScaleWithColor(color.RGBA{230, 40, 50, 255})
	text.Draw(screen, titleText, face, titleOp)

	drawText(screen, "Top-down driving sandbox", centerX, centerY+70, 24, color.RGBA{180, 180, 200, 255})

	// Controls
	helpY := float64(height)/2 + 10
	for i, line := range controlsHelp {
		drawTextAt(screen, line, centerX-150, helpY+float64(i)*22, glyphHeight, color.RGBA{160, 170, 190, 255})
	}

	// Blink every 0.5 seconds
	if int(elapsed*2)%2 == 0 {
		drawText(screen, "Press ENTER or SPACE to Start", centerX, float64(height)-60, 24, color.RGBA{150, 200, 255, 255})
	}

	drawDecorativeLines(screen, width, height)
}

// drawDecorativeLines frames the title between two faint rules
func drawDecorativeLines(screen *ebiten.Image, width, height int) {
	lineColor := color.RGBA{50, 60, 80, 100}
	for _, y := range []float64{float64(height) / 8, float64(height) * 7 / 8} {
		line := ebiten.NewImage(width, 2)
		line.Fill(lineColor)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(0, y)
		screen.DrawImage(line, op)
	}
}
