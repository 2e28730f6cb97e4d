// Package game wires the simulation into an ebiten game: title screen,
// garage and the driving view.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/golangdaddy/teslite/pkg/config"
	"github.com/golangdaddy/teslite/pkg/input"
	"github.com/golangdaddy/teslite/pkg/physics"
	"github.com/golangdaddy/teslite/pkg/ui"
	"github.com/golangdaddy/teslite/pkg/vehicle"
)

// Settings is everything the game needs from configuration
type Settings struct {
	Window  config.WindowConfig
	Sim     config.SimConfig
	Surface physics.SurfaceProperties
	Preset  string
	Keys    input.Keys

	// ParamsFor resolves a preset name into the car's parameters
	ParamsFor func(preset string) (vehicle.Params, error)
}

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// Game implements the ebiten.Game interface and manages the overall game state
type Game struct {
	settings      Settings
	currentScreen Screen
	log           zerolog.Logger
}

// NewGame creates a new game instance
func NewGame(settings Settings, logger zerolog.Logger) *Game {
	g := &Game{
		settings: settings,
		log:      logger,
	}
	g.showTitle()
	return g
}

// showTitle returns to the title screen, which leads on to the garage
func (g *Game) showTitle() {
	g.currentScreen = ui.NewTitleScreen(func() {
		g.currentScreen = ui.NewGarageScreen(g.settings.Preset, g.startDriving)
	})
}

// startDriving transitions to the driving screen with the chosen car
func (g *Game) startDriving(preset string) {
	params, err := g.settings.ParamsFor(preset)
	if err != nil {
		g.log.Error().Err(err).Str("preset", preset).Msg("Cannot build vehicle")
		g.showTitle()
		return
	}

	screen, err := NewDrivingScreen(g.settings, params, g.log)
	if err != nil {
		g.log.Error().Err(err).Str("preset", preset).Msg("Cannot start driving")
		g.showTitle()
		return
	}

	g.settings.Preset = preset
	g.currentScreen = screen
	g.log.Info().Str("preset", preset).Str("surface", g.settings.Surface.Name).Msg("Driving started")
}

// Update handles game logic updates
func (g *Game) Update() error {
	if g.currentScreen != nil {
		return g.currentScreen.Update()
	}
	return nil
}

// Draw renders the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
}

// Layout returns the game's screen dimensions
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.settings.Window.Width, g.settings.Window.Height
}
