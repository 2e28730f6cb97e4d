package main

import (
	"fmt"
	"io"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/teslite/pkg/config"
	"github.com/golangdaddy/teslite/pkg/game"
	"github.com/golangdaddy/teslite/pkg/input"
	"github.com/golangdaddy/teslite/pkg/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.Load("."); err != nil {
		return err
	}

	var logFile io.Writer
	if path := config.LogFile(); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logFile = f
	}
	logger := logging.Setup(os.Stdout, logFile, config.LogLevel())

	settings, err := loadSettings()
	if err != nil {
		logger.Error().Err(err).Msg("Invalid configuration")
		return err
	}

	window := settings.Window
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)

	logger.Info().
		Str("preset", settings.Preset).
		Str("surface", settings.Surface.Name).
		Float64("step", settings.Sim.Step).
		Msg("Starting")

	// Call ebiten.RunGame to start your game loop.
	if err := ebiten.RunGame(game.NewGame(settings, logger)); err != nil {
		logger.Error().Err(err).Msg("Game loop failed")
		return err
	}
	logger.Info().Msg("Bye")
	return nil
}

// loadSettings resolves the typed settings, failing on the first bad section
func loadSettings() (game.Settings, error) {
	sim, err := config.Sim()
	if err != nil {
		return game.Settings{}, err
	}
	surface, err := config.Surface()
	if err != nil {
		return game.Settings{}, err
	}
	keys, err := input.ParseBindings(config.Controls())
	if err != nil {
		return game.Settings{}, err
	}

	// Fail early on a bad preset or override rather than in the garage
	preset := config.PresetName()
	if _, err := config.VehicleParams(preset); err != nil {
		return game.Settings{}, err
	}

	return game.Settings{
		Window:    config.Window(),
		Sim:       sim,
		Surface:   surface,
		Preset:    preset,
		Keys:      keys,
		ParamsFor: config.VehicleParams,
	}, nil
}

