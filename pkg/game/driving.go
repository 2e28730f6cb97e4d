package game

import (
	"image/color"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"github.com/golangdaddy/teslite/pkg/background"
	"github.com/golangdaddy/teslite/pkg/control"
	"github.com/golangdaddy/teslite/pkg/input"
	"github.com/golangdaddy/teslite/pkg/physics"
	"github.com/golangdaddy/teslite/pkg/render"
	"github.com/golangdaddy/teslite/pkg/sim"
	"github.com/golangdaddy/teslite/pkg/ui"
	"github.com/golangdaddy/teslite/pkg/vehicle"
)

const (
	playerID = "player"
	tileSize = 64

	// cameraEase is the share of the gap to the car the camera closes per frame
	cameraEase = 0.1
)

// surfaceKeys switch the ground between ticks
var surfaceKeys = []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3}

// DrivingScreen runs the simulation and draws the player's car
type DrivingScreen struct {
	world    *sim.World
	player   *vehicle.State
	clock    *sim.Clock
	keyboard *input.Keyboard

	// Gear requests seen on frames that ran no step
	pending control.Input

	camera    *render.Camera
	sprite    *render.CarSprite
	hud       *ui.HUD
	generator *background.Generator
	ground    *ebiten.Image

	log zerolog.Logger
}

// NewDrivingScreen creates a world holding one car built from params
func NewDrivingScreen(settings Settings, params vehicle.Params, logger zerolog.Logger) (*DrivingScreen, error) {
	world, err := sim.NewWorld(settings.Surface, sim.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	player, err := world.AddVehicle(playerID, params)
	if err != nil {
		return nil, err
	}

	ds := &DrivingScreen{
		world:     world,
		player:    player,
		clock:     sim.NewClock(settings.Sim.Step, settings.Sim.MaxCatchUp),
		keyboard:  input.NewKeyboard(settings.Keys, input.Ebiten{}),
		camera:    render.NewCamera(settings.Window.Width, settings.Window.Height),
		sprite:    render.NewCarSprite(color.RGBA{220, 20, 20, 255}),
		hud:       ui.NewHUD(settings.Window.Width, settings.Window.Height),
		generator: background.NewGenerator(tileSize),
		log:       logger,
	}
	ds.ground = ds.generator.GenerateGround(settings.Surface.Name, 1)
	return ds, nil
}

// Update polls the keyboard and advances the simulation by the steps due
func (ds *DrivingScreen) Update() error {
	if ds.keyboard.ExitRequested() {
		ds.log.Info().Msg("Exit requested")
		return ebiten.Termination
	}

	// Surface changes land between steps
	for i, key := range surfaceKeys {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		if err := ds.selectSurface(physics.SurfaceNames()[i]); err != nil {
			return err
		}
	}

	in := ds.keyboard.Poll()
	ds.pending.SelectPark = ds.pending.SelectPark || in.SelectPark
	ds.pending.SelectDrive = ds.pending.SelectDrive || in.SelectDrive
	ds.pending.SelectReverse = ds.pending.SelectReverse || in.SelectReverse

	steps := ds.clock.Tick(time.Now())
	for i := 0; i < steps; i++ {
		in.SelectPark, in.SelectDrive, in.SelectReverse = ds.pending.SelectPark, ds.pending.SelectDrive, ds.pending.SelectReverse
		if err := ds.world.Step(ds.clock.Step(), map[string]control.Input{playerID: in}); err != nil {
			return err
		}
		// A selection fires once
		ds.pending = control.Input{}
	}

	ds.camera.Follow(ds.player.Position, cameraEase)
	return nil
}

func (ds *DrivingScreen) selectSurface(name string) error {
	surface, err := physics.Surface(name)
	if err != nil {
		return err
	}
	if err := ds.world.SetSurface(surface); err != nil {
		return err
	}
	ds.ground = ds.generator.GenerateGround(surface.Name, 1)
	return nil
}

// Draw renders the ground, the car and the HUD
func (ds *DrivingScreen) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	// Screen top-left corner in ground pixels, with y pointing down
	zoom := ds.camera.Zoom
	originX := ds.camera.Center.X()*zoom - float64(ds.camera.Width)/2
	originY := -ds.camera.Center.Y()*zoom - float64(ds.camera.Height)/2
	background.DrawTiled(screen, ds.ground, originX, originY)

	t := ds.player.Telemetry()
	x, y := ds.camera.WorldToScreen(mgl64.Vec2{t.X, t.Y})
	ds.sprite.Draw(screen, x, y, t.Heading, ui.SteeringLock(t))

	ds.hud.Draw(screen, t, ds.world.Surface())
}
