// Package input reads the keyboard through ebiten and produces the
// per-tick control.Input snapshot.
package input

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/golangdaddy/teslite/pkg/config"
	"github.com/golangdaddy/teslite/pkg/control"
)

// KeySource reports key state for the current tick
type KeySource interface {
	IsKeyPressed(key ebiten.Key) bool
	IsKeyJustPressed(key ebiten.Key) bool
}

// Ebiten reads keys from the running game loop
type Ebiten struct{}

// IsKeyPressed reports whether key is held
func (Ebiten) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// IsKeyJustPressed reports whether key went down this tick
func (Ebiten) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// Keys is a resolved set of bindings
type Keys struct {
	Accelerate ebiten.Key
	Brake      ebiten.Key
	SteerLeft  ebiten.Key
	SteerRight ebiten.Key
	Park       ebiten.Key
	Drive      ebiten.Key
	Reverse    ebiten.Key
	Exit       ebiten.Key
}

// ParseBindings resolves ebiten key names, reporting every unknown name
func ParseBindings(b config.Bindings) (Keys, error) {
	var keys Keys
	var errs []error

	parse := func(action, name string, dst *ebiten.Key) {
		if err := dst.UnmarshalText([]byte(name)); err != nil {
			errs = append(errs, fmt.Errorf("%s: unknown key %q", action, name))
		}
	}
	parse("accelerate", b.Accelerate, &keys.Accelerate)
	parse("brake", b.Brake, &keys.Brake)
	parse("steerLeft", b.SteerLeft, &keys.SteerLeft)
	parse("steerRight", b.SteerRight, &keys.SteerRight)
	parse("park", b.Park, &keys.Park)
	parse("drive", b.Drive, &keys.Drive)
	parse("reverse", b.Reverse, &keys.Reverse)
	parse("exit", b.Exit, &keys.Exit)

	if len(errs) > 0 {
		return Keys{}, fmt.Errorf("controls: %w", errors.Join(errs...))
	}
	return keys, nil
}

// Keyboard maps bound keys to driver input
type Keyboard struct {
	keys   Keys
	source KeySource
}

// NewKeyboard creates a keyboard reading from source
func NewKeyboard(keys Keys, source KeySource) *Keyboard {
	return &Keyboard{
		keys:   keys,
		source: source,
	}
}

// Poll samples this tick's controls. Pedals and steering are held keys,
// gear selection only fires on the tick a key goes down.
func (k *Keyboard) Poll() control.Input {
	return control.Input{
		Accelerate:    k.source.IsKeyPressed(k.keys.Accelerate),
		Brake:         k.source.IsKeyPressed(k.keys.Brake),
		SteerLeft:     k.source.IsKeyPressed(k.keys.SteerLeft),
		SteerRight:    k.source.IsKeyPressed(k.keys.SteerRight),
		SelectPark:    k.source.IsKeyJustPressed(k.keys.Park),
		SelectDrive:   k.source.IsKeyJustPressed(k.keys.Drive),
		SelectReverse: k.source.IsKeyJustPressed(k.keys.Reverse),
	}
}

// ExitRequested reports whether the exit key went down this tick
func (k *Keyboard) ExitRequested() bool {
	return k.source.IsKeyJustPressed(k.keys.Exit)
}
