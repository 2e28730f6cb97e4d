package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	carWidth  = 30.0
	carHeight = 50.0

	wheelWidth  = 6.0
	wheelHeight = 8.0

	// MaxWheelTurn is the drawn wheel angle at full lock, in radians.
	// Real lock angles are too small to see.
	MaxWheelTurn = 0.5
)

// CarSprite is a top-down car drawn nose-up, with front wheels that turn
type CarSprite struct {
	body  *ebiten.Image
	wheel *ebiten.Image
}

// NewCarSprite creates a car sprite in the given paint colour
func NewCarSprite(carColor color.Color) *CarSprite {
	body := ebiten.NewImage(int(carWidth), int(carHeight))
	body.Fill(carColor)

	// Outline
	outline := color.RGBA{20, 20, 20, 255}
	fillRect(body, 0, 0, carWidth, 2, outline)
	fillRect(body, 0, carHeight-2, carWidth, 2, outline)
	fillRect(body, 0, 0, 2, carHeight, outline)
	fillRect(body, carWidth-2, 0, 2, carHeight, outline)

	// Windshield at the front
	windshieldWidth := carWidth * 0.6
	fillRect(body, (carWidth-windshieldWidth)/2, 8, windshieldWidth, carHeight*0.2, color.RGBA{150, 200, 255, 200})

	// Headlights and taillights
	fillRect(body, 5, 0, 5, 2, color.RGBA{255, 255, 100, 255})
	fillRect(body, carWidth-10, 0, 5, 2, color.RGBA{255, 255, 100, 255})
	fillRect(body, 5, carHeight-2, 5, 2, color.RGBA{255, 0, 0, 255})
	fillRect(body, carWidth-10, carHeight-2, 5, 2, color.RGBA{255, 0, 0, 255})

	wheel := ebiten.NewImage(int(wheelWidth), int(wheelHeight))
	wheel.Fill(color.RGBA{30, 30, 30, 255})

	// Rear wheels never steer, so they are baked into the body
	rearOp := &ebiten.DrawImageOptions{}
	rearOp.GeoM.Translate(2, carHeight-wheelHeight-5)
	body.DrawImage(wheel, rearOp)
	rearOp.GeoM.Translate(carWidth-wheelWidth-4, 0)
	body.DrawImage(wheel, rearOp)

	return &CarSprite{
		body:  body,
		wheel: wheel,
	}
}

// Draw renders the car centred on (x, y) in screen pixels. heading is the
// world heading and lock the steering angle as a fraction of full lock,
// positive to the left.
func (c *CarSprite) Draw(screen *ebiten.Image, x, y, heading, lock float64) {
	rotation := SpriteRotation(heading)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-carWidth/2, -carHeight/2)
	op.GeoM.Rotate(rotation)
	op.GeoM.Translate(x, y)
	screen.DrawImage(c.body, op)

	// Front wheels turn about their hubs
	wheelTurn := -lock * MaxWheelTurn
	for _, wx := range []float64{2 + wheelWidth/2, carWidth - 2 - wheelWidth/2} {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-wheelWidth/2, -wheelHeight/2)
		op.GeoM.Rotate(wheelTurn)
		// Hub position relative to the car centre
		op.GeoM.Translate(wx-carWidth/2, 5+wheelHeight/2-carHeight/2)
		op.GeoM.Rotate(rotation)
		op.GeoM.Translate(x, y)
		screen.DrawImage(c.wheel, op)
	}
}

func fillRect(dst *ebiten.Image, x, y, w, h float64, clr color.Color) {
	rect := ebiten.NewImage(int(w), int(h))
	rect.Fill(clr)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	dst.DrawImage(rect, op)
}
