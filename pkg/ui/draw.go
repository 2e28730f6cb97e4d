package ui

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// bitmapfont glyphs are 16px tall at scale 1
const glyphHeight = 16.0

var face = text.NewGoXFace(bitmapfont.Face)

// panelKey identifies one pre-rendered panel
type panelKey struct {
	width, height int
	bg, border    color.RGBA
	borderWidth   int
}

// panelCache keeps each panel image after its first use
type panelCache struct {
	images map[panelKey]*ebiten.Image
}

func (c *panelCache) get(key panelKey, build func() *ebiten.Image) *ebiten.Image {
	if img, ok := c.images[key]; ok {
		return img
	}
	if c.images == nil {
		c.images = make(map[panelKey]*ebiten.Image)
	}
	img := build()
	c.images[key] = img
	return img
}

var panels panelCache

// pixel is a white 1x1 image scaled and tinted for solid bars
var pixel *ebiten.Image

// drawPanel draws a filled box with a border
func drawPanel(screen *ebiten.Image, x, y, width, height float64, bgColor, borderColor color.Color, borderWidth int) {
	key := panelKey{
		width:       int(width),
		height:      int(height),
		bg:          color.RGBAModel.Convert(bgColor).(color.RGBA),
		border:      color.RGBAModel.Convert(borderColor).(color.RGBA),
		borderWidth: borderWidth,
	}
	panel := panels.get(key, func() *ebiten.Image {
		return buildPanel(key)
	})

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	screen.DrawImage(panel, op)
}

func buildPanel(k panelKey) *ebiten.Image {
	w, h := k.width, k.height
	panel := ebiten.NewImage(w, h)
	panel.Fill(k.bg)

	// Top and bottom borders
	for i := 0; i < w; i++ {
		for j := 0; j < k.borderWidth; j++ {
			panel.Set(i, j, k.border)
			panel.Set(i, h-1-j, k.border)
		}
	}
	// Left and right borders
	for i := 0; i < h; i++ {
		for j := 0; j < k.borderWidth; j++ {
			panel.Set(j, i, k.border)
			panel.Set(w-1-j, i, k.border)
		}
	}
	return panel
}

// drawBar fills a width x height rectangle at (x, y) with a solid colour
func drawBar(screen *ebiten.Image, x, y, width, height float64, fill color.Color) {
	if pixel == nil {
		pixel = ebiten.NewImage(1, 1)
		pixel.Fill(color.White)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(width, height)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(fill)
	screen.DrawImage(pixel, op)
}

// drawButton draws a button with its label centred
func drawButton(screen *ebiten.Image, label string, x, y, width, height float64, bgColor, textColor color.Color) {
	drawPanel(screen, x, y, width, height, bgColor, color.RGBA{80, 80, 100, 255}, 2)
	drawText(screen, label, x+width/2, y+height/2, glyphHeight, textColor)
}

// drawText draws text centred on (centerX, centerY)
func drawText(screen *ebiten.Image, str string, centerX, centerY float64, size float64, clr color.Color) {
	scale := size / glyphHeight
	textWidth := text.Advance(str, face) * scale
	drawTextAt(screen, str, centerX-textWidth/2, centerY, size, clr)
}

// drawTextAt draws text with its left edge at x, vertically centred on y
func drawTextAt(screen *ebiten.Image, str string, x, y float64, size float64, clr color.Color) {
	scale := size / glyphHeight
	textY := y - glyphHeight*scale/2

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, textY)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}
