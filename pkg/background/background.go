// Package background generates the ground texture the cars drive over.
package background

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
)

// Palette is the colouring of one ground surface
type Palette struct {
	Base    color.RGBA
	Speckle color.RGBA
	Grid    color.RGBA
}

var palettes = map[string]Palette{
	"asphalt": {
		Base:    color.RGBA{58, 58, 62, 255},
		Speckle: color.RGBA{80, 80, 86, 255},
		Grid:    color.RGBA{90, 90, 96, 255},
	},
	"gravel": {
		Base:    color.RGBA{120, 100, 72, 255},
		Speckle: color.RGBA{160, 140, 105, 255},
		Grid:    color.RGBA{100, 82, 58, 255},
	},
	"ice": {
		Base:    color.RGBA{200, 225, 240, 255},
		Speckle: color.RGBA{235, 245, 255, 255},
		Grid:    color.RGBA{170, 200, 220, 255},
	},
}

// PaletteFor returns the palette of a named surface. Unknown surfaces get
// the asphalt palette.
func PaletteFor(surface string) Palette {
	if p, ok := palettes[surface]; ok {
		return p
	}
	return palettes["asphalt"]
}

// Generator creates ground tiles
type Generator struct {
	TileSize int // Tile edge in pixels; also the grid spacing
}

// NewGenerator creates a new background generator
func NewGenerator(tileSize int) *Generator {
	return &Generator{
		TileSize: tileSize,
	}
}

// GenerateGround creates a seamless tile of the named surface with a grid
// line along its top and left edges, so that tiling it draws a grid.
func (g *Generator) GenerateGround(surface string, seed int64) *ebiten.Image {
	size := g.TileSize
	p := PaletteFor(surface)
	rng := rand.New(rand.NewSource(seed))

	img := ebiten.NewImage(size, size)
	img.Fill(p.Base)

	// Texture
	for i := 0; i < size*size/12; i++ {
		img.Set(rng.Intn(size), rng.Intn(size), p.Speckle)
	}

	for i := 0; i < size; i++ {
		img.Set(i, 0, p.Grid)
		img.Set(0, i, p.Grid)
	}
	return img
}

// TileOrigin returns where the tile covering the screen's top-left corner
// starts, when that corner sits at (offsetX, offsetY) in ground pixels.
func TileOrigin(offsetX, offsetY float64, tileSize int) (float64, float64) {
	ts := float64(tileSize)
	return -mod(offsetX, ts), -mod(offsetY, ts)
}

// DrawTiled fills screen with tile, scrolled so the screen's top-left
// corner sits at (offsetX, offsetY) in ground pixels.
func DrawTiled(screen, tile *ebiten.Image, offsetX, offsetY float64) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	size := tile.Bounds().Dx()
	startX, startY := TileOrigin(offsetX, offsetY, size)

	for y := startY; y < float64(h); y += float64(size) {
		for x := startX; x < float64(w); x += float64(size) {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(x, y)
			screen.DrawImage(tile, op)
		}
	}
}

// mod is the non-negative remainder
func mod(a, b float64) float64 {
	r := math.Mod(a, b)
	if r < 0 {
		r += b
	}
	return r
}
