package background

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
)

// Generator creates the grass texture drawn beside the road
type Generator struct {
	Width  int
	Height int
}

// NewGenerator creates a new background generator
func NewGenerator(width, height int) *Generator {
	return &Generator{
		Width:  width,
		Height: height,
	}
}

// GenerateGrass creates a grass texture that tiles vertically, so it can be
// scrolled with the road
func (g *Generator) GenerateGrass(seed int64) *ebiten.Image {
	img := ebiten.NewImage(g.Width, g.Height)
	rng := rand.New(rand.NewSource(seed))

	img.Fill(color.RGBA{0, 190, 0, 255})

	// Speckle
	for i := 0; i < g.Width*g.Height/10; i++ {
		x := rng.Intn(g.Width)
		y := rng.Intn(g.Height)
		shade := uint8(160 + rng.Intn(70))
		img.Set(x, y, color.RGBA{20, shade, 20, 255})
	}

	// Clumps, denser in bands
	for y := 0; y < g.Height; y += 12 {
		density := 0.15 + 0.1*math.Sin(float64(y)*0.02)
		for x := 0; x < g.Width; x += 8 + rng.Intn(16) {
			if rng.Float64() > density {
				continue
			}
			if rng.Float64() < 0.1 {
				g.drawFlower(img, x, y, rng)
			} else {
				g.drawClump(img, x, y, rng)
			}
		}
	}

	return img
}

// drawClump draws a round patch of darker grass
func (g *Generator) drawClump(img *ebiten.Image, x, y int, rng *rand.Rand) {
	radius := 3 + rng.Intn(6)
	c := color.RGBA{
		uint8(10 + rng.Intn(30)),
		uint8(130 + rng.Intn(50)),
		uint8(10 + rng.Intn(30)),
		255,
	}

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				g.set(img, x+dx, y+dy, c)
			}
		}
	}
}

// drawFlower draws a tiny four-petal flower
func (g *Generator) drawFlower(img *ebiten.Image, x, y int, rng *rand.Rand) {
	petals := []color.RGBA{
		{255, 255, 255, 255},
		{255, 230, 60, 255},
		{230, 120, 200, 255},
	}
	petal := petals[rng.Intn(len(petals))]

	g.set(img, x-1, y, petal)
	g.set(img, x+1, y, petal)
	g.set(img, x, y-1, petal)
	g.set(img, x, y+1, petal)
	g.set(img, x, y, color.RGBA{200, 150, 0, 255})
}

// set wraps Y so the texture tiles seamlessly when stacked
func (g *Generator) set(img *ebiten.Image, x, y int, c color.Color) {
	if x < 0 || x >= g.Width {
		return
	}
	y = ((y % g.Height) + g.Height) % g.Height
	img.Set(x, y, c)
}
