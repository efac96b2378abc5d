package world

import (
	"image/color"
	"math/rand"
)

// BalloonColors is the palette balloons are drawn from
var BalloonColors = []color.RGBA{
	{255, 0, 0, 255},
	{0, 0, 255, 255},
	{0, 255, 0, 255},
	{255, 255, 0, 255},
	{255, 0, 255, 255},
	{255, 165, 0, 255},
}

// BalloonCount is how many balloons are released at the finish
const BalloonCount = 50

// Balloon is a celebration particle that floats up after a finish
type Balloon struct {
	X, Y         float64
	Speed        float64 // Pixels per tick upward
	Sway         float64 // Horizontal drift factor
	StringLength float64
	Color        color.RGBA
}

// Update moves the balloon one tick
func (b *Balloon) Update() {
	b.Y -= b.Speed
	b.X += b.Sway * 0.5
}

// releaseBalloons creates a batch just below the bottom of the screen
func releaseBalloons(width, height float64, rng *rand.Rand) []Balloon {
	balloons := make([]Balloon, 0, BalloonCount)
	for i := 0; i < BalloonCount; i++ {
		balloons = append(balloons, Balloon{
			X:            50 + float64(rng.Intn(int(width)-100+1)),
			Y:            height + float64(rng.Intn(101)),
			Speed:        1 + rng.Float64()*2,
			Sway:         rng.Float64()*2 - 1,
			StringLength: float64(50 + rng.Intn(51)),
			Color:        BalloonColors[rng.Intn(len(BalloonColors))],
		})
	}
	return balloons
}

// updateBalloons advances every balloon and drops the ones that left the top
func updateBalloons(balloons []Balloon, top float64) []Balloon {
	kept := balloons[:0]
	for _, b := range balloons {
		b.Update()
		if b.Y > top {
			kept = append(kept, b)
		}
	}
	return kept
}
