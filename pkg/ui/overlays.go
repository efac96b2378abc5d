package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/golangdaddy/headracer/pkg/world"
)

const balloonRadius = 20

var red = color.RGBA{255, 0, 0, 255}

// DrawFinished dims the last race frame and celebrates with balloons
func DrawFinished(screen *ebiten.Image, snap world.Snapshot) {
	l := snap.Layout
	dim(screen, l.ScreenWidth, l.ScreenHeight)

	for _, b := range snap.Balloons {
		drawBalloon(screen, b)
	}

	cx := l.ScreenWidth / 2
	drawCenteredText(screen, "CONGRATULATIONS!", cx, 170, 4, color.White)
	drawCenteredText(screen, fmt.Sprintf("%s finished the race!", snap.PlayerName), cx, 270, 2, color.White)
	drawCenteredText(screen, fmt.Sprintf("Your time: %.2f seconds", snap.Elapsed.Seconds()), cx, 310, 2, color.White)
	drawCenteredText(screen, "Press SPACE to play again", cx, 390, 2, color.White)
}

// DrawCrashed dims the last race frame and shows the game over message
func DrawCrashed(screen *ebiten.Image, snap world.Snapshot) {
	l := snap.Layout
	dim(screen, l.ScreenWidth, l.ScreenHeight)

	cx := l.ScreenWidth / 2
	drawCenteredText(screen, "GAME OVER!", cx, 270, 4, red)
	if snap.Crash != nil {
		drawCenteredText(screen, fmt.Sprintf("Hit a %s at %.0f%%", snap.Crash.Hurdle.Kind, snap.Progress()*100),
			cx, 340, 1.5, color.White)
	}
	drawCenteredText(screen, "Press SPACE to try again", cx, 390, 2, color.White)
}

func dim(screen *ebiten.Image, width, height float64) {
	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), color.RGBA{0, 0, 0, 128}, false)
}

func drawBalloon(screen *ebiten.Image, b world.Balloon) {
	x, y := float32(b.X), float32(b.Y)
	vector.StrokeLine(screen, x, y+balloonRadius, x, float32(b.Y+b.StringLength), 2, color.Black, true)
	vector.DrawFilledCircle(screen, x, y, balloonRadius, b.Color, true)
	vector.StrokeCircle(screen, x, y, balloonRadius, 2, color.Black, true)
}
