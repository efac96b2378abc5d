package ui

import (
	"image"
	"image/color"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/golangdaddy/headracer/pkg/world"
)

var instructions = []string{
	"Move head LEFT/RIGHT to steer",
	"Move head UP or closer to accelerate",
	"Move head DOWN or away to slow down",
	"Stay on the road and avoid red hurdles!",
}

// TitleScreen is the name entry screen shown before a race
type TitleScreen struct {
	startTime time.Time
	width     int
	height    int
}

// NewTitleScreen creates a new title screen
func NewTitleScreen(width, height int) *TitleScreen {
	return &TitleScreen{
		startTime: time.Now(),
		width:     width,
		height:    height,
	}
}

// PlayButton returns the PLAY button bounds in screen coordinates
func (ts *TitleScreen) PlayButton() image.Rectangle {
	cx := ts.width / 2
	return image.Rect(cx-100, 400, cx+100, 450)
}

// inputBox returns the name field bounds
func (ts *TitleScreen) inputBox() image.Rectangle {
	cx := ts.width / 2
	return image.Rect(cx-150, 300, cx+150, 350)
}

// Draw renders the title screen with the name typed so far
func (ts *TitleScreen) Draw(screen *ebiten.Image, snap world.Snapshot) {
	screen.Fill(color.RGBA{15, 20, 35, 255})

	elapsed := time.Since(ts.startTime).Seconds()
	centerX := float64(ts.width) / 2

	// Pulsing title
	titleScale := 4.0 * (1.0 + 0.05*float64(sinWave(elapsed*2.0)))
	brightness := 0.85 + 0.15*float64(sinWave(elapsed*1.5))
	titleColor := color.RGBA{
		uint8(255 * brightness),
		uint8(200 * brightness),
		uint8(50 * brightness),
		255,
	}
	drawCenteredText(screen, "Head-Controlled Racing", centerX, 120, titleScale, titleColor)

	for i, line := range instructions {
		drawCenteredText(screen, line, centerX, 200+float64(i)*24, 1.5, color.RGBA{180, 180, 200, 255})
	}

	// Name field
	box := ts.inputBox()
	bx, by := float32(box.Min.X), float32(box.Min.Y)
	bw, bh := float32(box.Dx()), float32(box.Dy())
	vector.DrawFilledRect(screen, bx, by, bw, bh, color.White, false)
	vector.StrokeRect(screen, bx, by, bw, bh, 2, color.Black, false)

	nameX, nameY := float64(box.Min.X+10), float64(box.Min.Y+15)
	if snap.NameInput == "" {
		drawText(screen, "Enter your name", nameX, nameY, 1.5, color.RGBA{128, 128, 128, 255})
	} else {
		name := snap.NameInput
		if int(elapsed*2)%2 == 0 {
			name += "_"
		}
		drawText(screen, name, nameX, nameY, 1.5, color.Black)
	}

	// PLAY button, live only once a name is typed
	btn := ts.PlayButton()
	buttonColor := color.RGBA{128, 128, 128, 255}
	if strings.TrimSpace(snap.NameInput) != "" {
		buttonColor = color.RGBA{0, 200, 0, 255}
	}
	px, py := float32(btn.Min.X), float32(btn.Min.Y)
	pw, ph := float32(btn.Dx()), float32(btn.Dy())
	vector.DrawFilledRect(screen, px, py, pw, ph, buttonColor, false)
	vector.StrokeRect(screen, px, py, pw, ph, 2, color.Black, false)
	drawCenteredText(screen, "PLAY", centerX, float64(btn.Min.Y)+13, 2, color.Black)

	drawCenteredText(screen, "Type your name, then press ENTER or click PLAY",
		centerX, float64(ts.height)-100, 1.5, color.RGBA{150, 200, 255, 255})

	drawDecorativeElements(screen, ts.width, ts.height)
}

// drawDecorativeElements draws the thin rules framing the title screen
func drawDecorativeElements(screen *ebiten.Image, width, height int) {
	lineColor := color.RGBA{50, 60, 80, 100}
	vector.DrawFilledRect(screen, 0, float32(height)/12, float32(width), 2, lineColor, false)
	vector.DrawFilledRect(screen, 0, float32(height)*11/12, float32(width), 2, lineColor, false)
}
