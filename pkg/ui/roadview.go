package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/golangdaddy/headracer/pkg/background"
	"github.com/golangdaddy/headracer/pkg/road"
	"github.com/golangdaddy/headracer/pkg/world"
)

const (
	dashLength  = 40
	dashGap     = 20
	dashPeriod  = dashLength + dashGap
	dividerW    = 4
	checkerSize = 20

	// actors further than this outside the screen are not drawn
	drawMargin = 100
)

var (
	roadColor   = color.RGBA{64, 64, 64, 255}
	trunkColor  = color.RGBA{139, 69, 19, 255}
	leavesColor = color.RGBA{34, 139, 34, 255}
	houseColor  = color.RGBA{205, 133, 63, 255}
	roofColor   = color.RGBA{220, 20, 20, 255}
	hurdleColor = color.RGBA{255, 0, 0, 255}
	carColor    = color.RGBA{0, 0, 255, 255}
	glassColor  = color.RGBA{135, 206, 235, 255}
	yellow      = color.RGBA{255, 255, 0, 255}
	green       = color.RGBA{0, 255, 0, 255}
)

// RoadView draws the race: scenery, road, hurdles, car and HUD
type RoadView struct {
	grass *ebiten.Image
}

// NewRoadView creates the view and renders its grass texture once
func NewRoadView(layout road.Layout, seed int64) *RoadView {
	gen := background.NewGenerator(int(layout.ScreenWidth), int(layout.ScreenHeight))
	return &RoadView{grass: gen.GenerateGrass(seed)}
}

// Draw renders the race scene from the snapshot
func (rv *RoadView) Draw(screen *ebiten.Image, snap world.Snapshot) {
	l := snap.Layout
	rv.drawGrass(screen, snap.Scroll, l.ScreenHeight)

	vector.DrawFilledRect(screen, float32(l.Left()), 0, float32(l.RoadWidth), float32(l.ScreenHeight), roadColor, false)
	for i := 1; i < l.Lanes; i++ {
		x := float32(l.Left()+float64(i)*l.LaneWidth()) - dividerW/2
		for _, y := range dashOffsets(snap.Scroll, l.ScreenHeight) {
			vector.DrawFilledRect(screen, x, float32(y), dividerW, dashLength, color.White, false)
		}
	}

	if y, ok := finishLineY(snap); ok {
		drawFinishLine(screen, l, y)
	}

	for _, a := range snap.Trees {
		if visible(a, l) {
			drawTree(screen, a.Box)
		}
	}
	for _, a := range snap.Houses {
		if visible(a, l) {
			drawHouse(screen, a.Box)
		}
	}
	for _, a := range snap.Hurdles {
		if visible(a, l) {
			drawHurdle(screen, a.Box)
		}
	}

	drawCar(screen, snap.CarBox)
	drawHUD(screen, snap)
	drawSpeedGauge(screen, 15, l.ScreenHeight-50, 220, 24, snap.Car.Speed/snap.MaxSpeed)
	drawSignalIndicator(screen, l.ScreenWidth-80, l.ScreenHeight-80, snap)
}

// drawGrass stacks two copies of the tiling texture so it scrolls with the road
func (rv *RoadView) drawGrass(screen *ebiten.Image, scroll, height float64) {
	offset := math.Mod(scroll, height)
	for _, y := range []float64{offset - height, offset} {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(0, y)
		screen.DrawImage(rv.grass, op)
	}
}

// dashOffsets returns the top of every lane dash on screen for the scroll
func dashOffsets(scroll, height float64) []float64 {
	offset := float64(int(scroll) % dashPeriod)
	var ys []float64
	for y := -offset; y < height+dashPeriod; y += dashPeriod {
		if y+dashLength > 0 {
			ys = append(ys, y)
		}
	}
	return ys
}

// finishLineY returns where the finish line sits on screen, if it is close
// enough to draw
func finishLineY(snap world.Snapshot) (float64, bool) {
	h := snap.Layout.ScreenHeight
	y := h - (snap.FinishLine - snap.Distance)
	return y, y > -50 && y < h+50
}

func visible(a road.Actor, l road.Layout) bool {
	return a.Box.Y >= -drawMargin && a.Box.Y <= l.ScreenHeight+drawMargin
}

func drawFinishLine(screen *ebiten.Image, l road.Layout, y float64) {
	for i := 0; i <= int(l.RoadWidth)/checkerSize; i++ {
		for j := 0; j < 3; j++ {
			clr := color.Black
			if (i+j)%2 == 1 {
				clr = color.White
			}
			x := l.Left() + float64(i*checkerSize)
			vector.DrawFilledRect(screen, float32(x), float32(y+float64((j-1)*checkerSize)),
				checkerSize, checkerSize, clr, false)
		}
	}
}

func drawTree(screen *ebiten.Image, b road.Rect) {
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), trunkColor, false)
	fillPolygon(screen, ellipsePoints(b.X-20, b.Y-40, 70, 60, 24), leavesColor)
}

func drawHouse(screen *ebiten.Image, b road.Rect) {
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), houseColor, false)
	fillPolygon(screen, []point{
		{b.X + b.W/2, b.Y - 20},
		{b.X, b.Y},
		{b.X + b.W, b.Y},
	}, roofColor)
	vector.DrawFilledRect(screen, float32(b.X+30), float32(b.Y+20), 20, 40, roadColor, false)
}

func drawHurdle(screen *ebiten.Image, b road.Rect) {
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), hurdleColor, false)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 3, color.White, false)
}

func drawCar(screen *ebiten.Image, b road.Rect) {
	x, y, w, h := float32(b.X), float32(b.Y), float32(b.W), float32(b.H)
	vector.DrawFilledRect(screen, x, y, w, h, carColor, false)
	vector.StrokeRect(screen, x, y, w, h, 3, color.Black, false)
	vector.DrawFilledRect(screen, x+10, y+10, w-20, 30, glassColor, false)

	const wheel = 12
	for _, c := range [][2]float32{
		{x + 15, y + h - 15},
		{x + w - 15, y + h - 15},
		{x + 15, y + 15},
		{x + w - 15, y + 15},
	} {
		vector.DrawFilledCircle(screen, c[0], c[1], wheel, color.Black, true)
	}
}

type hudLine struct {
	text  string
	color color.Color
}

// hudLines returns the status panel text for the snapshot
func hudLines(snap world.Snapshot) []hudLine {
	lines := []hudLine{
		{fmt.Sprintf("Speed: %.1f", snap.Car.Speed), color.White},
		{fmt.Sprintf("Time: %.1fs", snap.Elapsed.Seconds()), color.White},
		{fmt.Sprintf("Progress: %.1f%%", snap.Progress()*100), color.White},
		{fmt.Sprintf("Player: %s", snap.PlayerName), color.White},
	}
	if snap.Calibration < 1 {
		lines = append(lines, hudLine{fmt.Sprintf("Calibrating: %.0f%%", snap.Calibration*100), yellow})
	} else {
		lines = append(lines, hudLine{"Head Tracking: READY", green})
	}
	return lines
}

func drawHUD(screen *ebiten.Image, snap world.Snapshot) {
	vector.DrawFilledRect(screen, 5, 5, 300, 200, color.RGBA{0, 0, 0, 180}, false)
	for i, line := range hudLines(snap) {
		drawText(screen, line.text, 15, 15+float64(i)*35, 2, line.color)
	}
}

// gaugeColor blends green to yellow to red over the gauge
func gaugeColor(percent float64) color.RGBA {
	percent = math.Max(0, math.Min(1, percent))
	if percent < 0.5 {
		ratio := percent / 0.5
		return color.RGBA{uint8(100 + ratio*155), 255, 100, 255}
	}
	ratio := (percent - 0.5) / 0.5
	return color.RGBA{255, uint8(255 - ratio*155), uint8(100 - ratio*100), 255}
}

// drawSpeedGauge draws a horizontal bar filled to percent of its width
func drawSpeedGauge(screen *ebiten.Image, x, y, width, height, percent float64) {
	percent = math.Max(0, math.Min(1, percent))

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), color.RGBA{40, 40, 40, 255}, false)
	if filled := width * percent; filled > 0 {
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(filled), float32(height), gaugeColor(percent), false)
	}
	vector.StrokeRect(screen, float32(x), float32(y), float32(width), float32(height), 1, color.RGBA{150, 150, 150, 255}, false)
	drawText(screen, "SPEED", x, y-20, 1, color.White)
}

// drawSignalIndicator shows the current control signal as a dot inside a
// ring: right/left for steering, up/down for speed
func drawSignalIndicator(screen *ebiten.Image, cx, cy float64, snap world.Snapshot) {
	const radius = 30.0

	vector.DrawFilledCircle(screen, float32(cx), float32(cy), radius+6, color.RGBA{0, 0, 0, 140}, true)
	vector.StrokeCircle(screen, float32(cx), float32(cy), radius, 3, color.RGBA{100, 100, 100, 255}, true)
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), 3, color.RGBA{200, 200, 200, 255}, true)

	s := snap.Signal
	indicator := color.RGBA{50, 255, 50, 255}
	if math.Abs(s.Horizontal) > 0.1 || math.Abs(s.Vertical) > 0.1 {
		indicator = color.RGBA{255, 50, 50, 255}
	}
	endX := cx + s.Horizontal*(radius-5)
	endY := cy - s.Vertical*(radius-5)
	vector.StrokeLine(screen, float32(cx), float32(cy), float32(endX), float32(endY), 4, indicator, true)
	vector.DrawFilledCircle(screen, float32(endX), float32(endY), 5, indicator, true)

	label := fmt.Sprintf("Steer %+.1f  Speed %+.1f", s.Horizontal, s.Vertical)
	drawText(screen, label, cx-textWidth(label, 1)+radius, cy+radius+14, 1, color.White)
}
