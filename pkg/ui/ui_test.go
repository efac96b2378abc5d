package ui

import (
	"image"
	"image/color"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/headracer/pkg/road"
	"github.com/golangdaddy/headracer/pkg/world"
)

func TestDashOffsets(t *testing.T) {
	tests := []struct {
		name   string
		scroll float64
		first  float64
	}{
		{"at rest", 0, 0},
		{"partly scrolled", 25, -25},
		{"dash fully above screen is skipped", 50, 10},
		{"one full period", 60, 0},
		{"fraction is truncated", 61.9, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ys := dashOffsets(tt.scroll, 800)
			require.NotEmpty(t, ys)
			assert.Equal(t, tt.first, ys[0])
			for i := 1; i < len(ys); i++ {
				assert.Equal(t, float64(dashPeriod), ys[i]-ys[i-1])
			}
			assert.GreaterOrEqual(t, ys[len(ys)-1]+dashLength, 800.0, "dashes reach the bottom edge")
		})
	}
}

func TestFinishLineY(t *testing.T) {
	snap := world.Snapshot{Layout: road.DefaultLayout(), FinishLine: 5000}

	_, ok := finishLineY(snap)
	assert.False(t, ok, "finish line is off screen at the start")

	snap.Distance = 4300
	y, ok := finishLineY(snap)
	assert.True(t, ok)
	assert.Equal(t, 100.0, y)

	snap.Distance = 5000
	y, ok = finishLineY(snap)
	assert.True(t, ok)
	assert.Equal(t, 800.0, y)
}

func TestHUDLines(t *testing.T) {
	snap := world.Snapshot{
		Car:         world.Car{Speed: 3.5},
		Distance:    1250,
		FinishLine:  5000,
		Elapsed:     12340 * time.Millisecond,
		PlayerName:  "Ada",
		Calibration: 0.42,
	}

	lines := hudLines(snap)
	require.Len(t, lines, 5)
	got := make([]string, len(lines))
	for i, l := range lines {
		got[i] = l.text
	}
	assert.Equal(t, []string{
		"Speed: 3.5",
		"Time: 12.3s",
		"Progress: 25.0%",
		"Player: Ada",
		"Calibrating: 42%",
	}, got)
	assert.Equal(t, yellow, lines[4].color)

	snap.Calibration = 1
	lines = hudLines(snap)
	assert.Equal(t, "Head Tracking: READY", lines[4].text)
	assert.Equal(t, green, lines[4].color)
}

func TestGaugeColor(t *testing.T) {
	assert.Equal(t, color.RGBA{100, 255, 100, 255}, gaugeColor(0))
	assert.Equal(t, color.RGBA{255, 255, 100, 255}, gaugeColor(0.5))
	assert.Equal(t, color.RGBA{255, 100, 0, 255}, gaugeColor(1))
	assert.Equal(t, gaugeColor(1), gaugeColor(3), "clamped above")
	assert.Equal(t, gaugeColor(0), gaugeColor(-1), "clamped below")
}

func TestTitleScreen_PlayButton(t *testing.T) {
	ts := NewTitleScreen(1200, 800)
	btn := ts.PlayButton()
	assert.Equal(t, image.Rect(500, 400, 700, 450), btn)
	assert.True(t, image.Pt(600, 425).In(btn))
	assert.False(t, image.Pt(600, 325).In(btn), "name field is not the button")
	assert.False(t, btn.Overlaps(ts.inputBox()))
}

func TestEllipsePoints(t *testing.T) {
	pts := ellipsePoints(0, 0, 70, 60, 24)
	require.Len(t, pts, 24)
	for _, p := range pts {
		// on the ellipse centred at (35, 30) with radii 35 and 30
		v := math.Pow((p.x-35)/35, 2) + math.Pow((p.y-30)/30, 2)
		assert.InDelta(t, 1, v, 1e-9)
	}
}
