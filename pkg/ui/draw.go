package ui

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	face = text.NewGoXFace(bitmapfont.Face)

	whiteOnce sync.Once
	white     *ebiten.Image
)

// whiteSubImage is the 1x1 source texture for DrawTriangles fills
func whiteSubImage() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return white
}

// drawText draws s with its top-left corner at (x, y)
func drawText(screen *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

// drawCenteredText draws s horizontally centred on cx
func drawCenteredText(screen *ebiten.Image, s string, cx, y, scale float64, clr color.Color) {
	drawText(screen, s, cx-textWidth(s, scale)/2, y, scale, clr)
}

func textWidth(s string, scale float64) float64 {
	return text.Advance(s, face) * scale
}

// fillPolygon fills a convex polygon given as a triangle fan around pts[0]
func fillPolygon(screen *ebiten.Image, pts []point, clr color.RGBA) {
	if len(pts) < 3 {
		return
	}
	r, g, b, a := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255

	vs := make([]ebiten.Vertex, len(pts))
	for i, p := range pts {
		vs[i] = ebiten.Vertex{
			DstX: float32(p.x), DstY: float32(p.y),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		}
	}
	is := make([]uint16, 0, 3*(len(pts)-2))
	for i := 1; i < len(pts)-1; i++ {
		is = append(is, 0, uint16(i), uint16(i+1))
	}

	screen.DrawTriangles(vs, is, whiteSubImage(), &ebiten.DrawTrianglesOptions{})
}

type point struct{ x, y float64 }

// ellipsePoints approximates an ellipse inscribed in the given box
func ellipsePoints(x, y, w, h float64, segments int) []point {
	cx, cy := x+w/2, y+h/2
	pts := make([]point, segments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(segments)
		pts[i] = point{cx + w/2*math.Cos(a), cy + h/2*math.Sin(a)}
	}
	return pts
}

// sinWave returns a sine wave value between -1 and 1
func sinWave(t float64) float32 {
	return float32(math.Sin(t))
}
