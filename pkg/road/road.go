// Package road holds the viewport geometry, the roadside actors and the
// procedural course generator.
package road

// Rect is an axis-aligned rectangle, X/Y is the top-left corner
type Rect struct {
	X, Y float64
	W, H float64
}

// Intersects reports whether two rectangles overlap. Rectangles that only
// share an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Translate returns the rectangle moved by (dx, dy)
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Layout describes the viewport and the road centred in it
type Layout struct {
	ScreenWidth  float64
	ScreenHeight float64
	RoadWidth    float64
	Lanes        int
}

// DefaultLayout is a 1200x800 viewport with a 400px three lane road
func DefaultLayout() Layout {
	return Layout{
		ScreenWidth:  1200,
		ScreenHeight: 800,
		RoadWidth:    400,
		Lanes:        3,
	}
}

// Left returns the X of the road's left edge
func (l Layout) Left() float64 {
	return l.ScreenWidth/2 - l.RoadWidth/2
}

// Right returns the X of the road's right edge
func (l Layout) Right() float64 {
	return l.ScreenWidth/2 + l.RoadWidth/2
}

// LaneWidth returns the width of one lane, rounded down to whole pixels
func (l Layout) LaneWidth() float64 {
	return float64(int(l.RoadWidth) / l.Lanes)
}

// LaneCenter returns the X of the centre of lane i (0 is leftmost)
func (l Layout) LaneCenter(i int) float64 {
	lw := l.LaneWidth()
	return l.Left() + float64(i)*lw + float64(int(lw)/2)
}

// CullLine is the Y past which actors are dropped
func (l Layout) CullLine() float64 {
	return l.ScreenHeight + 100
}
