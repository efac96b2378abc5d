package road

// Kind identifies what a roadside actor is
type Kind int

const (
	Tree Kind = iota
	House
	Hurdle
)

func (k Kind) String() string {
	switch k {
	case Tree:
		return "tree"
	case House:
		return "house"
	case Hurdle:
		return "hurdle"
	}
	return "unknown"
}

// Actor sizes. For trees the box is the trunk; leaves are drawn above it.
// For houses the roof is drawn above the box.
const (
	TreeWidth    = 30
	TreeHeight   = 80
	HouseWidth   = 80
	HouseHeight  = 60
	HurdleWidth  = 40
	HurdleHeight = 30
)

// Actor is a tree, house or hurdle scrolling past the car
type Actor struct {
	Kind Kind
	Box  Rect
}

// NewActor places an actor of the given kind with its top-left at (x, y)
func NewActor(kind Kind, x, y float64) Actor {
	w, h := Size(kind)
	return Actor{Kind: kind, Box: Rect{X: x, Y: y, W: w, H: h}}
}

// Size returns the bounding box size of a kind
func Size(kind Kind) (w, h float64) {
	switch kind {
	case Tree:
		return TreeWidth, TreeHeight
	case House:
		return HouseWidth, HouseHeight
	case Hurdle:
		return HurdleWidth, HurdleHeight
	}
	return 0, 0
}

// Translate moves the actor by (dx, dy)
func (a *Actor) Translate(dx, dy float64) {
	a.Box = a.Box.Translate(dx, dy)
}

// TranslateAll moves every actor in the slice by (dx, dy)
func TranslateAll(actors []Actor, dx, dy float64) {
	for i := range actors {
		actors[i].Translate(dx, dy)
	}
}

// Cull drops actors whose top has reached limit. The slice is filtered in
// place and the shortened slice returned.
func Cull(actors []Actor, limit float64) []Actor {
	kept := actors[:0]
	for _, a := range actors {
		if a.Box.Y < limit {
			kept = append(kept, a)
		}
	}
	return kept
}
