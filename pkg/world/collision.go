package world

import "github.com/golangdaddy/headracer/pkg/road"

// CrashEvent describes the hurdle the car ran into
type CrashEvent struct {
	Hurdle   road.Actor
	Index    int     // Position in the active hurdle list
	Distance float64 // Distance travelled when it happened
}

// Check tests the car box against every hurdle and returns the first hit,
// or nil if the car is clear.
func Check(car road.Rect, hurdles []road.Actor) *CrashEvent {
	for i, h := range hurdles {
		if car.Intersects(h.Box) {
			return &CrashEvent{Hurdle: h, Index: i}
		}
	}
	return nil
}
