// Package detection turns camera face detections into face samples
package detection

import (
	"github.com/golangdaddy/headracer/pkg/debug"
)

// Box is a detected face bounding box in pixel space
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// Center returns the center point of the box
func (b Box) Center() (x, y float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// Area returns the area of the box
func (b Box) Area() float64 {
	return b.W * b.H
}

// FaceSample is the per-frame reading fed to the motion extractor
type FaceSample struct {
	CenterX, CenterY float64
	Area             float64
}

// Sample converts a box into a face sample
func (b Box) Sample() FaceSample {
	x, y := b.Center()
	return FaceSample{CenterX: x, CenterY: y, Area: b.Area()}
}

// Detector captures one frame and returns the faces found in it.
// Frames are mirrored and grayscale before detection.
type Detector interface {
	DetectFaces() ([]Box, error)

	// Close releases the capture device
	Close() error
}

// Largest picks the box with the biggest area (the face closest to the camera)
func Largest(boxes []Box) (Box, bool) {
	if len(boxes) == 0 {
		return Box{}, false
	}
	best := boxes[0]
	for _, b := range boxes[1:] {
		if b.Area() > best.Area() {
			best = b
		}
	}
	return best, true
}

// Adapter polls a Detector once per tick
type Adapter struct {
	detector Detector
	misses   int
}

// NewAdapter wraps a detector. A nil detector behaves like Null.
func NewAdapter(detector Detector) *Adapter {
	if detector == nil {
		detector = Null{}
	}
	return &Adapter{detector: detector}
}

// Next captures and detects one frame. It returns nil when the capture
// failed or no face was found.
func (a *Adapter) Next() *FaceSample {
	boxes, err := a.detector.DetectFaces()
	if err != nil {
		a.misses++
		debug.Log("detection: capture failed (%d misses): %v", a.misses, err)
		return nil
	}

	best, ok := Largest(boxes)
	if !ok {
		a.misses++
		return nil
	}
	a.misses = 0

	sample := best.Sample()
	return &sample
}

// Misses returns the number of consecutive frames without a face
func (a *Adapter) Misses() int {
	return a.misses
}

// Null is used when no camera could be opened. It never finds a face.
type Null struct{}

// DetectFaces always reports an empty frame
func (Null) DetectFaces() ([]Box, error) {
	return nil, nil
}

// Close is a no-op
func (Null) Close() error {
	return nil
}
