// Package cascade implements detection.Detector with an OpenCV webcam
// capture and a Haar cascade face classifier.
package cascade

import (
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/golangdaddy/headracer/pkg/detection"
	"gocv.io/x/gocv"
)

// ErrCaptureFailed is returned when the camera yields no frame
var ErrCaptureFailed = errors.New("camera returned no frame")

// Config holds camera and classifier settings
type Config struct {
	DeviceID     int     // Camera index passed to VideoCaptureDevice
	CascadePath  string  // Haar cascade XML
	ScaleFactor  float64 // Image pyramid step
	MinNeighbors int     // Neighbour rectangles needed to keep a candidate
	MinFaceSize  int     // Smallest face in pixels (square)
}

// DefaultConfig returns the settings used by the game
func DefaultConfig() Config {
	return Config{
		DeviceID:     0,
		CascadePath:  "/usr/share/opencv4/haarcascades/haarcascade_frontalface_default.xml",
		ScaleFactor:  1.1,
		MinNeighbors: 5,
		MinFaceSize:  50,
	}
}

// Detector owns the capture device and the classifier
type Detector struct {
	config     Config
	capture    *gocv.VideoCapture
	classifier gocv.CascadeClassifier
	frame      gocv.Mat
	mirrored   gocv.Mat
	gray       gocv.Mat
}

// Open loads the classifier and opens the camera
func Open(cfg Config) (*Detector, error) {
	if _, err := os.Stat(cfg.CascadePath); err != nil {
		return nil, fmt.Errorf("cascade file not found: %w", err)
	}

	classifier := gocv.NewCascadeClassifier()
	if !classifier.Load(cfg.CascadePath) {
		classifier.Close()
		return nil, fmt.Errorf("load cascade %s", cfg.CascadePath)
	}

	capture, err := gocv.VideoCaptureDevice(cfg.DeviceID)
	if err != nil {
		classifier.Close()
		return nil, fmt.Errorf("open camera %d: %w", cfg.DeviceID, err)
	}

	return &Detector{
		config:     cfg,
		capture:    capture,
		classifier: classifier,
		frame:      gocv.NewMat(),
		mirrored:   gocv.NewMat(),
		gray:       gocv.NewMat(),
	}, nil
}

// DetectFaces reads one frame, mirrors it, converts it to grayscale and runs
// the classifier on it.
func (d *Detector) DetectFaces() ([]detection.Box, error) {
	if ok := d.capture.Read(&d.frame); !ok || d.frame.Empty() {
		return nil, ErrCaptureFailed
	}

	gocv.Flip(d.frame, &d.mirrored, 1)
	gocv.CvtColor(d.mirrored, &d.gray, gocv.ColorBGRToGray)

	minSize := image.Pt(d.config.MinFaceSize, d.config.MinFaceSize)
	rects := d.classifier.DetectMultiScaleWithParams(
		d.gray,
		d.config.ScaleFactor,
		d.config.MinNeighbors,
		0,
		minSize,
		image.Pt(0, 0),
	)

	return toBoxes(rects), nil
}

// Close releases the camera, the classifier and the frame buffers
func (d *Detector) Close() error {
	err := d.capture.Close()
	d.classifier.Close()
	d.frame.Close()
	d.mirrored.Close()
	d.gray.Close()
	if err != nil {
		return fmt.Errorf("release camera: %w", err)
	}
	return nil
}

func toBoxes(rects []image.Rectangle) []detection.Box {
	boxes := make([]detection.Box, 0, len(rects))
	for _, r := range rects {
		boxes = append(boxes, detection.Box{
			X: float64(r.Min.X),
			Y: float64(r.Min.Y),
			W: float64(r.Dx()),
			H: float64(r.Dy()),
		})
	}
	return boxes
}
