// Package motion maps head position to steering and throttle signals.
//
// The first CalibrationFrames detections establish a neutral baseline. After
// that each detection is compared to the baseline: horizontal offset steers,
// and whichever of vertical offset or apparent face size moved more drives
// the throttle.
package motion

import (
	"math"

	"github.com/golangdaddy/headracer/pkg/detection"
)

// Signal is a control signal, both axes in [-1, 1]
type Signal struct {
	Horizontal float64 // Positive steers right
	Vertical   float64 // Positive accelerates
}

// Baseline is the neutral head pose measured during calibration
type Baseline struct {
	CenterX, CenterY float64
	Area             float64
}

// Config holds the extractor tunables
type Config struct {
	CalibrationFrames  int     // Detections averaged into the baseline
	SmoothingFrames    int     // Moving average window length
	MinSmoothingFrames int     // Window entries needed before averaging
	HorizontalRange    float64 // Pixels of dx that saturate steering
	VerticalRange      float64 // Pixels of dy that saturate throttle
	SizeGain           float64 // Multiplier on relative face size change
}

// DefaultConfig returns the tuning used by the game
func DefaultConfig() Config {
	return Config{
		CalibrationFrames:  50,
		SmoothingFrames:    5,
		MinSmoothingFrames: 3,
		HorizontalRange:    30,
		VerticalRange:      25,
		SizeGain:           8,
	}
}

// Extractor owns the calibration state and the smoothing window
type Extractor struct {
	config Config

	// calibration accumulators (running means)
	collected int
	meanX     float64
	meanY     float64
	meanArea  float64

	baseline *Baseline
	window   *Window
}

// NewExtractor creates an uncalibrated extractor
func NewExtractor(cfg Config) *Extractor {
	return &Extractor{
		config: cfg,
		window: NewWindow(cfg.SmoothingFrames, cfg.MinSmoothingFrames),
	}
}

// NextSignal consumes one frame's detection. A nil sample means no face was
// found; it yields the zero signal and leaves all state untouched.
func (e *Extractor) NextSignal(sample *detection.FaceSample) Signal {
	if sample == nil {
		return Signal{}
	}

	if e.baseline == nil {
		e.calibrate(*sample)
		return Signal{}
	}

	raw := e.rawSignal(*sample)
	return e.window.Push(raw)
}

// calibrate folds a sample into the running means and fixes the baseline
// once enough samples are in.
func (e *Extractor) calibrate(s detection.FaceSample) {
	e.collected++
	n := float64(e.collected)
	e.meanX += (s.CenterX - e.meanX) / n
	e.meanY += (s.CenterY - e.meanY) / n
	e.meanArea += (s.Area - e.meanArea) / n

	if e.collected == e.config.CalibrationFrames {
		e.baseline = &Baseline{
			CenterX: e.meanX,
			CenterY: e.meanY,
			Area:    e.meanArea,
		}
	}
}

func (e *Extractor) rawSignal(s detection.FaceSample) Signal {
	b := e.baseline

	dx := s.CenterX - b.CenterX
	dy := s.CenterY - b.CenterY

	horizontal := clamp(dx/e.config.HorizontalRange, -1, 1)
	ySignal := clamp(-dy/e.config.VerticalRange, -1, 1)

	sizeSignal := 0.0
	if b.Area > 0 {
		sizeDelta := s.Area/b.Area - 1
		sizeSignal = clamp(sizeDelta*e.config.SizeGain, -1, 1)
	}

	// stronger cue wins, no blending
	vertical := sizeSignal
	if math.Abs(ySignal) > math.Abs(sizeSignal) {
		vertical = ySignal
	}

	return Signal{Horizontal: horizontal, Vertical: vertical}
}

// Calibrated reports whether the baseline has been established
func (e *Extractor) Calibrated() bool {
	return e.baseline != nil
}

// Baseline returns the calibration profile, if any
func (e *Extractor) Baseline() (Baseline, bool) {
	if e.baseline == nil {
		return Baseline{}, false
	}
	return *e.baseline, true
}

// Progress returns the calibration progress in [0, 1]
func (e *Extractor) Progress() float64 {
	if e.baseline != nil || e.config.CalibrationFrames <= 0 {
		return 1
	}
	return float64(e.collected) / float64(e.config.CalibrationFrames)
}

// WindowLen returns the number of raw signals currently being averaged
func (e *Extractor) WindowLen() int {
	return e.window.Len()
}

// Reset forgets the baseline, the calibration samples and the window
func (e *Extractor) Reset() {
	e.collected = 0
	e.meanX, e.meanY, e.meanArea = 0, 0, 0
	e.baseline = nil
	e.window.Reset()
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
