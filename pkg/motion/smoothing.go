package motion

import "gonum.org/v1/gonum/stat"

// Window is a trailing moving average over the last few signals
type Window struct {
	size    int
	min     int
	entries []Signal
}

// NewWindow keeps at most size entries and averages once it holds minLen of them
func NewWindow(size, minLen int) *Window {
	return &Window{
		size:    size,
		min:     minLen,
		entries: make([]Signal, 0, size+1),
	}
}

// Push adds a raw signal and returns the smoothed one. With fewer than the minimum
// entries the raw signal is returned unchanged.
func (w *Window) Push(s Signal) Signal {
	w.entries = append(w.entries, s)
	if len(w.entries) > w.size {
		w.entries = w.entries[1:]
	}

	if len(w.entries) < w.min {
		return s
	}
	return w.Mean()
}

// Mean returns the arithmetic mean of the entries
func (w *Window) Mean() Signal {
	if len(w.entries) == 0 {
		return Signal{}
	}

	hs := make([]float64, len(w.entries))
	vs := make([]float64, len(w.entries))
	for i, e := range w.entries {
		hs[i] = e.Horizontal
		vs[i] = e.Vertical
	}
	return Signal{
		Horizontal: stat.Mean(hs, nil),
		Vertical:   stat.Mean(vs, nil),
	}
}

// Len returns the number of entries held
func (w *Window) Len() int {
	return len(w.entries)
}

// Reset drops all entries
func (w *Window) Reset() {
	w.entries = w.entries[:0]
}
