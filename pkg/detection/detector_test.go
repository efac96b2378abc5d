package detection

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDetector struct {
	frames [][]Box
	errs   []error
	calls  int
	closed bool
}

func (f *fakeDetector) DetectFaces() ([]Box, error) {
	i := f.calls
	f.calls++
	if i < len(f.errs) && f.errs[i] != nil {
		return nil, f.errs[i]
	}
	if i < len(f.frames) {
		return f.frames[i], nil
	}
	return nil, nil
}

func (f *fakeDetector) Close() error {
	f.closed = true
	return nil
}

func TestBox_CenterAndArea(t *testing.T) {
	tests := []struct {
		name string
		box  Box
		cx   float64
		cy   float64
		area float64
	}{
		{name: "origin", box: Box{X: 0, Y: 0, W: 100, H: 100}, cx: 50, cy: 50, area: 10000},
		{name: "offset", box: Box{X: 300, Y: 200, W: 80, H: 120}, cx: 340, cy: 260, area: 9600},
		{name: "empty", box: Box{X: 10, Y: 10}, cx: 10, cy: 10, area: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y := tc.box.Center()
			assert.Equal(t, tc.cx, x)
			assert.Equal(t, tc.cy, y)
			assert.Equal(t, tc.area, tc.box.Area())

			s := tc.box.Sample()
			assert.Equal(t, FaceSample{CenterX: tc.cx, CenterY: tc.cy, Area: tc.area}, s)
		})
	}
}

func TestLargest(t *testing.T) {
	_, ok := Largest(nil)
	assert.False(t, ok)

	boxes := []Box{
		{X: 0, Y: 0, W: 60, H: 60},
		{X: 200, Y: 100, W: 120, H: 120},
		{X: 400, Y: 100, W: 90, H: 90},
	}
	best, ok := Largest(boxes)
	require.True(t, ok)
	assert.Equal(t, boxes[1], best)
}

func TestLargest_TieKeepsFirst(t *testing.T) {
	boxes := []Box{
		{X: 0, Y: 0, W: 50, H: 50},
		{X: 100, Y: 0, W: 50, H: 50},
	}
	best, ok := Largest(boxes)
	require.True(t, ok)
	assert.Equal(t, boxes[0], best)
}

func TestAdapter_Next(t *testing.T) {
	fd := &fakeDetector{
		frames: [][]Box{
			{{X: 0, Y: 0, W: 50, H: 50}, {X: 100, Y: 100, W: 100, H: 100}},
			nil,
			nil,
		},
		errs: []error{nil, nil, errors.New("camera unplugged")},
	}
	a := NewAdapter(fd)

	s := a.Next()
	require.NotNil(t, s)
	assert.Equal(t, FaceSample{CenterX: 150, CenterY: 150, Area: 10000}, *s)
	assert.Equal(t, 0, a.Misses())

	assert.Nil(t, a.Next(), "empty frame")
	assert.Equal(t, 1, a.Misses())

	assert.Nil(t, a.Next(), "capture error is a miss, not a failure")
	assert.Equal(t, 2, a.Misses())
}

func TestAdapter_NilDetectorIsNull(t *testing.T) {
	a := NewAdapter(nil)
	for i := 0; i < 3; i++ {
		assert.Nil(t, a.Next())
	}
	assert.NoError(t, Null{}.Close())
}
