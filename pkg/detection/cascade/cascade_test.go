package cascade

import (
	"image"
	"testing"

	"github.com/golangdaddy/headracer/pkg/detection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_MissingCascade(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CascadePath = "/nonexistent/haarcascade.xml"

	d, err := Open(cfg)
	require.Error(t, err)
	assert.Nil(t, d)
}

func TestToBoxes(t *testing.T) {
	rects := []image.Rectangle{
		image.Rect(10, 20, 110, 140),
		image.Rect(300, 200, 360, 260),
	}

	boxes := toBoxes(rects)
	require.Len(t, boxes, 2)
	assert.Equal(t, detection.Box{X: 10, Y: 20, W: 100, H: 120}, boxes[0])
	assert.Equal(t, detection.Box{X: 300, Y: 200, W: 60, H: 60}, boxes[1])

	assert.Empty(t, toBoxes(nil))
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 1.1, cfg.ScaleFactor)
	assert.Equal(t, 5, cfg.MinNeighbors)
	assert.Equal(t, 50, cfg.MinFaceSize)
}
