package session

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/golangdaddy/headracer/pkg/detection"
	"github.com/golangdaddy/headracer/pkg/motion"
	"github.com/golangdaddy/headracer/pkg/road"
	"github.com/golangdaddy/headracer/pkg/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedDetector returns the same face every frame, or err if set
type scriptedDetector struct {
	face  detection.Box
	err   error
	calls int
}

func (d *scriptedDetector) DetectFaces() ([]detection.Box, error) {
	d.calls++
	if d.err != nil {
		return nil, d.err
	}
	return []detection.Box{d.face, {X: 0, Y: 0, W: 10, H: 10}}, nil
}

func (d *scriptedDetector) Close() error { return nil }

func newSession(t *testing.T, det detection.Detector, cfg world.Config) *Session {
	t.Helper()
	w := world.New(cfg, rand.New(rand.NewSource(3)))
	s := New(det, motion.NewExtractor(motion.DefaultConfig()), w)
	clock := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time {
		clock = clock.Add(time.Second / 60)
		return clock
	}
	return s
}

func typeName(t *testing.T, s *Session, name string) {
	t.Helper()
	events := make([]Event, 0, len(name))
	for _, r := range name {
		events = append(events, CharEvent(r))
	}
	require.NoError(t, s.Step(events))
}

func TestSession_NameEntry(t *testing.T) {
	s := newSession(t, detection.Null{}, world.DefaultConfig())

	typeName(t, s, "Zoë\x07 K")
	assert.Equal(t, "Zoë K", s.Name(), "control characters are dropped")

	require.NoError(t, s.Step([]Event{{Kind: Backspace}, {Kind: Backspace}}))
	assert.Equal(t, "Zoë", s.Name())

	require.NoError(t, s.Step([]Event{{Kind: Backspace}}))
	assert.Equal(t, "Zo", s.Name(), "backspace removes a whole rune")

	typeName(t, s, strings.Repeat("x", 30))
	assert.Equal(t, 20, len([]rune(s.Name())), "name is capped at 20 runes")

	for i := 0; i < 25; i++ {
		require.NoError(t, s.Step([]Event{{Kind: Backspace}}))
	}
	assert.Equal(t, "", s.Name())
}

func TestSession_StartNeedsName(t *testing.T) {
	det := &scriptedDetector{face: detection.Box{X: 270, Y: 190, W: 100, H: 100}}
	s := newSession(t, det, world.DefaultConfig())

	require.NoError(t, s.Step([]Event{{Kind: Confirm}}))
	assert.Equal(t, world.NotStarted, s.Snapshot().State)

	typeName(t, s, "   ")
	assert.False(t, s.CanStart())
	require.NoError(t, s.Step([]Event{{Kind: Confirm}}))
	assert.Equal(t, world.NotStarted, s.Snapshot().State)
	assert.Equal(t, 0, det.calls, "camera is not polled before the race")

	typeName(t, s, "Ada ")
	assert.True(t, s.CanStart())
	require.NoError(t, s.Step([]Event{{Kind: Confirm}}))

	snap := s.Snapshot()
	assert.Equal(t, world.Racing, snap.State)
	assert.Equal(t, "Ada", snap.PlayerName)
	assert.Equal(t, 1, det.calls, "one capture per racing tick")
}

func TestSession_CalibrationThenSteering(t *testing.T) {
	det := &scriptedDetector{face: detection.Box{X: 270, Y: 190, W: 100, H: 100}}
	s := newSession(t, det, world.DefaultConfig())
	typeName(t, s, "Ada")
	require.NoError(t, s.Step([]Event{{Kind: Confirm}}))

	for s.Snapshot().Calibration < 1 {
		require.NoError(t, s.Step(nil))
	}
	assert.Equal(t, 50, det.calls)
	assert.Equal(t, 600.0, s.Snapshot().Car.X, "no steering during calibration")

	// head 30px right of rest: full right steer
	det.face.X += 30
	require.NoError(t, s.Step(nil))

	snap := s.Snapshot()
	assert.Equal(t, world.Racing, snap.State)
	assert.Equal(t, 607.0, snap.Car.X)
	assert.Equal(t, motion.Signal{Horizontal: 1}, snap.Signal)
}

func TestSession_CaptureFailureIsNoInput(t *testing.T) {
	det := &scriptedDetector{err: errors.New("device busy")}
	s := newSession(t, det, world.DefaultConfig())
	typeName(t, s, "Ada")
	require.NoError(t, s.Step([]Event{{Kind: Confirm}}))

	for i := 0; i < 20; i++ {
		require.NoError(t, s.Step(nil))
	}

	snap := s.Snapshot()
	assert.Equal(t, world.Racing, snap.State)
	assert.Equal(t, 0.0, snap.Calibration)
	assert.Equal(t, 600.0, snap.Car.X)
	assert.Equal(t, 21.0, snap.Distance, "world keeps moving at min speed")
}

func TestSession_IgnoresInputForOtherStates(t *testing.T) {
	s := newSession(t, detection.Null{}, world.DefaultConfig())
	typeName(t, s, "Ada")

	require.NoError(t, s.Step([]Event{{Kind: Restart}}))
	assert.Equal(t, world.NotStarted, s.Snapshot().State, "restart before racing is ignored")
	assert.Equal(t, "Ada", s.Name())

	require.NoError(t, s.Step([]Event{{Kind: Confirm}}))
	require.NoError(t, s.Step([]Event{CharEvent(' '), {Kind: Backspace}, {Kind: Restart}, {Kind: Confirm}}))

	snap := s.Snapshot()
	assert.Equal(t, world.Racing, snap.State)
	assert.Equal(t, "Ada", snap.NameInput)
	assert.Equal(t, "Ada", snap.PlayerName)
}

func TestSession_FinishAndRestart(t *testing.T) {
	cfg := world.DefaultConfig()
	cfg.FinishLineDistance = 3
	det := &scriptedDetector{face: detection.Box{X: 270, Y: 190, W: 100, H: 100}}
	s := newSession(t, det, cfg)

	typeName(t, s, "Ada")
	require.NoError(t, s.Step([]Event{{Kind: Confirm}}))
	require.NoError(t, s.Step(nil))
	require.NoError(t, s.Step(nil))

	snap := s.Snapshot()
	require.Equal(t, world.Finished, snap.State)
	require.Len(t, snap.Balloons, world.BalloonCount)
	assert.Equal(t, 3, det.calls)

	y := snap.Balloons[0].Y
	require.NoError(t, s.Step(nil))
	snap = s.Snapshot()
	assert.Less(t, snap.Balloons[0].Y, y, "balloons rise after the finish")
	assert.Equal(t, 3, det.calls, "camera is not polled after the finish")

	// space types nothing here, then restarts
	require.NoError(t, s.Step([]Event{CharEvent(' '), {Kind: Restart}}))
	snap = s.Snapshot()
	assert.Equal(t, world.NotStarted, snap.State)
	assert.Equal(t, "", snap.NameInput)
	assert.Equal(t, 0.0, snap.Distance)
	assert.Equal(t, 0.0, snap.Calibration, "calibration starts over")
	assert.Len(t, snap.Hurdles, road.HurdleCount)
	assert.Empty(t, snap.Balloons)
}

func TestSession_Quit(t *testing.T) {
	s := newSession(t, detection.Null{}, world.DefaultConfig())
	err := s.Step([]Event{CharEvent('a'), {Kind: Quit}, CharEvent('b')})
	assert.ErrorIs(t, err, ErrQuit)
	assert.Equal(t, "a", s.Name(), "events after quit are not applied")
}
