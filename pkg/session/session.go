// Package session owns one game session: the face detector, the motion
// extractor, the world and the name being typed. Step runs one tick.
package session

import (
	"errors"
	"log"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/golangdaddy/headracer/pkg/debug"
	"github.com/golangdaddy/headracer/pkg/detection"
	"github.com/golangdaddy/headracer/pkg/models"
	"github.com/golangdaddy/headracer/pkg/motion"
	"github.com/golangdaddy/headracer/pkg/world"
)

// ErrQuit is returned by Step when the player asked to quit
var ErrQuit = errors.New("quit requested")

// Session ties input, head tracking and the world together
type Session struct {
	faces     *detection.Adapter
	extractor *motion.Extractor
	world     *world.World
	name      string
	now       func() time.Time
}

// New creates a session. The session does not own the detector's lifetime;
// whoever opened it closes it.
func New(detector detection.Detector, extractor *motion.Extractor, w *world.World) *Session {
	return &Session{
		faces:     detection.NewAdapter(detector),
		extractor: extractor,
		world:     w,
		now:       time.Now,
	}
}

// Step applies the tick's input events in order and then advances the game
// by one tick.
func (s *Session) Step(events []Event) error {
	for _, ev := range events {
		if err := s.handle(ev); err != nil {
			return err
		}
	}

	switch s.world.State() {
	case world.Racing:
		sample := s.faces.Next()
		signal := s.extractor.NextSignal(sample)
		s.world.Tick(signal, s.now())
	case world.Finished:
		s.world.Tick(motion.Signal{}, s.now())
	}
	return nil
}

func (s *Session) handle(ev Event) error {
	state := s.world.State()

	switch ev.Kind {
	case Quit:
		return ErrQuit

	case Char:
		if state != world.NotStarted || !unicode.IsPrint(ev.Rune) {
			return nil
		}
		if utf8.RuneCountInString(s.name) < models.MaxNameLength {
			s.name += string(ev.Rune)
		}

	case Backspace:
		if state != world.NotStarted || s.name == "" {
			return nil
		}
		_, size := utf8.DecodeLastRuneInString(s.name)
		s.name = s.name[:len(s.name)-size]

	case Confirm:
		if state != world.NotStarted {
			return nil
		}
		if err := s.world.Start(strings.TrimSpace(s.name), s.now()); err != nil {
			debug.Log("start ignored: %v", err)
		}

	case Restart:
		if err := s.world.Reset(); err != nil {
			debug.Log("restart ignored in state %s: %v", state, err)
			return nil
		}
		s.extractor.Reset()
		s.name = ""
		log.Printf("Restarted, course regenerated")
	}
	return nil
}

// Snapshot returns what the renderer needs for this frame
func (s *Session) Snapshot() world.Snapshot {
	snap := s.world.Snapshot(s.now())
	snap.Calibration = s.extractor.Progress()
	snap.NameInput = s.name
	return snap
}

// Name returns the name typed so far
func (s *Session) Name() string {
	return s.name
}

// CanStart reports whether confirming now would start a race
func (s *Session) CanStart() bool {
	return s.world.State() == world.NotStarted && strings.TrimSpace(s.name) != ""
}
