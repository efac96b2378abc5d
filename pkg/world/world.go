// Package world simulates the scrolling road: the car, the pre-laid course,
// collisions, the finish line and the race state machine.
package world

import (
	"errors"
	"log"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/golangdaddy/headracer/pkg/models"
	"github.com/golangdaddy/headracer/pkg/motion"
	"github.com/golangdaddy/headracer/pkg/road"
	"github.com/google/uuid"
)

var (
	// ErrInvalidTransition is returned for a start or restart the current
	// race state does not allow
	ErrInvalidTransition = errors.New("invalid race state transition")
	// ErrEmptyName is returned when starting without a player name
	ErrEmptyName = errors.New("player name is empty")
)

// RaceState is the phase of the race
type RaceState int

const (
	NotStarted RaceState = iota
	Racing
	Finished
	Crashed
)

func (s RaceState) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case Racing:
		return "racing"
	case Finished:
		return "finished"
	case Crashed:
		return "crashed"
	}
	return "unknown"
}

// Config holds the driving tunables
type Config struct {
	Layout             road.Layout
	CarWidth           float64
	CarHeight          float64
	CarOffsetY         float64 // Car centre distance from the bottom of the screen
	LateralGain        float64 // Pixels per tick at full steering
	SpeedGain          float64 // Speed change per tick at full throttle
	MinSpeed           float64
	MaxSpeed           float64
	FinishLineDistance float64
}

// DefaultConfig returns the tuning used by the game
func DefaultConfig() Config {
	return Config{
		Layout:             road.DefaultLayout(),
		CarWidth:           60,
		CarHeight:          100,
		CarOffsetY:         150,
		LateralGain:        7,
		SpeedGain:          0.5,
		MinSpeed:           1,
		MaxSpeed:           8,
		FinishLineDistance: 5000,
	}
}

// Car is the player's car. Y never changes; the world scrolls instead.
type Car struct {
	X, Y  float64 // Centre
	Speed float64 // Pixels per tick
}

// World owns the car, the course, the balloons and the current run
type World struct {
	config Config
	rng    *rand.Rand

	state    RaceState
	car      Car
	scroll   float64
	distance float64
	course   road.Course
	balloons []Balloon
	run      *models.Run
	signal   motion.Signal
	crash    *CrashEvent
}

// New creates a world with a freshly generated course, waiting to start
func New(cfg Config, rng *rand.Rand) *World {
	w := &World{
		config: cfg,
		rng:    rng,
	}
	w.reset()
	return w
}

// reset puts everything back to the pre-race layout and regenerates the course
func (w *World) reset() {
	l := w.config.Layout
	w.state = NotStarted
	w.car = Car{
		X:     l.ScreenWidth / 2,
		Y:     l.ScreenHeight - w.config.CarOffsetY,
		Speed: w.config.MinSpeed,
	}
	w.scroll = 0
	w.distance = 0
	w.course = road.Generate(l, w.rng)
	w.balloons = nil
	w.run = nil
	w.signal = motion.Signal{}
	w.crash = nil
}

// Start begins a race for the named player
func (w *World) Start(playerName string, now time.Time) error {
	if w.state != NotStarted {
		return ErrInvalidTransition
	}
	if strings.TrimSpace(playerName) == "" {
		return ErrEmptyName
	}

	w.run = models.NewRun(playerName, now)
	w.car.Speed = w.config.MinSpeed
	w.state = Racing
	log.Printf("Race started: %s (run %s)", playerName, w.run.ID)
	return nil
}

// Reset returns a finished or crashed race to the start screen with a new
// course
func (w *World) Reset() error {
	if w.state != Finished && w.state != Crashed {
		return ErrInvalidTransition
	}
	w.reset()
	return nil
}

// Tick advances the world by one frame. While racing the car is steered by
// the signal, the course scrolls, and collision then finish are checked.
// After a finish only the balloons move.
func (w *World) Tick(signal motion.Signal, now time.Time) {
	switch w.state {
	case Racing:
		w.race(signal, now)
	case Finished:
		w.balloons = updateBalloons(w.balloons, -50)
	}
}

func (w *World) race(signal motion.Signal, now time.Time) {
	// a threshold already met when the tick starts beats any collision
	if w.distance >= w.config.FinishLineDistance {
		w.finish(now)
		return
	}

	w.signal = signal
	l := w.config.Layout
	half := w.config.CarWidth / 2

	// out-of-road moves are rejected, not saturated
	x := w.car.X + signal.Horizontal*w.config.LateralGain
	if x >= l.Left()+half && x <= l.Right()-half {
		w.car.X = x
	}

	w.car.Speed = math.Max(w.config.MinSpeed,
		math.Min(w.config.MaxSpeed, w.car.Speed+signal.Vertical*w.config.SpeedGain))

	speed := w.car.Speed
	w.scroll += speed
	w.distance += speed
	road.TranslateAll(w.course.Trees, 0, speed)
	road.TranslateAll(w.course.Houses, 0, speed)
	road.TranslateAll(w.course.Hurdles, 0, speed)

	if ev := Check(w.CarBox(), w.course.Hurdles); ev != nil {
		ev.Distance = w.distance
		w.crash = ev
		w.state = Crashed
		w.run.End(now)
		log.Printf("Crashed into %s at %.0f/%.0f (run %s, %.2fs)",
			ev.Hurdle.Kind, w.distance, w.config.FinishLineDistance, w.run.ID, w.run.Elapsed(now).Seconds())
		return
	}

	cull := l.CullLine()
	w.course.Trees = road.Cull(w.course.Trees, cull)
	w.course.Houses = road.Cull(w.course.Houses, cull)
	w.course.Hurdles = road.Cull(w.course.Hurdles, cull)

	if w.distance >= w.config.FinishLineDistance {
		w.finish(now)
	}
}

func (w *World) finish(now time.Time) {
	w.state = Finished
	w.run.End(now)
	l := w.config.Layout
	w.balloons = releaseBalloons(l.ScreenWidth, l.ScreenHeight, w.rng)
	log.Printf("Finished: %s in %.2fs (run %s)", w.run.PlayerName, w.run.Elapsed(now).Seconds(), w.run.ID)
}

// CarBox returns the car's bounding box
func (w *World) CarBox() road.Rect {
	return road.Rect{
		X: w.car.X - w.config.CarWidth/2,
		Y: w.car.Y - w.config.CarHeight/2,
		W: w.config.CarWidth,
		H: w.config.CarHeight,
	}
}

// State returns the current race state
func (w *World) State() RaceState {
	return w.state
}

// Car returns the car
func (w *World) Car() Car {
	return w.car
}

// Distance returns how far the car has travelled this run
func (w *World) Distance() float64 {
	return w.distance
}

// Config returns the world tuning
func (w *World) Config() Config {
	return w.config
}

// Snapshot is a read-only copy of everything the renderer needs for a frame
type Snapshot struct {
	State       RaceState
	Car         Car
	CarBox      road.Rect
	Layout      road.Layout
	Scroll      float64
	Distance    float64
	FinishLine  float64
	MaxSpeed    float64
	Trees       []road.Actor
	Houses      []road.Actor
	Hurdles     []road.Actor
	Balloons    []Balloon
	Elapsed     time.Duration
	RunID       uuid.UUID
	PlayerName  string
	Signal      motion.Signal
	Crash       *CrashEvent
	Calibration float64 // Calibration progress in [0, 1], set by the session
	NameInput   string  // Name being typed on the start screen, set by the session
}

// Progress returns the distance as a fraction of the finish line
func (s Snapshot) Progress() float64 {
	if s.FinishLine <= 0 {
		return 0
	}
	return math.Min(1, s.Distance/s.FinishLine)
}

// Snapshot copies the world state for rendering
func (w *World) Snapshot(now time.Time) Snapshot {
	s := Snapshot{
		State:      w.state,
		Car:        w.car,
		CarBox:     w.CarBox(),
		Layout:     w.config.Layout,
		Scroll:     w.scroll,
		Distance:   w.distance,
		FinishLine: w.config.FinishLineDistance,
		MaxSpeed:   w.config.MaxSpeed,
		Trees:      append([]road.Actor(nil), w.course.Trees...),
		Houses:     append([]road.Actor(nil), w.course.Houses...),
		Hurdles:    append([]road.Actor(nil), w.course.Hurdles...),
		Balloons:   append([]Balloon(nil), w.balloons...),
		Signal:     w.signal,
	}
	if w.crash != nil {
		crash := *w.crash
		s.Crash = &crash
	}
	if w.run != nil {
		s.Elapsed = w.run.Elapsed(now)
		s.RunID = w.run.ID
		s.PlayerName = w.run.PlayerName
	}
	return s
}
