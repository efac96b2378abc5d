package game

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/headracer/pkg/road"
	"github.com/golangdaddy/headracer/pkg/session"
	"github.com/golangdaddy/headracer/pkg/ui"
	"github.com/golangdaddy/headracer/pkg/world"
)

// Game implements the ebiten.Game interface and drives one session
type Game struct {
	session *session.Session
	layout  road.Layout
	input   inputSource
	chars   []rune

	title    *ui.TitleScreen
	roadView *ui.RoadView
}

// NewGame creates a game around a session. seed picks the grass texture.
func NewGame(s *session.Session, layout road.Layout, seed int64) *Game {
	return &Game{
		session:  s,
		layout:   layout,
		input:    ebitenInput{},
		title:    ui.NewTitleScreen(int(layout.ScreenWidth), int(layout.ScreenHeight)),
		roadView: ui.NewRoadView(layout, seed),
	}
}

// Update runs one tick. Quitting ends the ebiten loop cleanly.
func (g *Game) Update() error {
	var events []session.Event
	events, g.chars = pollEvents(g.input, g.chars, g.title.PlayButton())

	if err := g.session.Step(events); err != nil {
		if errors.Is(err, session.ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

// Draw renders the screen for the current race state
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.session.Snapshot()

	switch snap.State {
	case world.NotStarted:
		g.title.Draw(screen, snap)
	case world.Racing:
		g.roadView.Draw(screen, snap)
	case world.Finished:
		g.roadView.Draw(screen, snap)
		ui.DrawFinished(screen, snap)
	case world.Crashed:
		g.roadView.Draw(screen, snap)
		ui.DrawCrashed(screen, snap)
	}
}

// Layout returns the game's screen dimensions
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return int(g.layout.ScreenWidth), int(g.layout.ScreenHeight)
}
