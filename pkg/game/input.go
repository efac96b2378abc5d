package game

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/golangdaddy/headracer/pkg/session"
)

// inputSource is the slice of ebiten's input API the game reads each tick
type inputSource interface {
	AppendInputChars(runes []rune) []rune
	IsKeyJustPressed(key ebiten.Key) bool
	IsMouseButtonJustPressed(button ebiten.MouseButton) bool
	CursorPosition() (x, y int)
}

type ebitenInput struct{}

func (ebitenInput) AppendInputChars(runes []rune) []rune {
	return ebiten.AppendInputChars(runes)
}

func (ebitenInput) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

func (ebitenInput) IsMouseButtonJustPressed(button ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(button)
}

func (ebitenInput) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

var keyEvents = []struct {
	key  ebiten.Key
	kind session.EventKind
}{
	{ebiten.KeyEnter, session.Confirm},
	{ebiten.KeyNumpadEnter, session.Confirm},
	{ebiten.KeyBackspace, session.Backspace},
	{ebiten.KeySpace, session.Restart},
	{ebiten.KeyEscape, session.Quit},
}

// pollEvents turns this tick's input into session events: typed characters
// first, then keys, then a click on the PLAY button
func pollEvents(in inputSource, chars []rune, playButton image.Rectangle) ([]session.Event, []rune) {
	chars = in.AppendInputChars(chars[:0])

	events := make([]session.Event, 0, len(chars)+1)
	for _, r := range chars {
		events = append(events, session.CharEvent(r))
	}
	for _, k := range keyEvents {
		if in.IsKeyJustPressed(k.key) {
			events = append(events, session.Event{Kind: k.kind})
		}
	}
	if in.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if image.Pt(in.CursorPosition()).In(playButton) {
			events = append(events, session.Event{Kind: session.Confirm})
		}
	}
	return events, chars
}
