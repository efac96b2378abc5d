package session

// EventKind is a discrete user input
type EventKind int

const (
	Quit EventKind = iota
	Char
	Backspace
	Confirm
	Restart
)

// Event is one user input. Rune is only set for Char.
type Event struct {
	Kind EventKind
	Rune rune
}

// CharEvent returns a text-entry event for r
func CharEvent(r rune) Event {
	return Event{Kind: Char, Rune: r}
}
