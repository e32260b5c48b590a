package input

import "fmt"

type Kind int

const (
	Quit Kind = iota
	KeyDown
	KeyUp
)

func (k Kind) String() string {
	switch k {
	case Quit:
		return "quit"
	case KeyDown:
		return "key_down"
	case KeyUp:
		return "key_up"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Key identifies a keyboard key. Only the keys the game reacts to are named.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
)

type Event struct {
	Kind Kind
	Key  Key
}

// EndsSession reports whether the event asks the game to stop: a window
// close, or Escape going down.
func (e Event) EndsSession() bool {
	return e.Kind == Quit || (e.Kind == KeyDown && e.Key == KeyEscape)
}

func (e Event) String() string {
	if e.Kind == Quit {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s(%d)", e.Kind, e.Key)
}
