package shell

// Key is an editing or command key, already debounced and repeated by the
// frontend.
type Key int

const (
	KeyNone Key = iota
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyEnter
	KeyTab
	KeyHelp
	KeyQuit
)

// Input is one frame of user input.
type Input struct {
	MouseX, MouseY int
	// Pressed and Released are edges of the primary mouse button.
	Pressed  bool
	Released bool
	Chars    []rune
	Keys     []Key
}
