package shell

import "unicode"

// Field is a single-line free-text input.
type Field struct {
	Rect
	Label  string
	text   []rune
	cursor int
	maxLen int
}

func NewField(r Rect, label, text string, maxLen int) *Field {
	f := &Field{Rect: r, Label: label, maxLen: maxLen}
	f.SetText(text)
	return f
}

func (f *Field) Text() string { return string(f.text) }

// Cursor is the insertion point as a rune index.
func (f *Field) Cursor() int { return f.cursor }

// SetText replaces the content and moves the cursor to the end.
func (f *Field) SetText(s string) {
	f.text = f.text[:0]
	f.cursor = 0
	f.Insert([]rune(s))
}

// Insert types rs at the cursor. Control characters are dropped and the
// content never grows past maxLen.
func (f *Field) Insert(rs []rune) {
	for _, r := range rs {
		if unicode.IsControl(r) {
			continue
		}
		if f.maxLen > 0 && len(f.text) >= f.maxLen {
			return
		}
		f.text = append(f.text, 0)
		copy(f.text[f.cursor+1:], f.text[f.cursor:])
		f.text[f.cursor] = r
		f.cursor++
	}
}

// Edit applies an editing key; other keys are ignored.
func (f *Field) Edit(k Key) {
	switch k {
	case KeyBackspace:
		if f.cursor > 0 {
			f.text = append(f.text[:f.cursor-1], f.text[f.cursor:]...)
			f.cursor--
		}
	case KeyDelete:
		if f.cursor < len(f.text) {
			f.text = append(f.text[:f.cursor], f.text[f.cursor+1:]...)
		}
	case KeyLeft:
		if f.cursor > 0 {
			f.cursor--
		}
	case KeyRight:
		if f.cursor < len(f.text) {
			f.cursor++
		}
	case KeyHome:
		f.cursor = 0
	case KeyEnd:
		f.cursor = len(f.text)
	}
}

// PlaceCursor moves the cursor to the rune boundary nearest column col.
func (f *Field) PlaceCursor(col int) {
	switch {
	case col < 0:
		f.cursor = 0
	case col > len(f.text):
		f.cursor = len(f.text)
	default:
		f.cursor = col
	}
}
