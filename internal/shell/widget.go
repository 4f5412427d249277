package shell

// Rect is a screen rectangle in logical pixels.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point lies inside r, edges included.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Button tracks hover and press state across frames.
type Button struct {
	Rect
	Label   string
	Hovered bool
	Pressed bool
}

// Update feeds one frame of mouse input and reports a completed click:
// pressed and released while hovering.
func (b *Button) Update(in Input) bool {
	b.Hovered = b.Contains(in.MouseX, in.MouseY)

	if b.Hovered && in.Pressed {
		b.Pressed = true
	}
	clicked := false
	if in.Released {
		clicked = b.Pressed && b.Hovered
		b.Pressed = false
	}
	return clicked
}
