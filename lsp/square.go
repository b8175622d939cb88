package lsp

// Square couples its dimensions by shadowing Rectangle's setters.
// The coupling is visible only through *Square; the base handle returned
// by AsRectangle bypasses it.
type Square struct {
	Rectangle
}

// NewSquare returns a side×side square.
func NewSquare(side int) *Square {
	return &Square{Rectangle: Rectangle{width: side, height: side}}
}

// SetWidth sets both dimensions. Hides Rectangle.SetWidth.
func (s *Square) SetWidth(w int) {
	s.width, s.height = w, w
}

// SetHeight sets both dimensions. Hides Rectangle.SetHeight.
func (s *Square) SetHeight(h int) {
	s.width, s.height = h, h
}

// AsRectangle returns the embedded Rectangle, sharing storage with s.
// Calls through it resolve to Rectangle's own methods.
func (s *Square) AsRectangle() *Rectangle {
	return &s.Rectangle
}

// LiskovSquare keeps width == height through every Shape handle.
type LiskovSquare struct {
	side int
}

// NewLiskovSquare returns a side×side square.
func NewLiskovSquare(side int) *LiskovSquare {
	return &LiskovSquare{side: side}
}

// Width returns the side.
func (s *LiskovSquare) Width() int { return s.side }

// Height returns the side.
func (s *LiskovSquare) Height() int { return s.side }

// SetWidth sets the side.
func (s *LiskovSquare) SetWidth(w int) { s.side = w }

// SetHeight sets the side.
func (s *LiskovSquare) SetHeight(h int) { s.side = h }

// Area returns side².
func (s *LiskovSquare) Area() int { return s.side * s.side }

// String renders "Width: S | Height: S".
func (s *LiskovSquare) String() string {
	return (&Rectangle{width: s.side, height: s.side}).String()
}

var (
	_ Shape = (*Rectangle)(nil)
	_ Shape = (*Square)(nil)
	_ Shape = (*LiskovSquare)(nil)
)
