// SPDX-License-Identifier: MIT
// Package: solid/lsp
//
// shape.go — the Shape handle and the plain Rectangle.

package lsp

import "fmt"

// Shape is a rectangle-like figure with mutable dimensions.
type Shape interface {
	Width() int
	Height() int
	SetWidth(w int)
	SetHeight(h int)
	Area() int
	String() string
}

// Rectangle has independent width and height. The zero value is 0×0.
type Rectangle struct {
	width, height int
}

// NewRectangle returns a w×h rectangle.
func NewRectangle(w, h int) *Rectangle {
	return &Rectangle{width: w, height: h}
}

// Width returns the width.
func (r *Rectangle) Width() int { return r.width }

// Height returns the height.
func (r *Rectangle) Height() int { return r.height }

// SetWidth changes only the width.
func (r *Rectangle) SetWidth(w int) { r.width = w }

// SetHeight changes only the height.
func (r *Rectangle) SetHeight(h int) { r.height = h }

// Area returns width × height.
func (r *Rectangle) Area() int { return r.width * r.height }

// String renders "Width: W | Height: H".
func (r *Rectangle) String() string {
	return fmt.Sprintf("Width: %d | Height: %d", r.width, r.height)
}

// Resize sets width then height through the handle s.
func Resize(s Shape, w, h int) {
	s.SetWidth(w)
	s.SetHeight(h)
}

// IsSquare reports whether s currently has equal sides.
func IsSquare(s Shape) bool { return s.Width() == s.Height() }
