// SPDX-License-Identifier: MIT
// Package: solid/ocp
//
// product.go — the Product entity, its enums and name validation.
//
// Contract:
//   • NewProduct returns ErrInvalidArgument (wrapped) for blank names.
//   • Non-blank names are stored verbatim.

package ocp

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArgument is returned when a constructor argument is rejected.
var ErrInvalidArgument = errors.New("ocp: invalid argument")

// Color of a product.
type Color int

const (
	Red Color = iota
	Green
	Blue
)

// String returns the color name.
func (c Color) String() string {
	switch c {
	case Red:
		return "Red"
	case Green:
		return "Green"
	case Blue:
		return "Blue"
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

// Size of a product.
type Size int

const (
	Small Size = iota
	Medium
	Large
)

// String returns the size name.
func (s Size) String() string {
	switch s {
	case Small:
		return "Small"
	case Medium:
		return "Medium"
	case Large:
		return "Large"
	}
	return fmt.Sprintf("Size(%d)", int(s))
}

// Product is the entity being filtered.
type Product struct {
	Name  string
	Color Color
	Size  Size
}

// NewProduct validates name and returns a Product holding the arguments
// verbatim. A name that is empty or only whitespace yields ErrInvalidArgument.
func NewProduct(name string, color Color, size Size) (Product, error) {
	if strings.TrimSpace(name) == "" {
		return Product{}, fmt.Errorf("%w: name must not be blank (got %q)", ErrInvalidArgument, name)
	}

	return Product{Name: name, Color: color, Size: size}, nil
}

// String renders "Name (Color, Size)".
func (p Product) String() string {
	return fmt.Sprintf("%s (%s, %s)", p.Name, p.Color, p.Size)
}
