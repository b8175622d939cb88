package lsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/solid/lsp"
)

func TestRectangle(t *testing.T) {
	r := lsp.NewRectangle(2, 3)
	assert.Equal(t, 2, r.Width())
	assert.Equal(t, 3, r.Height())
	assert.Equal(t, 6, r.Area())
	assert.Equal(t, "Width: 2 | Height: 3", r.String())

	lsp.Resize(r, 4, 5)
	assert.Equal(t, 20, r.Area())
	assert.False(t, lsp.IsSquare(r))

	var zero lsp.Rectangle
	assert.Equal(t, 0, zero.Area())
}

// TestSquare_MemberHiding shows that the base handle bypasses the squaring setters.
func TestSquare_MemberHiding(t *testing.T) {
	sq := lsp.NewSquare(2)

	// through the concrete type the shadowing setters apply
	sq.SetWidth(5)
	assert.Equal(t, 5, sq.Height())

	// through the base handle they do not
	base := sq.AsRectangle()
	lsp.Resize(base, 2, 3)
	assert.Equal(t, 2, base.Width())
	assert.Equal(t, 3, base.Height())
	assert.False(t, lsp.IsSquare(base))

	// the handle shares storage with the square, which is now broken
	assert.Equal(t, "Width: 2 | Height: 3", sq.String())
	assert.False(t, lsp.IsSquare(sq))
}

// TestSquare_ConcreteInInterface pins down Go's method-set rule: a *Square
// stored in a Shape dispatches to the shadowing setters.
func TestSquare_ConcreteInInterface(t *testing.T) {
	var s lsp.Shape = lsp.NewSquare(1)
	lsp.Resize(s, 2, 3)
	assert.True(t, lsp.IsSquare(s))
	assert.Equal(t, 9, s.Area())
}

// TestLiskovSquare_AlwaysSquare checks width == height through the base handle
// for a range of inputs.
func TestLiskovSquare_AlwaysSquare(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		w, h int
	}{
		{"equal", 3, 3},
		{"wider", 7, 2},
		{"taller", 1, 9},
		{"zero_width", 0, 4},
		{"negative", -2, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var s lsp.Shape = lsp.NewLiskovSquare(1)
			lsp.Resize(s, tc.w, tc.h)
			assert.True(t, lsp.IsSquare(s))
			assert.Equal(t, tc.h, s.Width(), "last setter wins")
			assert.Equal(t, tc.h*tc.h, s.Area())
		})
	}
}

func TestLiskovSquare_String(t *testing.T) {
	s := lsp.NewLiskovSquare(4)
	assert.Equal(t, "Width: 4 | Height: 4", s.String())
	s.SetHeight(6)
	assert.Equal(t, "Width: 6 | Height: 6", s.String())
}
