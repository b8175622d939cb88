// Package lsp illustrates the Liskov Substitution principle with the classic
// rectangle and square.
//
// What
//
//   - Shape: the base-typed handle callers program against.
//   - Rectangle: width and height set independently.
//   - Square: embeds Rectangle and SHADOWS its setters. The squaring setters
//     exist only on *Square itself; code holding the embedded base
//     (AsRectangle) reaches Rectangle's setters and may observe width != height.
//   - LiskovSquare: OVERRIDES the setters as part of the Shape method set, so
//     every Shape handle observes width == height.
//
// Why
//
//	Go has no inheritance. Embedding promotes methods, and a method declared
//	on the outer type hides the promoted one, but only for calls made on the
//	outer type. Once you hold the embedded value directly the outer method is
//	unreachable: that is member hiding. Dynamic dispatch in Go happens through
//	interfaces, so a subtype that must be substitutable has to satisfy the
//	interface with its own behavior: that is overriding.
//
// Usage
//
//	sq := lsp.NewSquare(2)
//	base := sq.AsRectangle()
//	base.SetWidth(4)   // Rectangle.SetWidth: height stays 2
//
//	var s lsp.Shape = lsp.NewLiskovSquare(2)
//	s.SetWidth(4)      // LiskovSquare.SetWidth: height becomes 4
//
// Note that storing a *Square itself in a Shape does reach the shadowing
// setters: the method set of *Square includes them. The failure shows up only
// once a caller holds the base value, which is what AsRectangle hands out.
//
// Resize and IsSquare are the probes used by the tests and the tour.
package lsp
