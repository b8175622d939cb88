// Package srp illustrates the Single Responsibility principle with a Journal:
// a type whose only job is to accumulate and render text entries.
//
// What
//
//   - Journal keeps entries in insertion order.
//   - Each entry is tagged "<n>: <text>" where n is drawn from a Sequence.
//   - String renders all entries joined by "\n".
//   - Save exists only to mark where persistence would creep in; it always
//     fails with ErrNotImplemented. Storing a journal belongs to another type.
//
// Sequences
//
//	A Journal never owns hidden global numbering. By default every journal
//	gets its own Counter starting at 1. To number entries across several
//	journals, share one Counter explicitly:
//
//		c := srp.NewCounter()
//		a := srp.NewJournal(srp.WithSequence(c))
//		b := srp.NewJournal(srp.WithSequence(c))
//		a.AddEntry("x") // 1
//		b.AddEntry("y") // 2
//
// Errors
//
//   - ErrNotImplemented from Save, always.
//
// Complexity
//
//   - AddEntry: O(1) amortized.
//   - String:   O(total length of entries).
package srp
