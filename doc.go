// Package solid is a small collection of samples for four of the SOLID
// design principles, each in its own package and each contrasting a version
// that breaks the principle with one that follows it.
//
//	srp/ — Single Responsibility: a Journal that records entries and leaves
//	       persistence to someone else.
//	ocp/ — Open/Closed: products filtered by composable Specifications
//	       instead of a filter that grows a method per criterion.
//	lsp/ — Liskov Substitution: Square hides Rectangle's setters,
//	       LiskovSquare overrides them through the Shape interface.
//	isp/ — Interface Segregation: a fat Machine interface split into
//	       Printer, Scanner and FaxMachine.
//
// Dependency Inversion has no sample here.
//
// cmd/solidtour prints every demonstration:
//
//	go run github.com/katalvlaran/solid/cmd/solidtour -p all
//
// The packages have no I/O and no shared state; each can be read on its own.
package solid
