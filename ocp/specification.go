// SPDX-License-Identifier: MIT
// Package: solid/ocp
//
// specification.go — predicates over items and their combinators.
//
// Contract:
//   • And/Or PANIC on nil children (programmer error).
//   • Evaluation short-circuits left to right.

package ocp

// Specification is a predicate over T.
type Specification[T any] interface {
	IsSatisfied(item T) bool
}

// SpecFunc adapts an ordinary function to Specification.
type SpecFunc[T any] func(item T) bool

// IsSatisfied calls f(item).
func (f SpecFunc[T]) IsSatisfied(item T) bool { return f(item) }

// ColorSpecification matches products of one color.
type ColorSpecification struct {
	Color Color
}

// IsSatisfied reports whether p has the specified color.
func (s ColorSpecification) IsSatisfied(p Product) bool { return p.Color == s.Color }

// SizeSpecification matches products of one size.
type SizeSpecification struct {
	Size Size
}

// IsSatisfied reports whether p has the specified size.
func (s SizeSpecification) IsSatisfied(p Product) bool { return p.Size == s.Size }

type andSpecification[T any] struct {
	left, right Specification[T]
}

// And combines a and b with logical AND. b is not evaluated when a fails.
// Panics if either child is nil.
func And[T any](a, b Specification[T]) Specification[T] {
	if a == nil || b == nil {
		panic("ocp: And with nil specification")
	}
	return andSpecification[T]{left: a, right: b}
}

func (s andSpecification[T]) IsSatisfied(item T) bool {
	return s.left.IsSatisfied(item) && s.right.IsSatisfied(item)
}

type orSpecification[T any] struct {
	left, right Specification[T]
}

// Or combines a and b with logical OR. b is not evaluated when a holds.
// Panics if either child is nil.
func Or[T any](a, b Specification[T]) Specification[T] {
	if a == nil || b == nil {
		panic("ocp: Or with nil specification")
	}
	return orSpecification[T]{left: a, right: b}
}

func (s orSpecification[T]) IsSatisfied(item T) bool {
	return s.left.IsSatisfied(item) || s.right.IsSatisfied(item)
}
