package ocp

import "iter"

// ProductFilter is the closed-to-extension baseline: each new criterion
// means editing this type.
type ProductFilter struct{}

// FilterBySize returns the products whose Size equals size.
func (ProductFilter) FilterBySize(products []Product, size Size) []Product {
	var out []Product
	for _, p := range products {
		if p.Size == size {
			out = append(out, p)
		}
	}
	return out
}

// FilterByColor returns the products whose Color equals color.
func (ProductFilter) FilterByColor(products []Product, color Color) []Product {
	var out []Product
	for _, p := range products {
		if p.Color == color {
			out = append(out, p)
		}
	}
	return out
}

// FilterBySizeAndColor returns the products matching both size and color.
func (ProductFilter) FilterBySizeAndColor(products []Product, size Size, color Color) []Product {
	var out []Product
	for _, p := range products {
		if p.Size == size && p.Color == color {
			out = append(out, p)
		}
	}
	return out
}

// Filter selects the items of a slice that satisfy a Specification.
type Filter[T any] interface {
	Filter(items []T, spec Specification[T]) []T
}

// BetterFilter is the open-for-extension filter. New criteria are new
// Specifications; this code does not change.
type BetterFilter[T any] struct{}

// Filter returns the items satisfying spec, in input order.
// A nil spec is treated as "match nothing".
func (BetterFilter[T]) Filter(items []T, spec Specification[T]) []T {
	var out []T
	if spec == nil {
		return out
	}
	for _, item := range items {
		if spec.IsSatisfied(item) {
			out = append(out, item)
		}
	}
	return out
}

// FilterSeq is the lazy form of BetterFilter.Filter over an iterator.
// spec is evaluated only as items are pulled.
func FilterSeq[T any](seq iter.Seq[T], spec Specification[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if spec == nil {
			return
		}
		for item := range seq {
			if !spec.IsSatisfied(item) {
				continue
			}
			if !yield(item) {
				return
			}
		}
	}
}
