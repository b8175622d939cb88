// Package ocp illustrates the Open/Closed principle: a filter should be open
// for extension (new criteria) yet closed for modification (its code never
// changes when criteria are added).
//
// What
//
//   - Product: a named item with a Color and a Size. NewProduct rejects empty
//     or whitespace-only names with ErrInvalidArgument.
//   - ProductFilter: the baseline. Every new criterion needs a new method
//     (FilterBySize, FilterByColor, FilterBySizeAndColor, ...).
//   - Specification[T]: a predicate over T. BetterFilter[T] filters any slice
//     by any Specification without ever being edited again.
//   - ColorSpecification, SizeSpecification: concrete product predicates.
//   - And, Or: combinators over two specifications with the usual
//     short-circuit order (the right side is skipped when the left decides).
//
// Usage
//
//	large := ocp.SizeSpecification{Size: ocp.Large}
//	blue := ocp.ColorSpecification{Color: ocp.Blue}
//	f := ocp.BetterFilter[ocp.Product]{}
//	bigBlue := f.Filter(products, ocp.And[ocp.Product](blue, large))
//
// Determinism
//
//	Filter results preserve the relative order of the input.
//
// Errors
//
//   - ErrInvalidArgument from NewProduct for a blank name.
//   - And/Or panic on a nil child: that is a programming error, not input.
package ocp
