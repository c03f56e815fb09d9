// Package view holds the filter, sort and bucket helpers shared by every
// dashboard panel. All functions are pure and never modify their input.
package view

import (
	"cmp"
	"slices"
	"strings"
)

// Predicate reports whether an item is kept.
type Predicate[T any] func(T) bool

// All is the conjunction of preds. No predicates keeps everything.
func All[T any](preds ...Predicate[T]) Predicate[T] {
	return func(item T) bool {
		for _, p := range preds {
			if p != nil && !p(item) {
				return false
			}
		}
		return true
	}
}

// Equals keeps items whose field equals want. An empty want is the "All"
// option of a facet dropdown and keeps everything.
func Equals[T any](want string, field func(T) string) Predicate[T] {
	if want == "" {
		return nil
	}
	return func(item T) bool { return field(item) == want }
}

// ContainsFold keeps items whose field contains needle, ignoring case.
func ContainsFold[T any](needle string, field func(T) string) Predicate[T] {
	if needle == "" {
		return nil
	}
	needle = strings.ToLower(needle)
	return func(item T) bool { return strings.Contains(strings.ToLower(field(item)), needle) }
}

// AtLeast keeps items whose field is >= min.
func AtLeast[T any](min float64, field func(T) float64) Predicate[T] {
	return func(item T) bool { return field(item) >= min }
}

// Filter returns the kept items in their original order.
func Filter[T any](items []T, keep Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep == nil || keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// Comparator orders two items the way slices.SortFunc expects.
type Comparator[T any] func(a, b T) int

// By orders ascending on an ordered field.
func By[T any, K cmp.Ordered](field func(T) K) Comparator[T] {
	return func(a, b T) int { return cmp.Compare(field(a), field(b)) }
}

// Desc reverses a comparator.
func Desc[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int { return c(b, a) }
}

// Direction applies c ascending or descending.
func Direction[T any](c Comparator[T], descending bool) Comparator[T] {
	if descending {
		return Desc(c)
	}
	return c
}

// Sorted returns a stably sorted copy; equal items keep their input order.
func Sorted[T any](items []T, c Comparator[T]) []T {
	out := slices.Clone(items)
	if c != nil {
		slices.SortStableFunc(out, c)
	}
	return out
}

// Distinct returns the distinct field values in first-seen order.
func Distinct[T any](items []T, field func(T) string) []string {
	seen := make(map[string]struct{}, len(items))
	var out []string
	for _, item := range items {
		v := field(item)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Count returns how many items satisfy keep.
func Count[T any](items []T, keep Predicate[T]) int {
	n := 0
	for _, item := range items {
		if keep == nil || keep(item) {
			n++
		}
	}
	return n
}
