package vector

import (
	"cmp"
	"slices"
)

// Compare compares the live elements of a and b lexicographically using
// the element type's < operator. The result is -1 if a < b, +1 if b < a,
// and 0 otherwise. Elements unordered by < (NaN) count as equivalent, so
// 0 does not imply Equal.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	return slices.CompareFunc(a.Data(), b.Data(), compareLess[T])
}

// compareLess orders x and y by < alone, unlike cmp.Compare which sorts
// NaN before every other value.
func compareLess[T cmp.Ordered](x, y T) int {
	switch {
	case x < y:
		return -1
	case y < x:
		return +1
	}
	return 0
}

// CompareFunc is like Compare but uses cmpFn on each pair of elements.
func CompareFunc[T any](a, b *Vector[T], cmpFn func(T, T) int) int {
	return slices.CompareFunc(a.Data(), b.Data(), cmpFn)
}

// Equal reports whether a and b have the same length and pairwise equal
// elements.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.Data(), b.Data())
}

// EqualFunc is like Equal but uses eq on each pair of elements.
func EqualFunc[T any](a, b *Vector[T], eq func(T, T) bool) bool {
	return slices.EqualFunc(a.Data(), b.Data(), eq)
}

// Less reports whether a sorts lexicographically before b.
func Less[T cmp.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) < 0
}

// LessOrEqual reports whether a < b or a == b.
func LessOrEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return Less(a, b) || Equal(a, b)
}

// Greater reports whether b < a.
func Greater[T cmp.Ordered](a, b *Vector[T]) bool {
	return Less(b, a)
}

// GreaterOrEqual reports whether a > b or a == b.
func GreaterOrEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return Greater(a, b) || Equal(a, b)
}
