package vector

import (
	"iter"
	"unsafe"
)

// Iterator is a random-access position in a Vector's storage.
//
// An Iterator holds the storage array it was taken from, not the Vector.
// After an operation that reallocates or shifts elements (PushBack or
// Insert past capacity, Insert, Erase, Reserve, a growing Resize, Assign,
// MoveFrom, Swap) it still refers to the old array and must not be used
// with the Vector again.
type Iterator[T any] struct {
	base []T
	off  int
}

// Begin returns an iterator to the first element.
func (v *Vector[T]) Begin() Iterator[T] {
	return Iterator[T]{base: v.storage.Get()}
}

// End returns an iterator one past the last live element.
// For an empty vector Begin() and End() compare equal.
func (v *Vector[T]) End() Iterator[T] {
	return Iterator[T]{base: v.storage.Get(), off: v.size}
}

// Offset returns the index of the position relative to the start of the
// storage.
func (it Iterator[T]) Offset() int {
	return it.off
}

// Value returns the element at the position.
func (it Iterator[T]) Value() T {
	return it.base[it.off]
}

// Ptr returns a pointer to the element at the position.
func (it Iterator[T]) Ptr() *T {
	return &it.base[it.off]
}

// Set stores value at the position.
func (it Iterator[T]) Set(value T) {
	it.base[it.off] = value
}

// Add returns the iterator moved n positions (n may be negative).
func (it Iterator[T]) Add(n int) Iterator[T] {
	it.off += n
	return it
}

// Next returns the following position.
func (it Iterator[T]) Next() Iterator[T] {
	return it.Add(1)
}

// Prev returns the preceding position.
func (it Iterator[T]) Prev() Iterator[T] {
	return it.Add(-1)
}

// Distance returns it - from. Both iterators must belong to the same
// storage.
func (it Iterator[T]) Distance(from Iterator[T]) int {
	return it.off - from.off
}

// Equal reports whether both iterators refer to the same position of the
// same storage.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return unsafe.SliceData(it.base) == unsafe.SliceData(other.base) && it.off == other.off
}

// Less reports whether it precedes other. Both iterators must belong to
// the same storage.
func (it Iterator[T]) Less(other Iterator[T]) bool {
	return it.off < other.off
}

// All returns an iterator over index/value pairs of the live elements.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range v.size {
			if !yield(i, *v.storage.At(i)) {
				return
			}
		}
	}
}

// Values returns an iterator over the live elements.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range v.size {
			if !yield(*v.storage.At(i)) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/value pairs of the live
// elements, last to first.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, *v.storage.At(i)) {
				return
			}
		}
	}
}
