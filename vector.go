package vector

import "fmt"

// Vector is a growable array of T stored contiguously in an OwnedBuffer.
// Not goroutine-safe. The zero value is an empty vector ready to use.
//
// Slots in [Size(), Capacity()) always hold valid values of T: either the
// zero value written at allocation time or a value left behind by Clear,
// PopBack, Erase or a shrinking Resize. They are never read before being
// written again.
//
// Vector must not be copied; use Clone, Assign or MoveFrom.
type Vector[T any] struct {
	storage  OwnedBuffer[T]
	size     int
	capacity int
}

// Reservation is a request for pre-allocated capacity, see NewReserved.
type Reservation struct {
	n int
}

// Reserve returns a Reservation for n elements.
func Reserve(n int) Reservation {
	return Reservation{n: n}
}

// Capacity returns the number of elements the reservation asks for.
func (r Reservation) Capacity() int {
	return r.n
}

// New returns an empty vector.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewWithSize returns a vector of n zero values. Size and capacity are n.
func NewWithSize[T any](n int) *Vector[T] {
	var zero T
	return NewFilled(n, zero)
}

// NewFilled returns a vector of n copies of value. Size and capacity are n.
func NewFilled[T any](n int, value T) *Vector[T] {
	panicIfNegative(n)
	v := &Vector[T]{}
	tmp := NewOwnedBuffer[T](n)
	v.storage.MoveFrom(tmp)
	v.size, v.capacity = n, n
	for i := range v.size {
		*v.storage.At(i) = value
	}
	return v
}

// Of returns a vector holding a copy of items, in order.
// Size and capacity equal len(items).
func Of[T any](items ...T) *Vector[T] {
	v := NewWithSize[T](len(items))
	copy(v.storage.Get(), items)
	return v
}

// NewReserved returns an empty vector with capacity for r.Capacity()
// elements.
func NewReserved[T any](r Reservation) *Vector[T] {
	v := &Vector[T]{}
	v.Reserve(r.n)
	return v
}

// Clone returns a deep copy of v. The copy is tight: its capacity equals
// v.Size(), spare capacity of v is not preserved.
func (v *Vector[T]) Clone() *Vector[T] {
	c := NewWithSize[T](v.size)
	copy(c.storage.Get(), v.Data())
	return c
}

// Assign replaces the contents of v with a copy of src.
func (v *Vector[T]) Assign(src *Vector[T]) {
	if v == src {
		return
	}
	tmp := src.Clone()
	v.Swap(tmp)
}

// MoveFrom transfers src's storage, size and capacity to v without
// copying elements. src is left empty. v's previous storage is dropped.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.storage.MoveFrom(&src.storage)
	v.size, src.size = src.size, 0
	v.capacity, src.capacity = src.capacity, 0
}

// Swap exchanges the contents of v and other in constant time.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.storage.Swap(&other.storage)
	v.size, other.size = other.size, v.size
	v.capacity, other.capacity = other.capacity, v.capacity
}

// Size returns the number of live elements.
func (v *Vector[T]) Size() int {
	return v.size
}

// Capacity returns the number of allocated elements.
func (v *Vector[T]) Capacity() int {
	return v.capacity
}

// IsEmpty reports whether v has no live elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// Data returns the live elements. The slice aliases v's storage and is
// invalidated by any reallocation.
func (v *Vector[T]) Data() []T {
	s := v.storage.Get()
	if s == nil {
		return nil
	}
	return s[:v.size:v.size]
}

// Index returns element i without checking it against Size.
// Indices in [Size(), Capacity()) read a dead slot; indices outside the
// allocation panic.
func (v *Vector[T]) Index(i int) T {
	return *v.storage.At(i)
}

// Ref returns a pointer to element i without checking it against Size.
func (v *Vector[T]) Ref(i int) *T {
	return v.storage.At(i)
}

// Set stores value at index i without checking it against Size.
func (v *Vector[T]) Set(i int, value T) {
	*v.storage.At(i) = value
}

// At returns element i, or a *RangeError if i is not in [0, Size()).
func (v *Vector[T]) At(i int) (T, error) {
	p, err := v.ref("At", i)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// AtRef returns a pointer to element i, or a *RangeError if i is not in
// [0, Size()).
func (v *Vector[T]) AtRef(i int) (*T, error) {
	return v.ref("AtRef", i)
}

func (v *Vector[T]) ref(op string, i int) (*T, error) {
	if i < 0 || i >= v.size {
		return nil, rangeError(op, i, v.size)
	}
	return v.storage.At(i), nil
}

// Front returns the first element. v must not be empty.
func (v *Vector[T]) Front() T {
	return *v.storage.At(0)
}

// Back returns the last element. v must not be empty.
func (v *Vector[T]) Back() T {
	return *v.storage.At(v.size - 1)
}

// Reserve grows the capacity to exactly n if n exceeds the current
// capacity, keeping the live elements. It never shrinks.
func (v *Vector[T]) Reserve(n int) {
	panicIfNegative(n)
	if n <= v.capacity {
		return
	}
	v.reallocate(n)
}

// Resize sets the size to n. Growing exposes zero values, including
// within existing capacity where stale values are overwritten.
// When n exceeds the capacity, both size and capacity become
// max(n, 2*Capacity()).
func (v *Vector[T]) Resize(n int) {
	panicIfNegative(n)
	switch {
	case n <= v.size:
		v.size = n
	case n <= v.capacity:
		clear(v.storage.Get()[v.size:n])
		v.size = n
	default:
		n = max(n, 2*v.capacity)
		v.reallocate(n)
		v.size = n
	}
}

// PushBack appends value, doubling the capacity when v is full.
func (v *Vector[T]) PushBack(value T) {
	if v.size == v.capacity {
		v.reallocate(v.grownCapacity())
	}
	*v.storage.At(v.size) = value
	v.size++
}

// PopBack removes the last element. It is a no-op on an empty vector,
// though callers should not rely on that.
func (v *Vector[T]) PopBack() {
	if v.size > 0 {
		v.size--
	}
}

// Clear sets the size to zero. Capacity and storage are kept.
func (v *Vector[T]) Clear() {
	v.size = 0
}

// Insert inserts value before pos and returns an iterator to it.
// pos must be an iterator of v in [Begin(), End()]. When v is full the
// storage is reallocated and the returned iterator refers to the new
// storage; iterators obtained earlier are invalidated either way.
func (v *Vector[T]) Insert(pos Iterator[T], value T) Iterator[T] {
	off := pos.off
	if v.size < v.capacity {
		s := v.storage.Get()
		copy(s[off+1:v.size+1], s[off:v.size])
		s[off] = value
		v.size++
		return Iterator[T]{base: s, off: off}
	}

	newCapacity := v.grownCapacity()
	tmp := NewOwnedBuffer[T](newCapacity)
	dst, src := tmp.Get(), v.storage.Get()
	copy(dst[:off], src[:off])
	dst[off] = value
	copy(dst[off+1:], src[off:v.size])
	v.storage.Swap(tmp)
	tmp.Free()
	v.size++
	v.capacity = newCapacity
	return Iterator[T]{base: v.storage.Get(), off: off}
}

// InsertAt inserts value at index i, shifting later elements right.
// It returns a *RangeError if i is not in [0, Size()].
func (v *Vector[T]) InsertAt(i int, value T) error {
	if i < 0 || i > v.size {
		return rangeError("InsertAt", i, v.size+1)
	}
	v.Insert(v.Begin().Add(i), value)
	return nil
}

// Erase removes the element at pos and returns an iterator to the element
// that followed it (End() if it was the last). pos must be an iterator of
// v referencing a live element; erasing at End() or on an empty vector
// panics.
func (v *Vector[T]) Erase(pos Iterator[T]) Iterator[T] {
	off := pos.off
	s := v.storage.Get()
	copy(s[off:v.size-1], s[off+1:v.size])
	v.size--
	return Iterator[T]{base: s, off: off}
}

// EraseAt removes element i, shifting later elements left.
// It returns a *RangeError if i is not in [0, Size()).
func (v *Vector[T]) EraseAt(i int) error {
	if i < 0 || i >= v.size {
		return rangeError("EraseAt", i, v.size)
	}
	v.Erase(v.Begin().Add(i))
	return nil
}

// String formats the live elements like a slice.
func (v *Vector[T]) String() string {
	return fmt.Sprint(v.Data())
}

// grownCapacity is the capacity to reallocate to when v is full.
func (v *Vector[T]) grownCapacity() int {
	return max(1, 2*v.capacity)
}

// reallocate moves the live elements into a fresh array of n elements and
// drops the old one. n must be at least Size().
func (v *Vector[T]) reallocate(n int) {
	tmp := NewOwnedBuffer[T](n)
	copy(tmp.Get(), v.Data())
	v.storage.Swap(tmp)
	tmp.Free()
	v.capacity = n
}

func panicIfNegative(n int) {
	if n < 0 {
		panic(fmt.Sprintf("vector: negative length %d", n))
	}
}
