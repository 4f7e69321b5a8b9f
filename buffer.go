package vector

// noCopy may be embedded into structs which must not be copied after
// first use. `go vet` (copylocks) reports value copies of such structs.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// OwnedBuffer exclusively owns zero or one heap-allocated array of T.
// It does not track a logical size, only the array itself.
// The zero value owns nothing and is ready to use.
//
// OwnedBuffer must not be copied; use MoveFrom or Swap to transfer
// ownership between handles.
type OwnedBuffer[T any] struct {
	_    noCopy
	base []T // owned array (len == cap), nil when empty
}

// NewOwnedBuffer returns a buffer owning a freshly allocated array of n
// zero-valued elements. If n <= 0 the buffer owns nothing.
// Allocation failure is fatal (Go runtime out of memory).
func NewOwnedBuffer[T any](n int) *OwnedBuffer[T] {
	return &OwnedBuffer[T]{base: allocate[T](n)}
}

// Adopt takes ownership of an already allocated array. The full capacity
// of s becomes part of the buffer. The caller must not use s afterwards.
func Adopt[T any](s []T) *OwnedBuffer[T] {
	if cap(s) == 0 {
		return &OwnedBuffer[T]{}
	}
	return &OwnedBuffer[T]{base: s[:cap(s):cap(s)]}
}

// allocate returns a zeroed array of n elements, or nil if n <= 0.
func allocate[T any](n int) []T {
	if n <= 0 {
		return nil
	}
	return make([]T, n)
}

// MoveFrom drops the array currently owned by b and takes ownership of
// src's array. src is left empty. Moving a buffer into itself is a no-op.
func (b *OwnedBuffer[T]) MoveFrom(src *OwnedBuffer[T]) {
	if b == src {
		return
	}
	b.base = src.base
	src.base = nil
}

// Release gives up ownership and returns the array.
// The buffer is empty afterwards; the caller now owns the array.
func (b *OwnedBuffer[T]) Release() []T {
	s := b.base
	b.base = nil
	return s
}

// At returns a pointer to element i. There is no check against any
// logical size; only the allocated length bounds the index.
func (b *OwnedBuffer[T]) At(i int) *T {
	return &b.base[i]
}

// OK reports whether the buffer currently owns an array.
func (b *OwnedBuffer[T]) OK() bool {
	return b.base != nil
}

// Get returns the owned array, or nil.
func (b *OwnedBuffer[T]) Get() []T {
	return b.base
}

// Len returns the number of allocated elements.
func (b *OwnedBuffer[T]) Len() int {
	return len(b.base)
}

// Swap exchanges the owned arrays of b and other.
func (b *OwnedBuffer[T]) Swap(other *OwnedBuffer[T]) {
	b.base, other.base = other.base, b.base
}

// Free drops the owned array. Safe on an empty buffer and safe to call
// more than once.
func (b *OwnedBuffer[T]) Free() {
	b.base = nil
}
