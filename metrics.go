package vector

import "unsafe"

// ElemSize returns the size in bytes of one element.
func (v *Vector[T]) ElemSize() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// BytesInUse returns the number of bytes taken by live elements.
func (v *Vector[T]) BytesInUse() int {
	return v.size * v.ElemSize()
}

// BytesReserved returns the number of bytes taken by the whole allocation.
func (v *Vector[T]) BytesReserved() int {
	return v.capacity * v.ElemSize()
}

// Spare returns the number of elements that can be appended without
// reallocating.
func (v *Vector[T]) Spare() int {
	return v.capacity - v.size
}

// Utilization returns the ratio of size to capacity (0.0 to 1.0).
// Returns 0.0 if the vector has no capacity.
func (v *Vector[T]) Utilization() float64 {
	if v.capacity == 0 {
		return 0
	}
	return float64(v.size) / float64(v.capacity)
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() Metrics {
	return Metrics{
		Size:          v.size,
		Capacity:      v.capacity,
		Spare:         v.Spare(),
		ElemSize:      v.ElemSize(),
		BytesInUse:    v.BytesInUse(),
		BytesReserved: v.BytesReserved(),
		Utilization:   v.Utilization(),
	}
}

// Metrics contains statistical information about a vector.
type Metrics struct {
	Size          int     // Live elements
	Capacity      int     // Allocated elements
	Spare         int     // Capacity - Size
	ElemSize      int     // Bytes per element
	BytesInUse    int     // Bytes held by live elements
	BytesReserved int     // Bytes held by the allocation
	Utilization   float64 // Ratio of size to capacity (0.0-1.0)
}
