// Package vector implements a growable contiguous array (Vector) on top of
// an exclusive-ownership handle for a heap array (OwnedBuffer).
//
// # Overview
//
// A Vector keeps its elements in a single array owned by an OwnedBuffer and
// tracks two counts: the size (live elements) and the capacity (allocated
// elements). Appending to a full vector doubles the capacity, starting at 1,
// so a run of N appends costs amortized O(1) each.
//
// # Basic Usage
//
//	v := vector.Of(10, 20, 30)
//
//	v.PushBack(40)                  // {10, 20, 30, 40}
//	v.Insert(v.Begin().Add(1), 99)  // {10, 99, 20, 30, 40}
//	v.Erase(v.Begin().Add(1))       // {10, 20, 30, 40}
//
//	x, err := v.At(7) // errors.Is(err, vector.ErrOutOfRange)
//
//	for i, x := range v.All() {
//		fmt.Println(i, x)
//	}
//
// # Construction
//
//	vector.New[int]()                           // empty
//	vector.NewWithSize[int](5)                  // five zero values
//	vector.NewFilled(5, "x")                    // five copies of "x"
//	vector.Of(1, 2, 3)                          // from a sequence
//	vector.NewReserved[int](vector.Reserve(64)) // size 0, capacity 64
//
// Clone makes a tight deep copy (capacity equals size). MoveFrom transfers
// the storage of another vector without copying elements and leaves the
// source empty.
//
// # Ownership
//
// OwnedBuffer and Vector must not be copied by value; `go vet` reports such
// copies. Ownership moves only through MoveFrom, Swap or Release.
//
// # Preconditions
//
// Index, Ref, Set, Front, Back, Insert and Erase do not check their
// arguments against the size. Violations read dead slots or panic in the
// Go runtime. At, AtRef, InsertAt and EraseAt are the checked variants and
// return a *RangeError wrapping ErrOutOfRange.
//
// # Thread Safety
//
// Vector is a single-owner value type with no internal synchronization.
//
// # Performance Characteristics
//
//   - PushBack: O(1) amortized (capacity doubles, starting at 1)
//   - Insert / Erase: O(n) element shifts, plus O(n) copy when Insert reallocates
//   - Reserve / growing Resize: O(n) copy into a fresh array
//   - Swap / MoveFrom: O(1), no element copies
//   - Clone / Assign: O(n), tight allocation
//   - Index / At / Size / Capacity / Clear / PopBack: O(1)
//
// # Important Notes
//
//   - Iterators refer to the storage array they were taken from and are
//     invalidated by any reallocation or shifting operation
//   - Clear, PopBack and a shrinking Resize leave old values in the spare
//     slots; Resize re-zeroes any slot it exposes
//   - Capacity never shrinks
package vector
