package vector

import (
	"slices"
	"testing"
)

func TestBeginEnd(t *testing.T) {
	v := Of(1, 2, 3)
	if d := v.End().Distance(v.Begin()); d != 3 {
		t.Errorf("End - Begin = %d, want 3", d)
	}
	if !v.Begin().Less(v.End()) {
		t.Error("Begin should precede End")
	}

	// End tracks size, not capacity.
	v.Reserve(10)
	if d := v.End().Distance(v.Begin()); d != 3 {
		t.Errorf("End - Begin after Reserve = %d, want 3", d)
	}

	var empty Vector[int]
	if !empty.Begin().Equal(empty.End()) {
		t.Error("Begin and End of empty vector should be equal")
	}
	cleared := Of(1)
	cleared.Clear()
	if !cleared.Begin().Equal(cleared.End()) {
		t.Error("Begin and End of cleared vector should be equal")
	}
}

func TestIteratorWalk(t *testing.T) {
	v := Of(10, 20, 30)

	var got []int
	for it := v.Begin(); !it.Equal(v.End()); it = it.Next() {
		got = append(got, it.Value())
	}
	if !slices.Equal(got, []int{10, 20, 30}) {
		t.Errorf("forward walk = %v", got)
	}

	got = got[:0]
	for it := v.End(); !it.Equal(v.Begin()); {
		it = it.Prev()
		got = append(got, it.Value())
	}
	if !slices.Equal(got, []int{30, 20, 10}) {
		t.Errorf("backward walk = %v", got)
	}
}

func TestIteratorMutation(t *testing.T) {
	v := Of(1, 2, 3)
	it := v.Begin().Add(2)
	it.Set(30)
	*it.Prev().Ptr() = 20
	assertContents(t, v, 1, 20, 30)

	if it.Offset() != 2 {
		t.Errorf("Offset() = %d, want 2", it.Offset())
	}
	if it.Add(-2).Value() != 1 {
		t.Error("Add(-2) should reach the first element")
	}
}

func TestIteratorInvalidatedByReallocation(t *testing.T) {
	v := Of(1, 2)
	begin := v.Begin()
	v.PushBack(3) // capacity 2 -> 4

	if begin.Equal(v.Begin()) {
		t.Error("iterator from old storage should not equal the new Begin")
	}
	// The old iterator still reads the old array.
	begin.Set(100)
	if v.Index(0) != 1 {
		t.Error("writing through a stale iterator changed the vector")
	}
}

func TestIteratorsFromDifferentVectors(t *testing.T) {
	a := Of(1, 2)
	b := Of(1, 2)
	if a.Begin().Equal(b.Begin()) {
		t.Error("iterators into different storage should not be equal")
	}
}

func TestAll(t *testing.T) {
	v := Of("a", "b", "c")
	var idx []int
	var vals []string
	for i, x := range v.All() {
		idx = append(idx, i)
		vals = append(vals, x)
	}
	if !slices.Equal(idx, []int{0, 1, 2}) || !slices.Equal(vals, []string{"a", "b", "c"}) {
		t.Errorf("All() = %v %v", idx, vals)
	}

	// Early break.
	n := 0
	for range v.All() {
		n++
		break
	}
	if n != 1 {
		t.Errorf("break after first element visited %d", n)
	}
}

func TestValues(t *testing.T) {
	v := Of(1, 2, 3, 4)
	v.PopBack()
	if got := slices.Collect(v.Values()); !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("Values() = %v, want [1 2 3]", got)
	}
	if got := slices.Collect(New[int]().Values()); len(got) != 0 {
		t.Errorf("Values() of empty = %v", got)
	}
}

func TestBackward(t *testing.T) {
	v := Of(1, 2, 3)
	var got []int
	for i, x := range v.Backward() {
		if v.Index(i) != x {
			t.Errorf("Backward index %d yielded %d", i, x)
		}
		got = append(got, x)
	}
	if !slices.Equal(got, []int{3, 2, 1}) {
		t.Errorf("Backward() = %v", got)
	}
}
