package vector

import "iter"

// All returns an iterator over the index and address of each element, from
// first to last. The vector must not be resized during iteration.
func (v *Vector[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.data.Slot(i)) {
				return
			}
		}
	}
}

// Values returns an iterator over copies of the elements, from first to last.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(*v.data.Slot(i)) {
				return
			}
		}
	}
}

// Backward returns an iterator over the index and address of each element,
// from last to first.
func (v *Vector[T]) Backward() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.data.Slot(i)) {
				return
			}
		}
	}
}

// Items returns the live elements as a slice sharing the vector's storage.
// Appending to it never touches the reserved slots. The slice is invalidated
// by any operation that reallocates or changes Size().
func (v *Vector[T]) Items() []T {
	return v.data.Slots(0, v.size)
}

// End returns the position one past the last element: the insertion
// position that appends.
func (v *Vector[T]) End() int {
	return v.size
}
