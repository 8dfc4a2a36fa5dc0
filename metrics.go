package vector

// ElemSize returns the number of bytes one slot occupies.
func (v *Vector[T]) ElemSize() int {
	return int(elemSize[T]())
}

// Utilization returns the ratio of live elements to capacity (0.0 to 1.0).
// Returns 0.0 if the vector has no capacity.
func (v *Vector[T]) Utilization() float64 {
	capacity := v.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(v.size) / float64(capacity)
}

// Reallocations returns the number of times a larger block has replaced the
// vector's storage.
func (v *Vector[T]) Reallocations() int {
	return v.reallocs
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() Metrics {
	elem := v.ElemSize()
	return Metrics{
		Size:          v.size,
		Capacity:      v.Capacity(),
		ElemSize:      elem,
		BytesInUse:    v.size * elem,
		BytesReserved: v.Capacity() * elem,
		Utilization:   v.Utilization(),
		Reallocations: v.reallocs,
	}
}

// Metrics contains statistical information about a vector.
type Metrics struct {
	Size          int     // Live elements
	Capacity      int     // Slots in the storage block
	ElemSize      int     // Bytes per slot
	BytesInUse    int     // Size * ElemSize
	BytesReserved int     // Capacity * ElemSize
	Utilization   float64 // Ratio of Size to Capacity (0.0-1.0)
	Reallocations int     // Blocks swapped in by growth
}
