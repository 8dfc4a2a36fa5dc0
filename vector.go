package vector

import (
	"math"

	"go.uber.org/zap"
)

// Vector is a growable contiguous sequence of T built on a Storage block.
// Slots [0, Size()) hold live elements; the remaining slots of the block are
// reserved and hold zero values.
//
// The zero value is an empty vector ready to use. A Vector is not safe for
// concurrent use, and it must not be copied after first use: use Clone,
// Move or Swap.
type Vector[T any] struct {
	data     Storage[T]
	size     int
	reallocs int
	conf     *config
}

// New returns a vector of count default-constructed elements in a block of
// exactly count slots. If an element fails to initialize, the elements built
// so far are destroyed and the error is returned.
func New[T any](count int, opts ...Option) (*Vector[T], error) {
	assertf(count >= 0, "vector: negative count %d", count)
	c := newConfig(opts...)
	data, err := newStorage[T](count, c)
	if err != nil {
		return nil, err
	}
	if err := traitsOf[T]().valueConstructN(data.Slots(0, count), 0); err != nil {
		data.Release()
		return nil, err
	}
	return &Vector[T]{data: data, size: count, conf: c}, nil
}

// From returns a vector holding copies of values, in a block of exactly
// len(values) slots.
func From[T any](values []T, opts ...Option) (*Vector[T], error) {
	c := newConfig(opts...)
	data, err := newStorage[T](len(values), c)
	if err != nil {
		return nil, err
	}
	if err := traitsOf[T]().copyConstructN(data.Slots(0, len(values)), values, 0); err != nil {
		data.Release()
		return nil, err
	}
	return &Vector[T]{data: data, size: len(values), conf: c}, nil
}

// Clone returns an independent copy of v whose capacity equals v.Size().
// If any element fails to copy, the copies made so far are destroyed and v
// is left untouched.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	return v.clone(v.config())
}

func (v *Vector[T]) clone(c *config) (*Vector[T], error) {
	data, err := newStorage[T](v.size, c)
	if err != nil {
		return nil, err
	}
	if err := traitsOf[T]().copyConstructN(data.Slots(0, v.size), v.Items(), 0); err != nil {
		data.Release()
		return nil, err
	}
	return &Vector[T]{data: data, size: v.size, conf: c}, nil
}

// Move returns a vector that takes over the storage and elements of v.
// v is left empty and reusable.
func (v *Vector[T]) Move() *Vector[T] {
	out := &Vector[T]{
		data:     v.data.Move(),
		size:     v.size,
		reallocs: v.reallocs,
		conf:     v.conf,
	}
	v.size = 0
	v.reallocs = 0
	return out
}

// Assign replaces the contents of v with copies of the elements of rhs.
//
// When rhs does not fit in the current capacity, a full copy is built first
// and swapped in, so a failure leaves v unchanged. Otherwise the elements are
// assigned in place: a failure part way leaves the prefix assigned so far,
// with the rest of v as it was.
func (v *Vector[T]) Assign(rhs *Vector[T]) error {
	if v == rhs {
		return nil
	}
	if rhs.size > v.data.Capacity() {
		tmp, err := rhs.clone(v.config())
		if err != nil {
			return err
		}
		from := v.data.Capacity()
		v.replace(tmp.data.Move(), tmp.size)
		tmp.size = 0
		v.reallocated(from)
		return nil
	}

	tr := traitsOf[T]()
	common := min(v.size, rhs.size)
	for i := 0; i < common; i++ {
		if err := tr.assign(v.data.Slot(i), rhs.data.Slot(i)); err != nil {
			return wrapElem(err, "assigning", i)
		}
	}
	if rhs.size < v.size {
		tr.destroyN(v.data.Slots(rhs.size, v.size))
	} else if err := tr.copyConstructN(v.data.Slots(v.size, rhs.size), rhs.data.Slots(v.size, rhs.size), v.size); err != nil {
		return err
	}
	v.size = rhs.size
	return nil
}

// MoveAssign destroys the elements of v and takes over the storage and
// elements of rhs. rhs is left empty.
func (v *Vector[T]) MoveAssign(rhs *Vector[T]) {
	if v == rhs {
		return
	}
	v.replace(rhs.data.Move(), rhs.size)
	v.reallocs = rhs.reallocs
	rhs.size = 0
	rhs.reallocs = 0
}

// Swap exchanges the contents of v and other.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data.Swap(&other.data)
	v.size, other.size = other.size, v.size
	v.reallocs, other.reallocs = other.reallocs, v.reallocs
	v.conf, other.conf = other.conf, v.conf
}

// Release destroys every element in index order and drops the storage.
// v stays usable as an empty vector.
func (v *Vector[T]) Release() {
	traitsOf[T]().destroyN(v.Items())
	v.data.Release()
	v.size = 0
}

// Reserve makes room for at least n elements. It does nothing if n does not
// exceed the current capacity; otherwise it moves the elements to a block of
// exactly n slots. On failure v is unchanged.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.data.Capacity() {
		return nil
	}
	next, err := newStorage[T](n, v.config())
	if err != nil {
		return err
	}
	tr := traitsOf[T]()
	byMove := tr.relocateByMove()
	if err := tr.relocateN(next.Slots(0, v.size), v.Items(), byMove, 0); err != nil {
		next.Release()
		return err
	}
	v.adopt(&next, byMove, v.size)
	return nil
}

// Resize sets the number of elements to n. Shrinking destroys the trailing
// elements; growing reserves room for n and default-constructs the new ones.
func (v *Vector[T]) Resize(n int) error {
	assertf(n >= 0, "vector: negative size %d", n)
	switch {
	case n == v.size:
		return nil
	case n < v.size:
		traitsOf[T]().destroyN(v.data.Slots(n, v.size))
		v.size = n
		return nil
	}
	if err := v.Reserve(n); err != nil {
		return err
	}
	if err := traitsOf[T]().valueConstructN(v.data.Slots(v.size, n), v.size); err != nil {
		return err
	}
	v.size = n
	return nil
}

// Size returns the number of live elements.
func (v *Vector[T]) Size() int {
	return v.size
}

// Capacity returns the number of slots in the underlying block.
func (v *Vector[T]) Capacity() int {
	return v.data.Capacity()
}

// Empty reports whether v holds no elements.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// At returns a pointer to element i. It panics unless 0 <= i < Size().
// The pointer is invalidated by any operation that reallocates.
func (v *Vector[T]) At(i int) *T {
	assertf(i >= 0 && i < v.size, "vector: index %d out of range [0, %d)", i, v.size)
	return v.data.Slot(i)
}

// Get returns a copy of element i. It panics unless 0 <= i < Size().
func (v *Vector[T]) Get(i int) T {
	return *v.At(i)
}

// Set destroys element i and stores value in its place. The vector takes
// ownership of value. It panics unless 0 <= i < Size().
func (v *Vector[T]) Set(i int, value T) {
	p := v.At(i)
	traitsOf[T]().destroy(p)
	*p = value
}

// replace destroys the elements of v, drops its storage and installs data
// holding size live elements.
func (v *Vector[T]) replace(data Storage[T], size int) {
	traitsOf[T]().destroyN(v.Items())
	v.data.Release()
	v.data = data
	v.size = size
}

// adopt installs next, which already holds the relocated live range and
// size live elements in total, and disposes of the old block.
func (v *Vector[T]) adopt(next *Storage[T], byMove bool, size int) {
	from := v.data.Capacity()
	v.data.Swap(next)
	traitsOf[T]().disposeRelocated(next.Slots(0, v.size), byMove)
	next.Release()
	v.size = size
	v.reallocated(from)
}

// reallocated counts a block swap and logs it.
func (v *Vector[T]) reallocated(from int) {
	v.reallocs++
	v.config().logger.Debug("vector: reallocated",
		zap.Int("from", from),
		zap.Int("to", v.data.Capacity()),
		zap.Int("size", v.size),
		zap.Uintptr("elem_size", elemSize[T]()))
}

func (v *Vector[T]) config() *config {
	if v.conf == nil {
		v.conf = newConfig()
	}
	return v.conf
}

// growth returns the capacity to allocate when a full vector of size
// elements takes one more.
func growth(size int) int {
	switch {
	case size == 0:
		return 1
	case size > math.MaxInt/2:
		return math.MaxInt
	}
	return 2 * size
}
