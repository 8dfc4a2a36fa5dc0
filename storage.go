package vector

// Storage owns one block of slots for elements of type T.
//
// Storage never runs element hooks. Which slots hold live elements is known
// only to the owner (normally a Vector), so releasing a Storage drops the
// block without destroying anything in it.
//
// A Storage must not be copied after first use: use Move to transfer the
// block or Swap to exchange it.
type Storage[T any] struct {
	buf []T // len(buf) == capacity; nil when capacity is 0
}

// NewStorage allocates a block of capacity slots. No slot is initialized
// beyond the zero value. If capacity <= 0, nothing is allocated.
func NewStorage[T any](capacity int, opts ...Option) (Storage[T], error) {
	return newStorage[T](capacity, newConfig(opts...))
}

func newStorage[T any](capacity int, c *config) (Storage[T], error) {
	buf, err := allocSlots[T](capacity, c)
	if err != nil {
		return Storage[T]{}, err
	}
	return Storage[T]{buf: buf}, nil
}

// Capacity returns the number of slots in the block.
func (s *Storage[T]) Capacity() int {
	return len(s.buf)
}

// Slot returns the address of slot i. It panics unless 0 <= i < Capacity().
func (s *Storage[T]) Slot(i int) *T {
	assertf(i >= 0 && i < len(s.buf), "vector: slot %d out of range [0, %d)", i, len(s.buf))
	return &s.buf[i]
}

// Slots returns the slots [from, to) of the block. to may equal Capacity(),
// which marks the position one past the last slot. It panics unless
// 0 <= from <= to <= Capacity().
//
// The returned slice is capped at to, so appending to it never writes into
// the rest of the block.
func (s *Storage[T]) Slots(from, to int) []T {
	assertf(from >= 0 && from <= to && to <= len(s.buf),
		"vector: slots [%d, %d) out of range [0, %d]", from, to, len(s.buf))
	return s.buf[from:to:to]
}

// Swap exchanges the blocks of s and other.
func (s *Storage[T]) Swap(other *Storage[T]) {
	s.buf, other.buf = other.buf, s.buf
}

// Move returns a Storage that owns the block of s and leaves s empty.
func (s *Storage[T]) Move() Storage[T] {
	out := Storage[T]{buf: s.buf}
	s.buf = nil
	return out
}

// Release drops the block. Elements still held in it are not destroyed.
// Release is safe to call more than once.
func (s *Storage[T]) Release() {
	s.buf = nil
}
