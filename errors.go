package vector

import "github.com/cockroachdb/errors"

var (
	// ErrOutOfMemory is returned when a storage block cannot be allocated.
	ErrOutOfMemory = errors.New("vector: out of memory")

	// ErrNotCopyable is returned when an element type that customizes its
	// move without also implementing Copier is asked to copy itself.
	ErrNotCopyable = errors.New("vector: element type is not copyable")
)

// assertf panics with an assertion failure if cond is false.
// It guards preconditions whose violation is a caller bug.
func assertf(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(errors.AssertionFailedf(format, args...))
	}
}

// wrapElem annotates an element hook failure with the operation and the
// vector index it happened at.
func wrapElem(err error, op string, i int) error {
	return errors.Wrapf(err, "%s element %d", op, i)
}
