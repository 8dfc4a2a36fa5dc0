package vector

import (
	"math"
	"runtime"
	"unsafe"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// elemSize returns the number of bytes one slot of T occupies.
func elemSize[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// allocSlots returns a block of n zeroed slots of T.
// Returns nil if n <= 0.
//
// Requests above the configured limit fail with ErrOutOfMemory, as do sizes
// the runtime rejects as out of range. A genuine exhaustion of
// the process heap is fatal in Go and cannot be reported here.
func allocSlots[T any](n int, c *config) (buf []T, err error) {
	if n <= 0 {
		return nil, nil
	}

	size := elemSize[T]()
	if size != 0 && uintptr(n) > uintptr(math.MaxInt)/size {
		return nil, c.refuse(n, -1, errors.Wrapf(ErrOutOfMemory,
			"%d slots of %d bytes overflow the address space", n, size))
	}
	bytes := int(uintptr(n) * size)
	if c.limit > 0 && bytes > c.limit {
		return nil, c.refuse(n, bytes, errors.Wrapf(ErrOutOfMemory,
			"%d bytes requested, limit is %d", bytes, c.limit))
	}

	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			buf = nil
			err = c.refuse(n, bytes, errors.Wrapf(ErrOutOfMemory, "%s", re.Error()))
		}
	}()
	return make([]T, n), nil
}

// refuse logs a failed allocation and returns err.
func (c *config) refuse(slots, bytes int, err error) error {
	c.logger.Warn("vector: allocation refused",
		zap.Int("slots", slots),
		zap.Int("bytes", bytes),
		zap.Int("limit", c.limit),
		zap.Error(err))
	return err
}
