package vector

import (
	"math"
	"strconv"
	"testing"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type testStruct struct {
	a int64
	b int32
	c int16
	d int8
}

func TestElemSize(t *testing.T) {
	assert.Equal(t, unsafe.Sizeof(int64(0)), elemSize[int64]())
	assert.Equal(t, unsafe.Sizeof(testStruct{}), elemSize[testStruct]())
	assert.Equal(t, uintptr(0), elemSize[struct{}]())
}

func TestAllocSlots(t *testing.T) {
	c := newConfig()

	buf, err := allocSlots[testStruct](10, c)
	require.NoError(t, err)
	assert.Len(t, buf, 10)
	for i, s := range buf {
		assert.Equal(t, testStruct{}, s, "slot %d not zeroed", i)
	}

	// Test zero size
	ints, err := allocSlots[int](0, c)
	require.NoError(t, err)
	assert.Nil(t, ints)

	// Test negative size
	ints, err = allocSlots[int](-1, c)
	require.NoError(t, err)
	assert.Nil(t, ints)

	// Zero-sized elements never count against memory.
	buf2, err := allocSlots[struct{}](1000, newConfig(WithMemoryLimit(1)))
	require.NoError(t, err)
	assert.Len(t, buf2, 1000)
}

func TestAllocSlotsOutOfMemory(t *testing.T) {
	tests := []struct {
		name   string
		need64 bool
		fn     func() error
	}{
		{"over limit", false, func() error {
			_, err := allocSlots[int64](129, newConfig(WithMemoryLimit(1024)))
			return err
		}},
		{"byte size overflows", false, func() error {
			_, err := allocSlots[[64]byte](math.MaxInt/32, newConfig())
			return err
		}},
		{"runtime rejects length", true, func() error {
			// Fits in an int but is far beyond the runtime's maximum allocation.
			_, err := allocSlots[[1024]byte](math.MaxInt/2048, newConfig())
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.need64 && strconv.IntSize != 64 {
				t.Skip("needs a 64-bit address space")
			}
			err := tt.fn()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrOutOfMemory), "got %v", err)
		})
	}
}

func TestAllocSlotsLogsRefusal(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c := newConfig(WithLogger(zap.New(core)), WithMemoryLimit(64))

	_, err := allocSlots[int64](9, c)
	require.Error(t, err)

	entries := logs.FilterMessage("vector: allocation refused").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	fields := entries[0].ContextMap()
	assert.EqualValues(t, 9, fields["slots"])
	assert.EqualValues(t, 72, fields["bytes"])
	assert.EqualValues(t, 64, fields["limit"])
}

func TestMemoryLimitOption(t *testing.T) {
	assert.Equal(t, 0, newConfig().limit)
	assert.Equal(t, 512, newConfig(WithMemoryLimit(512)).limit)
	assert.Equal(t, 0, newConfig(WithMemoryLimit(512), WithMemoryLimit(-5)).limit)
	assert.NotNil(t, newConfig(WithLogger(nil)).logger)
}
