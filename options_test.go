// SPDX-License-Identifier: Apache-2.0

package buf

import (
	"testing"

	"github.com/loopholelabs/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithoutOptions(t *testing.T) {
	t.Parallel()

	options := loadOptions()

	assert.NotNil(t, options.Logger)
	assert.Equal(t, 0, options.MaxCapacity)
	assert.NotNil(t, options.Allocator)
}

func TestWithOptions(t *testing.T) {
	t.Parallel()

	option := WithOptions(Options{
		MaxCapacity: 64,
	})

	options := loadOptions(option)

	assert.NotNil(t, options.Logger)
	assert.Equal(t, 64, options.MaxCapacity)
	assert.NotNil(t, options.Allocator)
}

func TestDisableOptions(t *testing.T) {
	t.Parallel()

	option := WithOptions(Options{
		MaxCapacity: -1,
	})

	options := loadOptions(option)

	assert.Equal(t, 0, options.MaxCapacity)
}

func TestIndividualOptions(t *testing.T) {
	t.Parallel()

	logger := logging.Test(t, logging.Noop, t.Name())
	allocations := 0
	allocator := func(size int) ([]byte, error) {
		allocations++
		return make([]byte, size), nil
	}

	options := loadOptions(WithLogger(logger), WithMaxCapacity(128), WithAllocator(allocator))

	assert.Equal(t, logger, options.Logger)
	assert.Equal(t, 128, options.MaxCapacity)

	b, err := options.Allocator(16)
	require.NoError(t, err)
	assert.Len(t, b, 16)
	assert.Equal(t, 1, allocations)
}

func TestHeapAllocator(t *testing.T) {
	t.Parallel()

	b, err := HeapAllocator(32)
	require.NoError(t, err)
	assert.Len(t, b, 32)

	b, err = HeapAllocator(-1)
	assert.ErrorIs(t, err, OutOfMemory)
	assert.Nil(t, b)
}
