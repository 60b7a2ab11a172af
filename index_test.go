// SPDX-License-Identifier: Apache-2.0

package buf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	t.Parallel()

	b := newTestBuf(t, 4)
	require.NoError(t, b.PutByte(0))
	_, err := b.PutString("bc")
	require.NoError(t, err)

	c, ok := b.Get(0)
	assert.True(t, ok)
	assert.Equal(t, byte(0), c)

	c, ok = b.Get(2)
	assert.True(t, ok)
	assert.Equal(t, byte('c'), c)

	_, ok = b.Get(3)
	assert.False(t, ok)

	_, ok = b.Get(-1)
	assert.False(t, ok)

	b.Pop(1)
	_, ok = b.Get(2)
	assert.False(t, ok)
}

func TestSet(t *testing.T) {
	t.Parallel()

	b := newTestBuf(t, 4)
	_, err := b.PutString("abc")
	require.NoError(t, err)

	c, ok := b.Set(1, 'x')
	assert.True(t, ok)
	assert.Equal(t, byte('x'), c)
	assert.Equal(t, "axc", b.String())

	_, ok = b.Set(3, 'y')
	assert.False(t, ok)
	assert.Equal(t, 3, b.Len())
	assert.Equal(t, "axc", b.String())

	_, ok = b.Set(-1, 'y')
	assert.False(t, ok)
	assertInvariants(t, b)
}
