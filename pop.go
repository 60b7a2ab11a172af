// SPDX-License-Identifier: Apache-2.0

package buf

// Pop removes up to n bytes from the end of the Buf and returns how many were removed.
// Capacity is never released.
func (b *Buf) Pop(n int) int {
	if n <= 0 {
		return 0
	}
	if n > b.size {
		n = b.size
	}
	b.size -= n
	b.terminate()
	return n
}

// Clear empties the Buf and returns the number of bytes it held
func (b *Buf) Clear() int {
	return b.Pop(b.size)
}

// SetLen truncates or pads the Buf to exactly n bytes and returns the resulting length.
//
// Padding uses Fill. A negative n is treated as 0. If the padding cannot be allocated,
// OutOfMemory is returned and the Buf is unchanged.
func (b *Buf) SetLen(n int) (int, error) {
	if n < 0 {
		n = 0
	}
	switch {
	case n < b.size:
		b.Pop(b.size - n)
	case n > b.size:
		if err := b.Grow(n); err != nil {
			return b.size, err
		}
		pad := b.data[b.size:n]
		for i := range pad {
			pad[i] = Fill
		}
		b.size = n
		b.terminate()
	}
	return b.size, nil
}
