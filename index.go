// SPDX-License-Identifier: Apache-2.0

package buf

// Get returns the byte at index i. The second return value is false if i is out of range,
// which is distinct from a stored zero byte.
func (b *Buf) Get(i int) (byte, bool) {
	if i < 0 || i >= b.size {
		return 0, false
	}
	return b.data[i], true
}

// Set overwrites the byte at index i and returns it.
//
// Set cannot extend the Buf: if i is out of range nothing is written and false is returned.
func (b *Buf) Set(i int, c byte) (byte, bool) {
	if i < 0 || i >= b.size {
		return 0, false
	}
	b.data[i] = c
	return c, true
}
