// SPDX-License-Identifier: Apache-2.0

package buf

import "strings"

// Put appends p to the end of the Buf and returns the number of bytes appended.
//
// On OutOfMemory nothing is appended.
func (b *Buf) Put(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if err := b.Grow(b.size + len(p)); err != nil {
		return 0, err
	}
	b.size += copy(b.data[b.size:], p)
	b.terminate()
	return len(p), nil
}

// PutString appends s up to, but not including, its first zero byte.
func (b *Buf) PutString(s string) (int, error) {
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	if len(s) == 0 {
		return 0, nil
	}
	if err := b.Grow(b.size + len(s)); err != nil {
		return 0, err
	}
	b.size += copy(b.data[b.size:], s)
	b.terminate()
	return len(s), nil
}

// PutByte appends a single byte
func (b *Buf) PutByte(c byte) error {
	if err := b.Grow(b.size + 1); err != nil {
		return err
	}
	b.data[b.size] = c
	b.size++
	b.terminate()
	return nil
}
