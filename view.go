// SPDX-License-Identifier: Apache-2.0

package buf

import (
	"bytes"
	"fmt"
)

const inspectPrefix = 10

// Bytes returns the valid bytes of the Buf. The returned slice aliases the Buf's storage
// and is only valid until the next mutating call.
func (b *Buf) Bytes() []byte {
	return b.data[:b.size:b.size]
}

// CString returns the valid bytes of the Buf followed by their zero terminator.
// Like Bytes, the result aliases the Buf's storage.
func (b *Buf) CString() []byte {
	if len(b.data) == 0 {
		return []byte{0}
	}
	return b.data[: b.size+1 : b.size+1]
}

// String returns a copy of the valid bytes as a string
func (b *Buf) String() string {
	return string(b.data[:b.size])
}

// Copy returns a new Buf with the same unit and contents. The two share no storage.
func (b *Buf) Copy() (*Buf, error) {
	c := newBuf(b.unit, b.options)
	if _, err := c.Put(b.data[:b.size]); err != nil {
		return nil, err
	}
	return c, nil
}

// Slice returns a new Buf holding a copy of the bytes in [begin, end).
//
// Negative indices count back from the end of the Buf, and out of range indices are
// clamped, so Slice never fails on its arguments. If begin is not before end the
// result is empty.
func (b *Buf) Slice(begin int, end int) (*Buf, error) {
	if begin < 0 {
		begin += b.size
		if begin < 0 {
			begin = 0
		}
	}
	if end < 0 {
		end += b.size
	}
	if end > b.size {
		end = b.size
	}

	s := newBuf(b.unit, b.options)
	if begin >= end {
		return s, nil
	}
	if _, err := s.Put(b.data[begin:end]); err != nil {
		return nil, err
	}
	return s, nil
}

// SliceFrom is Slice with end set to the length of the Buf
func (b *Buf) SliceFrom(begin int) (*Buf, error) {
	return b.Slice(begin, b.size)
}

// Inspect returns a short summary of the Buf of the form <buf [SIZE] 'PREFIX'>, where
// PREFIX is at most the first 10 bytes (stopping at a zero byte) and is followed by ".."
// if the Buf holds more than 10 bytes.
func (b *Buf) Inspect() (string, error) {
	prefix := b.data[:min(inspectPrefix, b.size)]
	if i := bytes.IndexByte(prefix, 0); i >= 0 {
		prefix = prefix[:i]
	}
	var more string
	if b.size > inspectPrefix {
		more = ".."
	}

	scratch := newBuf(b.unit, b.options)
	if _, err := fmt.Fprintf(scratch, "<buf [%d] '%s%s'>", b.size, prefix, more); err != nil {
		return "", err
	}
	return scratch.String(), nil
}
