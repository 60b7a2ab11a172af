// SPDX-License-Identifier: Apache-2.0

package buf

import "io"

var (
	_ io.Writer       = (*Buf)(nil)
	_ io.ByteWriter   = (*Buf)(nil)
	_ io.StringWriter = (*Buf)(nil)
	_ io.WriterTo     = (*Buf)(nil)
	_ io.ReaderFrom   = (*Buf)(nil)
)

// Write implements io.Writer and is equivalent to Put
func (b *Buf) Write(p []byte) (int, error) {
	return b.Put(p)
}

// WriteByte implements io.ByteWriter and is equivalent to PutByte
func (b *Buf) WriteByte(c byte) error {
	return b.PutByte(c)
}

// WriteString implements io.StringWriter. Unlike PutString, the whole of s
// is appended, including any zero bytes.
func (b *Buf) WriteString(s string) (int, error) {
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

// WriteTo writes the valid bytes of the Buf to w. The Buf is not consumed.
func (b *Buf) WriteTo(w io.Writer) (int64, error) {
	if b.size == 0 {
		return 0, nil
	}
	n, err := w.Write(b.data[:b.size])
	if err == nil && n != b.size {
		err = io.ErrShortWrite
	}
	return int64(n), err
}

// ReadFrom reads from r until io.EOF, appending everything read to the Buf. Capacity
// grows one unit at a time. If growing fails, the bytes read so far are kept and
// OutOfMemory is returned.
func (b *Buf) ReadFrom(r io.Reader) (n int64, err error) {
	for {
		if b.size+1 >= len(b.data) {
			if err = b.Grow(b.size + b.unit); err != nil {
				return
			}
		}
		m, readErr := r.Read(b.data[b.size : len(b.data)-1])
		if m < 0 {
			return n, NegativeRead
		}
		b.size += m
		n += int64(m)
		b.terminate()
		if readErr == io.EOF {
			return n, nil
		}
		if readErr != nil {
			return n, readErr
		}
	}
}
