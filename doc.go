// SPDX-License-Identifier: Apache-2.0

// Package buf provides Buf, a growable byte buffer backed by a single contiguous allocation.
//
// A Buf is created with a unit, and its capacity only ever grows in whole multiples of that
// unit. Capacity always leaves room for a zero terminator after the last valid byte, so
// CString never needs to allocate once the Buf holds data. Appending n single bytes causes
// roughly n/unit allocations instead of n.
//
// The only runtime failure is OutOfMemory, returned whenever growing the Buf cannot be
// satisfied. In that case the Buf is left exactly as it was before the call. Out of range
// indices are never errors: Get and Set report absence, and Slice clamps its bounds.
//
// Bufs are not safe for concurrent mutation. Read-only methods (Get, Bytes, CString,
// String, Inspect) may run concurrently with each other, but not with any mutating method.
//
// A Basic Example
//
//	b, err := buf.New(4)
//	if err != nil {
//		panic(err)
//	}
//
//	_, _ = b.PutString("hello world")
//	summary, _ := b.Inspect() // <buf [11] 'hello worl..'>
//
//	tail, _ := b.Slice(-5, b.Len()) // "world"
//	b.Pop(6)                        // "hello"
//
// Bufs can also be recycled with a Pool, written to and read from any io.Writer or
// io.Reader, and encoded with polyglot.
package buf
