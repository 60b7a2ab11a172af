//go:build !race

// SPDX-License-Identifier: Apache-2.0

package buf

import (
	"testing"

	"github.com/loopholelabs/logging/loggers/noop"
	"github.com/loopholelabs/logging/types"
)

func putRunner(unit int, chunk int, total int) func(b *testing.B) {
	return func(b *testing.B) {
		b.SetBytes(int64(total))
		b.ReportAllocs()

		data := make([]byte, chunk)
		buf, err := New(unit, WithLogger(noop.New(types.InfoLevel)))
		if err != nil {
			b.Fatal(err)
		}

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			buf.Clear()
			for written := 0; written < total; written += chunk {
				if _, err = buf.Put(data); err != nil {
					b.Fatal(err)
				}
			}
		}
		b.StopTimer()
	}
}

func BenchmarkPut(b *testing.B) {
	const total = 1 << 20

	b.Run("unit 64 chunk 1", putRunner(64, 1, total))
	b.Run("unit 512 chunk 1", putRunner(512, 1, total))
	b.Run("unit 512 chunk 512", putRunner(512, 512, total))
	b.Run("unit 64KB chunk 4KB", putRunner(1<<16, 1<<12, total))
}

func BenchmarkPutByte(b *testing.B) {
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		buf := Get()
		for j := 0; j < 4096; j++ {
			if err := buf.PutByte(byte(j)); err != nil {
				b.Fatal(err)
			}
		}
		Put(buf)
	}
}

func BenchmarkSlice(b *testing.B) {
	b.ReportAllocs()

	buf, err := New(DefaultUnit)
	if err != nil {
		b.Fatal(err)
	}
	if _, err = buf.Put(make([]byte, 1<<16)); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = buf.Slice(-(1 << 12), -1); err != nil {
			b.Fatal(err)
		}
	}
}
