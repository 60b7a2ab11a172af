// SPDX-License-Identifier: Apache-2.0

package buf

import (
	"errors"
	"fmt"

	"github.com/loopholelabs/logging/types"

	"github.com/loopholelabs/buf-go/internal/capacity"
)

const (
	// MaxUnit is the largest growth unit a Buf accepts
	MaxUnit = 1024 * 1024

	// DefaultUnit is the growth unit used by the package-level pool
	DefaultUnit = 512

	// Fill is the byte SetLen pads with when extending a Buf
	Fill = byte(0x20)
)

// These are the errors that can be returned by a Buf:
var (
	OutOfMemory = errors.New("no memory")
	InvalidUnit = errors.New("invalid buf unit")

	NegativeRead    = errors.New("reader returned negative count from Read")
	InvalidEncoding = errors.New("invalid buf encoding")
)

var (
	zeroUnit     = fmt.Errorf("%w: unit should not be 0", InvalidUnit)
	unitTooLarge = fmt.Errorf("%w: unit is too large", InvalidUnit)
)

// Buf is a growable byte buffer backed by a single contiguous allocation.
//
// Capacity always grows in whole multiples of the unit chosen at construction, and
// always leaves room for a zero terminator after the last valid byte.
//
// A Buf is not safe for concurrent mutation. Callers must serialize Put, Pop,
// Clear, SetLen, Set and Grow themselves.
type Buf struct {
	data    []byte
	size    int
	unit    int
	options *Options
}

// New creates an empty Buf that grows in multiples of unit.
// No memory is allocated until the first byte is written.
func New(unit int, options ...Option) (*Buf, error) {
	if err := validUnit(unit); err != nil {
		return nil, err
	}
	return newBuf(unit, loadOptions(options...)), nil
}

func newBuf(unit int, options *Options) *Buf {
	return &Buf{
		unit:    unit,
		options: options,
	}
}

func validUnit(unit int) error {
	switch {
	case unit <= 0:
		return zeroUnit
	case unit > MaxUnit:
		return unitTooLarge
	}
	return nil
}

// Len returns the number of valid bytes in the Buf
func (b *Buf) Len() int {
	return b.size
}

// Cap returns the number of bytes currently allocated
func (b *Buf) Cap() int {
	return len(b.data)
}

// Unit returns the growth unit of the Buf
func (b *Buf) Unit() int {
	return b.unit
}

// Logger returns the logger the Buf reports to
func (b *Buf) Logger() types.Logger {
	return b.options.Logger
}

// Grow guarantees that at least size bytes plus a terminator fit in the Buf without
// another allocation. Existing bytes keep their positions.
//
// If the allocation cannot be satisfied, OutOfMemory is returned and the Buf is left untouched.
func (b *Buf) Grow(size int) error {
	if size < b.size {
		size = b.size
	}
	required, ok := capacity.Terminated(size, b.unit)
	if !ok {
		return b.outOfMemory(size)
	}
	if required <= len(b.data) {
		return nil
	}
	if b.options.MaxCapacity > 0 && required > b.options.MaxCapacity {
		return b.outOfMemory(required)
	}

	data, err := b.options.Allocator(required)
	if err == nil && len(data) < required {
		err = OutOfMemory
	}
	if err != nil {
		return b.outOfMemory(required)
	}
	copy(data, b.data)

	b.options.Logger.Debug().Int("from", len(b.data)).Int("to", required).Msg("buf reallocated")
	b.data = data[:required]
	return nil
}

func (b *Buf) outOfMemory(requested int) error {
	b.options.Logger.Error().Int("requested", requested).Int("capacity", len(b.data)).Msg("buf allocation failed")
	return OutOfMemory
}

// terminate writes the zero terminator at the current size
func (b *Buf) terminate() {
	if b.size < len(b.data) {
		b.data[b.size] = 0
	}
}

// Reset empties the Buf without releasing its allocation
func (b *Buf) Reset() {
	b.size = 0
	b.terminate()
}
