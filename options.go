// SPDX-License-Identifier: Apache-2.0

package buf

import (
	"github.com/loopholelabs/logging/loggers/noop"
	"github.com/loopholelabs/logging/types"
)

// Allocator returns a zeroed byte slice of exactly size bytes, or OutOfMemory
// if the allocation cannot be satisfied.
type Allocator func(size int) ([]byte, error)

type Option func(opts *Options)

type Options struct {
	// Logger receives reallocation and allocation failure events. Defaults to a noop logger.
	Logger types.Logger

	// MaxCapacity is the largest allocation a Buf may request. Zero means unlimited.
	MaxCapacity int

	// Allocator is used for every capacity growth. Defaults to the Go heap.
	Allocator Allocator
}

func loadOptions(options ...Option) *Options {
	opts := new(Options)
	for _, option := range options {
		option(opts)
	}

	if opts.Logger == nil {
		opts.Logger = noop.New(types.InfoLevel)
	}

	if opts.MaxCapacity < 0 {
		opts.MaxCapacity = 0
	}

	if opts.Allocator == nil {
		opts.Allocator = HeapAllocator
	}

	return opts
}

func WithOptions(options Options) Option {
	return func(opts *Options) {
		*opts = options
	}
}

func WithLogger(logger types.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

func WithMaxCapacity(maxCapacity int) Option {
	return func(opts *Options) {
		opts.MaxCapacity = maxCapacity
	}
}

func WithAllocator(allocator Allocator) Option {
	return func(opts *Options) {
		opts.Allocator = allocator
	}
}

// HeapAllocator allocates from the Go heap. A request the runtime
// rejects (for example a length it cannot represent) is reported as OutOfMemory.
func HeapAllocator(size int) (b []byte, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			b, err = nil, OutOfMemory
		}
	}()
	return make([]byte, size), nil
}
