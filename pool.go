// SPDX-License-Identifier: Apache-2.0

package buf

import (
	"github.com/loopholelabs/common/pkg/pool"
)

const (
	// MaxPooledUnits is the largest capacity, in units, a Buf may hold and still be recycled
	MaxPooledUnits = 1024
)

var (
	defaultPool = newPool(DefaultUnit, loadOptions())
)

// Pool recycles Bufs that share a single unit and set of options
type Pool struct {
	unit    int
	options *Options
	pool    *pool.Pool[Buf, *Buf]
}

// NewPool creates a Pool whose Bufs grow in multiples of unit. It fails with
// InvalidUnit exactly when New would.
func NewPool(unit int, options ...Option) (*Pool, error) {
	if err := validUnit(unit); err != nil {
		return nil, err
	}
	return newPool(unit, loadOptions(options...)), nil
}

func newPool(unit int, options *Options) *Pool {
	p := &Pool{
		unit:    unit,
		options: options,
	}
	p.pool = pool.NewPool[Buf, *Buf](func() *Buf {
		return newBuf(p.unit, p.options)
	})
	return p
}

// Unit returns the unit of every Buf handed out by the Pool
func (p *Pool) Unit() int {
	return p.unit
}

// Get returns an empty Buf, reusing a previously Put one when available
func (p *Pool) Get() *Buf {
	return p.pool.Get()
}

// Put resets b and makes it available to Get.
//
// Only Bufs that came from this Pool's Get are recycled: a Buf with a different unit or
// with its own options is dropped, as is one that grew beyond MaxPooledUnits units.
func (p *Pool) Put(b *Buf) {
	if b == nil || b.unit != p.unit || b.options != p.options {
		return
	}
	if len(b.data) > MaxPooledUnits*p.unit {
		return
	}
	p.pool.Put(b)
}

// Get returns an empty Buf with DefaultUnit from the package-level Pool
func Get() *Buf {
	return defaultPool.Get()
}

// Put returns b to the package-level Pool
func Put(b *Buf) {
	defaultPool.Put(b)
}
