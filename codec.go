// SPDX-License-Identifier: Apache-2.0

package buf

import (
	"fmt"

	"github.com/loopholelabs/polyglot/v2"
)

// Encode writes the unit and the valid bytes of the Buf to p
func (b *Buf) Encode(p *polyglot.Buffer) {
	polyglot.Encoder(p).Uint32(uint32(b.unit)).Bytes(b.data[:b.size])
}

// Decode reads a Buf previously written with Encode. The unit is validated exactly as in New,
// and the content is copied, so data may be reused once Decode returns.
func Decode(data []byte, options ...Option) (*Buf, error) {
	d := polyglot.Decoder(data)
	unit, err := d.Uint32()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", InvalidEncoding, err)
	}
	// checked before the int conversion, which can wrap on 32-bit platforms
	if unit > MaxUnit {
		return nil, unitTooLarge
	}
	if err = validUnit(int(unit)); err != nil {
		return nil, err
	}
	content, err := d.Bytes(nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", InvalidEncoding, err)
	}

	b := newBuf(int(unit), loadOptions(options...))
	if _, err = b.Put(content); err != nil {
		return nil, err
	}
	return b, nil
}
