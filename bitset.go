package apint

import (
	"math/bits"

	"github.com/bits-and-blooms/bitset"
)

// ToBitSet returns a bit set of length Width with the same bits as a. Bit i
// of the set is bit i of the value.
func (a ApInt) ToBitSet() *bitset.BitSet {
	b := bitset.New(a.width.Uint())
	for i, d := range a.digits() {
		for d != 0 {
			tz := uint(bits.TrailingZeros64(uint64(d)))
			b.Set(uint(i)*DigitBits + tz)
			d &= d - 1
		}
	}
	return b
}

// FromBitSet creates an ApInt of width w from the low w bits of b. Bits of b
// at positions w and above are ignored.
func FromBitSet(w BitWidth, b *bitset.BitSet) ApInt {
	out := newApInt(w)
	d := out.digits()
	for i, ok := b.NextSet(0); ok && i < w.Uint(); i, ok = b.NextSet(i + 1) {
		d[i/DigitBits] |= 1 << (i % DigitBits)
	}
	return out
}
