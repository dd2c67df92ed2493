package apint

import (
	"fmt"
	"math/big"
)

var big1 = big.NewInt(1)

// fromPrimitive builds an ApInt of width w from the low srcBits bits of v.
// When w is wider than srcBits, the value is sign-extended if s is Signed and
// zero-extended otherwise.
func fromPrimitive(w BitWidth, v uint64, srcBits uint, s Signedness) ApInt {
	out := newApInt(w)
	if srcBits < 64 {
		v &= 1<<srcBits - 1
	}
	out.digits()[0] = Digit(v)
	if s == Signed && w.Uint() > srcBits && v&(1<<(srcBits-1)) != 0 {
		setBitRange(out.digits(), srcBits, w.Uint())
	}
	out.canonicalize()
	return out
}

func FromUint64(w BitWidth, v uint64, s Signedness) ApInt { return fromPrimitive(w, v, 64, s) }
func FromUint32(w BitWidth, v uint32, s Signedness) ApInt {
	return fromPrimitive(w, uint64(v), 32, s)
}
func FromUint16(w BitWidth, v uint16, s Signedness) ApInt {
	return fromPrimitive(w, uint64(v), 16, s)
}
func FromUint8(w BitWidth, v uint8, s Signedness) ApInt { return fromPrimitive(w, uint64(v), 8, s) }

func FromInt64(w BitWidth, v int64, s Signedness) ApInt { return fromPrimitive(w, uint64(v), 64, s) }
func FromInt32(w BitWidth, v int32, s Signedness) ApInt {
	return fromPrimitive(w, uint64(v), 32, s)
}
func FromInt16(w BitWidth, v int16, s Signedness) ApInt {
	return fromPrimitive(w, uint64(v), 16, s)
}
func FromInt8(w BitWidth, v int8, s Signedness) ApInt { return fromPrimitive(w, uint64(v), 8, s) }

// Uint8 and friends create an ApInt whose width matches the primitive.
func Uint8(v uint8) ApInt   { return FromUint8(W8, v, Unsigned) }
func Uint16(v uint16) ApInt { return FromUint16(W16, v, Unsigned) }
func Uint32(v uint32) ApInt { return FromUint32(W32, v, Unsigned) }
func Uint64(v uint64) ApInt { return FromUint64(W64, v, Unsigned) }
func Int8(v int8) ApInt     { return FromInt8(W8, v, Signed) }
func Int16(v int16) ApInt   { return FromInt16(W16, v, Signed) }
func Int32(v int32) ApInt   { return FromInt32(W32, v, Signed) }
func Int64(v int64) ApInt   { return FromInt64(W64, v, Signed) }

// FromRaw128 creates a 128 bit ApInt from its high and low words. See Raw128
// for the counterpart.
func FromRaw128(hi, lo uint64) ApInt {
	out := newApInt(W128)
	out.ext[0], out.ext[1] = Digit(lo), Digit(hi)
	return out
}

// Raw128 returns the value as a pair of uint64s if a is exactly 128 bits
// wide.
func (a ApInt) Raw128() (hi, lo uint64, err error) {
	if a.width != W128 {
		return 0, 0, &WidthMismatchError{Expected: W128, Found: a.width}
	}
	return uint64(a.ext[1]), uint64(a.ext[0]), nil
}

// lowInt64 returns the low min(width, 64) bits sign-extended from the top
// bit of that range.
func (a *ApInt) lowInt64() int64 {
	bits := a.width.Uint()
	if bits > 64 {
		bits = 64
	}
	e := 64 - bits
	return int64(a.lsd()<<e) >> e
}

func (a ApInt) fitsUnsigned(bits uint) bool {
	if a.width.Uint() <= bits {
		return true
	}
	return bitRangeIs(a.digits(), bits, a.width.Uint(), false)
}

// fitsSigned reports whether the signed value can be represented in the given
// number of bits: every bit from bits-1 up to the top must match the sign.
func (a ApInt) fitsSigned(bits uint) bool {
	if a.width.Uint() <= bits {
		return true
	}
	return bitRangeIs(a.digits(), bits-1, a.width.Uint(), a.signBit())
}

func (a ApInt) tryUint(bits uint, target string) (uint64, error) {
	if !a.fitsUnsigned(bits) {
		return 0, fmt.Errorf("%w: %s does not fit in %s", ErrValueOutOfRange, a, target)
	}
	return uint64(a.lsd()), nil
}

func (a ApInt) tryInt(bits uint, target string) (int64, error) {
	if !a.fitsSigned(bits) {
		s, _ := a.Text(10, Signed)
		return 0, fmt.Errorf("%w: %s does not fit in %s", ErrValueOutOfRange, s, target)
	}
	return a.lowInt64(), nil
}

// TryUint64 returns a interpreted as unsigned if it fits in a uint64.
func (a ApInt) TryUint64() (uint64, error) { return a.tryUint(64, "uint64") }

func (a ApInt) TryUint32() (uint32, error) {
	v, err := a.tryUint(32, "uint32")
	return uint32(v), err
}

func (a ApInt) TryUint16() (uint16, error) {
	v, err := a.tryUint(16, "uint16")
	return uint16(v), err
}

func (a ApInt) TryUint8() (uint8, error) {
	v, err := a.tryUint(8, "uint8")
	return uint8(v), err
}

// TryInt64 returns a interpreted as signed if it fits in an int64.
func (a ApInt) TryInt64() (int64, error) { return a.tryInt(64, "int64") }

func (a ApInt) TryInt32() (int32, error) {
	v, err := a.tryInt(32, "int32")
	return int32(v), err
}

func (a ApInt) TryInt16() (int16, error) {
	v, err := a.tryInt(16, "int16")
	return int16(v), err
}

func (a ApInt) TryInt8() (int8, error) {
	v, err := a.tryInt(8, "int8")
	return int8(v), err
}

// IntoBigInt sets b to a interpreted as unsigned.
func (a ApInt) IntoBigInt(b *big.Int) {
	d := a.digits()
	buf := make([]byte, len(d)*8)
	for i, w := range d {
		off := len(buf) - (i+1)*8
		for j := 0; j < 8; j++ {
			buf[off+7-j] = byte(w >> (8 * uint(j)))
		}
	}
	b.SetBytes(buf)
}

// UBigInt returns a interpreted as unsigned.
func (a ApInt) UBigInt() *big.Int {
	var v big.Int
	a.IntoBigInt(&v)
	return &v
}

// SBigInt returns a interpreted as signed.
func (a ApInt) SBigInt() *big.Int {
	v := a.UBigInt()
	if a.signBit() {
		wrap := new(big.Int).Lsh(big1, a.width.Uint())
		v.Sub(v, wrap)
	}
	return v
}

// FromBigInt creates an ApInt of width w from v reduced modulo 2^w, which is
// the two's complement bit pattern of v truncated to w bits.
func FromBigInt(w BitWidth, v *big.Int) ApInt {
	out := newApInt(w)
	d := out.digits()
	buf := new(big.Int).Abs(v).Bytes()
	for i := 0; i < len(buf); i++ {
		word := i / 8
		if word >= len(d) {
			break
		}
		d[word] |= Digit(buf[len(buf)-1-i]) << (8 * uint(i%8))
	}
	if v.Sign() < 0 {
		negV(d, d)
	}
	out.canonicalize()
	return out
}
