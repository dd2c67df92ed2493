package apint

type bitOp uint8

const (
	opAnd bitOp = iota
	opOr
	opXor
	opAndNot
)

func (z *ApInt) bitwise(op bitOp, x, y ApInt) {
	zd, xd, yd := z.digits(), x.digits(), y.digits()
	switch op {
	case opAnd:
		for i := range zd {
			zd[i] = xd[i] & yd[i]
		}
	case opOr:
		for i := range zd {
			zd[i] = xd[i] | yd[i]
		}
	case opXor:
		for i := range zd {
			zd[i] = xd[i] ^ yd[i]
		}
	case opAndNot:
		for i := range zd {
			zd[i] = xd[i] &^ yd[i]
		}
	default:
		panic("apint: unknown bit op")
	}
}

func (z *ApInt) not(x ApInt) {
	notV(z.digits(), x.digits())
	z.canonicalize()
}

func (a ApInt) binaryBitwise(op bitOp, b ApInt) (out ApInt, err error) {
	if err := a.checkWidth(b); err != nil {
		return out, err
	}
	out = newApInt(a.width)
	out.bitwise(op, a, b)
	return out, nil
}

func (a ApInt) And(b ApInt) (ApInt, error) { return a.binaryBitwise(opAnd, b) }

func (a ApInt) Or(b ApInt) (ApInt, error) { return a.binaryBitwise(opOr, b) }

func (a ApInt) Xor(b ApInt) (ApInt, error) { return a.binaryBitwise(opXor, b) }

// AndNot returns a & ^b.
func (a ApInt) AndNot(b ApInt) (ApInt, error) { return a.binaryBitwise(opAndNot, b) }

func (a ApInt) Not() ApInt {
	out := newApInt(a.width)
	out.not(a)
	return out
}

func (a *ApInt) assignBitwise(op bitOp, b ApInt) error {
	if err := a.checkWidth(b); err != nil {
		return err
	}
	out := newApInt(a.width)
	out.bitwise(op, *a, b)
	*a = out
	return nil
}

func (a *ApInt) AndAssign(b ApInt) error { return a.assignBitwise(opAnd, b) }

func (a *ApInt) OrAssign(b ApInt) error { return a.assignBitwise(opOr, b) }

func (a *ApInt) XorAssign(b ApInt) error { return a.assignBitwise(opXor, b) }

func (a *ApInt) AndNotAssign(b ApInt) error { return a.assignBitwise(opAndNot, b) }

func (a *ApInt) NotAssign() { *a = a.Not() }

// Bit reports whether the bit at pos is set.
func (a ApInt) Bit(pos uint) (bool, error) {
	if !a.width.IsValidPos(pos) {
		return false, &BitPositionError{Pos: pos, Width: a.width}
	}
	return a.digits()[pos/DigitBits]&(1<<(pos%DigitBits)) != 0, nil
}

func (a *ApInt) SetBit(pos uint) error {
	if !a.width.IsValidPos(pos) {
		return &BitPositionError{Pos: pos, Width: a.width}
	}
	a.unshare()
	a.digits()[pos/DigitBits] |= 1 << (pos % DigitBits)
	return nil
}

func (a *ApInt) ClearBit(pos uint) error {
	if !a.width.IsValidPos(pos) {
		return &BitPositionError{Pos: pos, Width: a.width}
	}
	a.unshare()
	a.digits()[pos/DigitBits] &^= 1 << (pos % DigitBits)
	return nil
}

func (a *ApInt) FlipBit(pos uint) error {
	if !a.width.IsValidPos(pos) {
		return &BitPositionError{Pos: pos, Width: a.width}
	}
	a.unshare()
	a.digits()[pos/DigitBits] ^= 1 << (pos % DigitBits)
	return nil
}

func (a *ApInt) SetAll() { *a = AllSet(a.width) }

func (a *ApInt) ClearAll() { *a = Zero(a.width) }

// FlipAll inverts every bit of a. It is the same as NotAssign.
func (a *ApInt) FlipAll() { *a = a.Not() }

// IsAllSet reports whether every bit within the width is set.
func (a ApInt) IsAllSet() bool {
	d := a.digits()
	n := len(d)
	for i := 0; i < n-1; i++ {
		if d[i] != DigitMax {
			return false
		}
	}
	return d[n-1] == a.width.msbMask()
}

// SignBit reports whether the most significant bit is set, which makes the
// value negative when it is interpreted as signed.
func (a ApInt) SignBit() bool { return a.signBit() }

func (a *ApInt) signBit() bool {
	if a.ext == nil {
		return a.inl[0]>>(a.width-1) != 0
	}
	word, mask := a.width.signMask()
	return a.ext[word]&mask != 0
}

func (a *ApInt) SetSignBit() {
	word, mask := a.width.signMask()
	a.unshare()
	a.digits()[word] |= mask
}

func (a *ApInt) ClearSignBit() {
	word, mask := a.width.signMask()
	a.unshare()
	a.digits()[word] &^= mask
}

func (a *ApInt) FlipSignBit() {
	word, mask := a.width.signMask()
	a.unshare()
	a.digits()[word] ^= mask
}

func (a ApInt) CountOnes() uint {
	var n uint
	for _, d := range a.digits() {
		n += onesCount(d)
	}
	return n
}

func (a ApInt) CountZeros() uint {
	return a.width.Uint() - a.CountOnes()
}

// LeadingZeros returns the number of zero bits above the most significant
// set bit, counting from the top of the width. It returns the width for zero.
func (a ApInt) LeadingZeros() uint {
	d := a.digits()
	var zeros uint
	for i := len(d) - 1; i >= 0; i-- {
		lz := leadingZeros(d[i])
		zeros += lz
		if lz != DigitBits {
			break
		}
	}
	// The unused bits above the width are always zero and are not part of
	// the value.
	return zeros - (uint(len(d))*DigitBits - a.width.Uint())
}

// TrailingZeros returns the number of zero bits below the least significant
// set bit. It returns the width for zero.
func (a ApInt) TrailingZeros() uint {
	var zeros uint
	for _, d := range a.digits() {
		tz := trailingZeros(d)
		zeros += tz
		if tz != DigitBits {
			break
		}
	}
	if zeros > a.width.Uint() {
		zeros = a.width.Uint()
	}
	return zeros
}

// BitLen returns the minimum number of bits required to represent a as an
// unsigned value. The result is 0 for zero.
func (a ApInt) BitLen() uint {
	return a.width.Uint() - a.LeadingZeros()
}
