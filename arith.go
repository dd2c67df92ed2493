package apint

// Arithmetic wraps modulo 2^width, like fixed size hardware integers. The
// value layer returns new ApInts; the ...Assign layer replaces the receiver
// with one. Both share the kernels below, which write into z. Only add, sub,
// neg and the word variants accept z itself as an operand.

func (z *ApInt) add(x, y ApInt) {
	switch z.storage() {
	case storageInline:
		z.inl[0] = x.inl[0] + y.inl[0]
	default:
		addVV(z.ext, x.ext, y.ext)
	}
	z.canonicalize()
}

func (z *ApInt) sub(x, y ApInt) {
	switch z.storage() {
	case storageInline:
		z.inl[0] = x.inl[0] - y.inl[0]
	default:
		subVV(z.ext, x.ext, y.ext)
	}
	z.canonicalize()
}

func (z *ApInt) mul(x, y ApInt) {
	switch z.storage() {
	case storageInline:
		z.inl[0] = x.inl[0] * y.inl[0]
	default:
		mulTrunc(z.ext, x.ext, y.ext)
	}
	z.canonicalize()
}

func (z *ApInt) neg(x ApInt) {
	switch z.storage() {
	case storageInline:
		z.inl[0] = -x.inl[0]
	default:
		negV(z.ext, x.ext)
	}
	z.canonicalize()
}

func (z *ApInt) addWord(x ApInt, d Digit) {
	switch z.storage() {
	case storageInline:
		z.inl[0] = x.inl[0] + d
	default:
		addVW(z.ext, x.ext, d)
	}
	z.canonicalize()
}

func (z *ApInt) subWord(x ApInt, d Digit) {
	switch z.storage() {
	case storageInline:
		z.inl[0] = x.inl[0] - d
	default:
		subVW(z.ext, x.ext, d)
	}
	z.canonicalize()
}

func (a ApInt) Add(b ApInt) (out ApInt, err error) {
	if err := a.checkWidth(b); err != nil {
		return out, err
	}
	out = newApInt(a.width)
	out.add(a, b)
	return out, nil
}

func (a ApInt) Sub(b ApInt) (out ApInt, err error) {
	if err := a.checkWidth(b); err != nil {
		return out, err
	}
	out = newApInt(a.width)
	out.sub(a, b)
	return out, nil
}

// Mul returns the product of a and b truncated to their width. The low bits
// of a two's complement product do not depend on signedness, so there is no
// signed variant.
func (a ApInt) Mul(b ApInt) (out ApInt, err error) {
	if err := a.checkWidth(b); err != nil {
		return out, err
	}
	out = newApInt(a.width)
	out.mul(a, b)
	return out, nil
}

// AddWithCarry returns a + b and whether the unsigned addition overflowed
// the width.
func (a ApInt) AddWithCarry(b ApInt) (out ApInt, carry bool, err error) {
	if err := a.checkWidth(b); err != nil {
		return out, false, err
	}
	out = newApInt(a.width)
	switch out.storage() {
	case storageInline:
		var c Digit
		out.inl[0], c = AddCarry(a.inl[0], b.inl[0], 0)
		if ex := a.width.ExcessBits(); ex != 0 {
			carry = out.inl[0]>>ex != 0
		} else {
			carry = c != 0
		}
	default:
		c := addVV(out.ext, a.ext, b.ext)
		if ex := a.width.ExcessBits(); ex != 0 {
			carry = out.ext[len(out.ext)-1]>>ex != 0
		} else {
			carry = c != 0
		}
	}
	out.canonicalize()
	return out, carry, nil
}

// SubWithBorrow returns a - b and whether the unsigned subtraction borrowed,
// that is, whether a < b.
func (a ApInt) SubWithBorrow(b ApInt) (out ApInt, borrow bool, err error) {
	if err := a.checkWidth(b); err != nil {
		return out, false, err
	}
	borrow = cmpVV(a.digits(), b.digits()) < 0
	out = newApInt(a.width)
	out.sub(a, b)
	return out, borrow, nil
}

// SAddOverflow returns a + b and whether the addition overflowed when a and
// b are interpreted as signed.
func (a ApInt) SAddOverflow(b ApInt) (out ApInt, overflow bool, err error) {
	if err := a.checkWidth(b); err != nil {
		return out, false, err
	}
	out = newApInt(a.width)
	out.add(a, b)
	as, bs, os := a.signBit(), b.signBit(), out.signBit()
	return out, as == bs && os != as, nil
}

// SSubOverflow returns a - b and whether the subtraction overflowed when a
// and b are interpreted as signed.
func (a ApInt) SSubOverflow(b ApInt) (out ApInt, overflow bool, err error) {
	if err := a.checkWidth(b); err != nil {
		return out, false, err
	}
	out = newApInt(a.width)
	out.sub(a, b)
	as, bs, os := a.signBit(), b.signBit(), out.signBit()
	return out, as != bs && os != as, nil
}

// Neg returns the two's complement negation of a (^a + 1). The most negative
// signed value has no positive counterpart and is returned unchanged.
func (a ApInt) Neg() ApInt {
	out := newApInt(a.width)
	out.neg(a)
	return out
}

func (a ApInt) Inc() ApInt {
	out := newApInt(a.width)
	out.addWord(a, 1)
	return out
}

func (a ApInt) Dec() ApInt {
	out := newApInt(a.width)
	out.subWord(a, 1)
	return out
}

// Magnitude returns the absolute value of a interpreted as signed, as an
// unsigned bit pattern of the same width. For SignedMin the result has the
// same bits as the input, which is the exact magnitude read as unsigned.
func (a ApInt) Magnitude() ApInt {
	if a.signBit() {
		return a.Neg()
	}
	return a.Clone()
}

// The ...Assign methods compute into fresh storage and then replace the
// receiver, so ApInts copied from a never observe the change.

func (a *ApInt) AddAssign(b ApInt) error {
	out, err := a.Add(b)
	if err != nil {
		return err
	}
	*a = out
	return nil
}

func (a *ApInt) SubAssign(b ApInt) error {
	out, err := a.Sub(b)
	if err != nil {
		return err
	}
	*a = out
	return nil
}

func (a *ApInt) MulAssign(b ApInt) error {
	out, err := a.Mul(b)
	if err != nil {
		return err
	}
	*a = out
	return nil
}

func (a *ApInt) NegAssign() { *a = a.Neg() }

func (a *ApInt) IncAssign() { *a = a.Inc() }

func (a *ApInt) DecAssign() { *a = a.Dec() }
