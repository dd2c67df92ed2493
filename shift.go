package apint

func (z *ApInt) lsh(x ApInt, s uint) {
	if s >= z.width.Uint() {
		clearV(z.digits())
		return
	}
	switch z.storage() {
	case storageInline:
		z.inl[0] = x.inl[0] << s
	default:
		lshWords(z.ext, x.ext, s)
	}
	z.canonicalize()
}

func (z *ApInt) lrsh(x ApInt, s uint) {
	if s >= z.width.Uint() {
		clearV(z.digits())
		return
	}
	switch z.storage() {
	case storageInline:
		z.inl[0] = x.inl[0] >> s
	default:
		rshWords(z.ext, x.ext, s)
	}
}

func (z *ApInt) arsh(x ApInt, s uint) {
	w := z.width.Uint()
	neg := x.signBit()
	if s >= w {
		if neg {
			fillV(z.digits(), DigitMax)
			z.canonicalize()
		} else {
			clearV(z.digits())
		}
		return
	}

	switch z.storage() {
	case storageInline:
		e := DigitBits - w
		v := int64(x.inl[0]<<e) >> e
		z.inl[0] = Digit(v >> s)
		z.canonicalize()
	default:
		rshWords(z.ext, x.ext, s)
		if neg {
			setBitRange(z.ext, w-s, w)
		}
	}
}

func (z *ApInt) rotl(x ApInt, s uint) {
	w := z.width.Uint()
	s %= w
	if s == 0 {
		z.setFrom(x.digits())
		return
	}

	switch z.storage() {
	case storageInline:
		v := x.inl[0]
		z.inl[0] = v<<s | v>>(w-s)
	default:
		hi := make([]Digit, len(z.ext))
		lshWords(hi, x.ext, s)
		hi[len(hi)-1] &= z.width.msbMask()
		rshWords(z.ext, x.ext, w-s)
		for i := range z.ext {
			z.ext[i] |= hi[i]
		}
	}
	z.canonicalize()
}

// Lsh returns a shifted left by n bits. Vacated bits are zero; n >= width
// yields zero.
func (a ApInt) Lsh(n uint) ApInt {
	out := newApInt(a.width)
	out.lsh(a, n)
	return out
}

// LRsh returns a logically shifted right by n bits, filling with zeros.
func (a ApInt) LRsh(n uint) ApInt {
	out := newApInt(a.width)
	out.lrsh(a, n)
	return out
}

// ARsh returns a arithmetically shifted right by n bits, filling with copies
// of the sign bit. n >= width yields zero or all ones depending on the sign.
func (a ApInt) ARsh(n uint) ApInt {
	out := newApInt(a.width)
	out.arsh(a, n)
	return out
}

// RotateLeft returns a rotated left by n modulo width bits.
func (a ApInt) RotateLeft(n uint) ApInt {
	out := newApInt(a.width)
	out.rotl(a, n)
	return out
}

// RotateRight returns a rotated right by n modulo width bits.
func (a ApInt) RotateRight(n uint) ApInt {
	w := a.width.Uint()
	return a.RotateLeft(w - n%w)
}

func (a *ApInt) LshAssign(n uint) { *a = a.Lsh(n) }

func (a *ApInt) LRshAssign(n uint) { *a = a.LRsh(n) }

func (a *ApInt) ARshAssign(n uint) { *a = a.ARsh(n) }

func (a *ApInt) RotateLeftAssign(n uint) { *a = a.RotateLeft(n) }

func (a *ApInt) RotateRightAssign(n uint) { *a = a.RotateRight(n) }
