package apint

// resized returns a copy of a with width w: the low bits are kept and any
// new high bits are zero.
func (a ApInt) resized(w BitWidth) ApInt {
	out := newApInt(w)
	src := a.digits()
	dst := out.digits()
	if len(src) > len(dst) {
		src = src[:len(dst)]
	}
	copy(dst, src)
	out.canonicalize()
	return out
}

func (a ApInt) signFill(out *ApInt) {
	if a.signBit() {
		setBitRange(out.digits(), a.width.Uint(), out.width.Uint())
	}
}

// Truncate keeps the low w bits of a. w must not be larger than a's width.
func (a ApInt) Truncate(w BitWidth) (ApInt, error) {
	if w == 0 || w > a.width {
		return ApInt{}, &WidthArgumentError{Op: "truncate", From: a.width, To: w}
	}
	return a.resized(w), nil
}

// ZeroExtend pads a with zero bits up to width w. w must not be smaller than
// a's width.
func (a ApInt) ZeroExtend(w BitWidth) (ApInt, error) {
	if w == 0 || w < a.width {
		return ApInt{}, &WidthArgumentError{Op: "zero-extend", From: a.width, To: w}
	}
	return a.resized(w), nil
}

// SignExtend pads a with copies of its sign bit up to width w. w must not be
// smaller than a's width.
func (a ApInt) SignExtend(w BitWidth) (ApInt, error) {
	if w == 0 || w < a.width {
		return ApInt{}, &WidthArgumentError{Op: "sign-extend", From: a.width, To: w}
	}
	out := a.resized(w)
	a.signFill(&out)
	return out, nil
}

// ZeroResize truncates or zero-extends a to width w, whichever applies.
func (a ApInt) ZeroResize(w BitWidth) ApInt {
	w.mustValid()
	return a.resized(w)
}

// SignResize truncates or sign-extends a to width w, whichever applies.
func (a ApInt) SignResize(w BitWidth) ApInt {
	w.mustValid()
	out := a.resized(w)
	if w > a.width {
		a.signFill(&out)
	}
	return out
}
