package apint

// uquorem returns the unsigned quotient and remainder of x / y. x and y
// must have the same width.
func uquorem(x, y ApInt) (q, r ApInt, err error) {
	if y.IsZero() {
		return q, r, ErrDivisionByZero
	}
	q, r = newApInt(x.width), newApInt(x.width)

	switch x.storage() {
	case storageInline:
		q.inl[0] = x.inl[0] / y.inl[0]
		r.inl[0] = x.inl[0] % y.inl[0]

	default:
		udivmod(q.ext, r.ext, x.ext, y.ext)
	}
	return q, r, nil
}

// squorem returns the truncated signed quotient and remainder of x / y. The
// quotient is negative when the operand signs differ and the remainder takes
// the sign of the dividend. SignedMin / -1 wraps to SignedMin.
func squorem(x, y ApInt) (q, r ApInt, err error) {
	if y.IsZero() {
		return q, r, ErrDivisionByZero
	}

	if x.storage() == storageInline {
		q, r = newApInt(x.width), newApInt(x.width)
		sx, sy := x.lowInt64(), y.lowInt64()
		// Go defines math.MinInt64 / -1 as math.MinInt64, which is the wrap
		// we want.
		q.inl[0] = Digit(sx / sy)
		r.inl[0] = Digit(sx % sy)
		q.canonicalize()
		r.canonicalize()
		return q, r, nil
	}

	xneg, yneg := x.signBit(), y.signBit()
	q, r, err = uquorem(x.Magnitude(), y.Magnitude())
	if err != nil {
		return q, r, err
	}
	if xneg != yneg {
		q.neg(q)
	}
	if xneg {
		r.neg(r)
	}
	return q, r, nil
}

// UQuo returns a / b with both operands interpreted as unsigned.
func (a ApInt) UQuo(b ApInt) (q ApInt, err error) {
	if err := a.checkWidth(b); err != nil {
		return q, err
	}
	q, _, err = uquorem(a, b)
	return q, err
}

// URem returns a % b with both operands interpreted as unsigned.
func (a ApInt) URem(b ApInt) (r ApInt, err error) {
	if err := a.checkWidth(b); err != nil {
		return r, err
	}
	_, r, err = uquorem(a, b)
	return r, err
}

// UQuoRem returns the quotient and remainder of a / b with both operands
// interpreted as unsigned:
//
//	q = a / b
//	r = a - b*q
func (a ApInt) UQuoRem(b ApInt) (q, r ApInt, err error) {
	if err := a.checkWidth(b); err != nil {
		return q, r, err
	}
	return uquorem(a, b)
}

// SQuo returns a / b with both operands interpreted as signed, truncated
// towards zero (like Go).
func (a ApInt) SQuo(b ApInt) (q ApInt, err error) {
	if err := a.checkWidth(b); err != nil {
		return q, err
	}
	q, _, err = squorem(a, b)
	return q, err
}

// SRem returns a % b with both operands interpreted as signed. The result
// has the sign of a (like Go).
func (a ApInt) SRem(b ApInt) (r ApInt, err error) {
	if err := a.checkWidth(b); err != nil {
		return r, err
	}
	_, r, err = squorem(a, b)
	return r, err
}

// SQuoRem implements T-division and modulus (like Go) with both operands
// interpreted as signed:
//
//	q = a / b      with the result truncated to zero
//	r = a - b*q
//
// Euclidean division is not supported.
func (a ApInt) SQuoRem(b ApInt) (q, r ApInt, err error) {
	if err := a.checkWidth(b); err != nil {
		return q, r, err
	}
	return squorem(a, b)
}

func (a *ApInt) UQuoAssign(b ApInt) error {
	if err := a.checkWidth(b); err != nil {
		return err
	}
	q, _, err := uquorem(*a, b)
	if err != nil {
		return err
	}
	*a = q
	return nil
}

func (a *ApInt) URemAssign(b ApInt) error {
	if err := a.checkWidth(b); err != nil {
		return err
	}
	_, r, err := uquorem(*a, b)
	if err != nil {
		return err
	}
	*a = r
	return nil
}

func (a *ApInt) SQuoAssign(b ApInt) error {
	if err := a.checkWidth(b); err != nil {
		return err
	}
	q, _, err := squorem(*a, b)
	if err != nil {
		return err
	}
	*a = q
	return nil
}

func (a *ApInt) SRemAssign(b ApInt) error {
	if err := a.checkWidth(b); err != nil {
		return err
	}
	_, r, err := squorem(*a, b)
	if err != nil {
		return err
	}
	*a = r
	return nil
}
