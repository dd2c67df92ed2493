package apint

func (a *ApInt) ucmp(b *ApInt) int {
	if a.ext == nil {
		if a.inl[0] < b.inl[0] {
			return -1
		} else if a.inl[0] > b.inl[0] {
			return 1
		}
		return 0
	}
	return cmpVV(a.ext, b.ext)
}

func (a *ApInt) scmp(b *ApInt) int {
	as, bs := a.signBit(), b.signBit()
	if as != bs {
		// A set sign bit is larger unsigned but smaller signed.
		if as {
			return -1
		}
		return 1
	}
	// With equal signs, two's complement order matches unsigned order.
	return a.ucmp(b)
}

// UCmp compares a and b as unsigned integers and returns:
//
//	-1 if a <  b
//	 0 if a == b
//	+1 if a >  b
func (a ApInt) UCmp(b ApInt) (int, error) {
	if err := a.checkWidth(b); err != nil {
		return 0, err
	}
	return a.ucmp(&b), nil
}

// SCmp compares a and b as signed integers; see UCmp for the result.
func (a ApInt) SCmp(b ApInt) (int, error) {
	if err := a.checkWidth(b); err != nil {
		return 0, err
	}
	return a.scmp(&b), nil
}

func (a ApInt) ULess(b ApInt) (bool, error) {
	c, err := a.UCmp(b)
	return c < 0, err
}

func (a ApInt) ULessOrEqual(b ApInt) (bool, error) {
	c, err := a.UCmp(b)
	return err == nil && c <= 0, err
}

func (a ApInt) UGreater(b ApInt) (bool, error) {
	c, err := a.UCmp(b)
	return c > 0, err
}

func (a ApInt) UGreaterOrEqual(b ApInt) (bool, error) {
	c, err := a.UCmp(b)
	return err == nil && c >= 0, err
}

func (a ApInt) SLess(b ApInt) (bool, error) {
	c, err := a.SCmp(b)
	return c < 0, err
}

func (a ApInt) SLessOrEqual(b ApInt) (bool, error) {
	c, err := a.SCmp(b)
	return err == nil && c <= 0, err
}

func (a ApInt) SGreater(b ApInt) (bool, error) {
	c, err := a.SCmp(b)
	return c > 0, err
}

func (a ApInt) SGreaterOrEqual(b ApInt) (bool, error) {
	c, err := a.SCmp(b)
	return err == nil && c >= 0, err
}

// IsNegative reports whether a is negative when interpreted as signed.
func (a ApInt) IsNegative() bool { return a.signBit() }

// Sign returns -1, 0 or +1 depending on the sign of a interpreted as signed.
func (a ApInt) Sign() int {
	if a.IsZero() {
		return 0
	} else if a.signBit() {
		return -1
	}
	return 1
}
