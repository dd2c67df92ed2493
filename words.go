package apint

// Word sequence kernels. All sequences are least significant word first. z
// may alias x or y unless noted otherwise.

func addVV(z, x, y []Digit) (c Digit) {
	for i := range z {
		z[i], c = AddCarry(x[i], y[i], c)
	}
	return c
}

func subVV(z, x, y []Digit) (c Digit) {
	for i := range z {
		z[i], c = SubBorrow(x[i], y[i], c)
	}
	return c
}

func addVW(z, x []Digit, y Digit) (c Digit) {
	c = y
	for i := range z {
		z[i], c = AddCarry(x[i], c, 0)
	}
	return c
}

func subVW(z, x []Digit, y Digit) (c Digit) {
	c = y
	for i := range z {
		z[i], c = SubBorrow(x[i], c, 0)
	}
	return c
}

func notV(z, x []Digit) {
	for i := range z {
		z[i] = ^x[i]
	}
}

// negV sets z to the two's complement negation of x and returns the carry out
// of the "+1" step, which is 1 only if x was zero.
func negV(z, x []Digit) (c Digit) {
	notV(z, x)
	return addVW(z, z, 1)
}

// mulAddVWW sets z = x*y + r and returns the carry digit.
func mulAddVWW(z, x []Digit, y, r Digit) (c Digit) {
	c = r
	for i := range z {
		c, z[i] = WideMulAdd(x[i], y, c)
	}
	return c
}

// addMulVVW sets z += x*y and returns the carry digit.
func addMulVVW(z, x []Digit, y Digit) (c Digit) {
	for i := range z {
		z1, z0 := WideMulAdd(x[i], y, z[i])
		var cc Digit
		z[i], cc = AddCarry(z0, c, 0)
		c = z1 + cc
	}
	return c
}

// mulTrunc sets z to the low len(z) words of x*y using the schoolbook method.
// x and y must be at least len(z) words long. z must not alias x or y.
func mulTrunc(z, x, y []Digit) {
	n := len(z)
	for i := range z {
		z[i] = 0
	}
	for i := 0; i < n; i++ {
		if y[i] == 0 {
			continue
		}
		addMulVVW(z[i:n], x[:n-i], y[i])
	}
}

// shlVU sets z = x << s for s < DigitBits and returns the bits shifted out.
func shlVU(z, x []Digit, s uint) (c Digit) {
	if s == 0 {
		copy(z, x)
		return 0
	}
	if n := len(z); n > 0 {
		ŝ := DigitBits - s
		w1 := x[n-1]
		c = w1 >> ŝ
		for i := n - 1; i > 0; i-- {
			w := w1
			w1 = x[i-1]
			z[i] = w<<s | w1>>ŝ
		}
		z[0] = w1 << s
	}
	return c
}

// shrVU sets z = x >> s for s < DigitBits and returns the bits shifted out.
func shrVU(z, x []Digit, s uint) (c Digit) {
	if s == 0 {
		copy(z, x)
		return 0
	}
	if n := len(z); n > 0 {
		ŝ := DigitBits - s
		w1 := x[0]
		c = w1 << ŝ
		for i := 0; i < n-1; i++ {
			w := w1
			w1 = x[i+1]
			z[i] = w>>s | w1<<ŝ
		}
		z[n-1] = w1 >> s
	}
	return c
}

// lshWords sets z = x << s across word boundaries, filling with zero. z and
// x must have the same length. z may alias x.
func lshWords(z, x []Digit, s uint) {
	n := len(z)
	ws, bs := int(s/DigitBits), s%DigitBits
	if ws >= n {
		clearV(z)
		return
	}
	shlVU(z[ws:], x[:n-ws], bs)
	clearV(z[:ws])
}

// rshWords sets z = x >> s across word boundaries, filling with zero. z and
// x must have the same length. z may alias x.
func rshWords(z, x []Digit, s uint) {
	n := len(z)
	ws, bs := int(s/DigitBits), s%DigitBits
	if ws >= n {
		clearV(z)
		return
	}
	shrVU(z[:n-ws], x[ws:], bs)
	clearV(z[n-ws:])
}

func clearV(z []Digit) {
	for i := range z {
		z[i] = 0
	}
}

func fillV(z []Digit, d Digit) {
	for i := range z {
		z[i] = d
	}
}

func isZeroV(x []Digit) bool {
	for _, d := range x {
		if d != 0 {
			return false
		}
	}
	return true
}

// normLen returns the length of x with the most significant zero words
// dropped.
func normLen(x []Digit) int {
	n := len(x)
	for n > 0 && x[n-1] == 0 {
		n--
	}
	return n
}

// cmpVV compares x and y as unsigned numbers of equal length.
func cmpVV(x, y []Digit) int {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// setBitRange sets bits [lo, hi) of z.
func setBitRange(z []Digit, lo, hi uint) {
	for lo < hi {
		word, bit := lo/DigitBits, lo%DigitBits
		n := DigitBits - bit
		if hi-lo < n {
			n = hi - lo
		}
		mask := (DigitMax >> (DigitBits - n)) << bit
		z[word] |= mask
		lo += n
	}
}

// bitRangeIs reports whether bits [lo, hi) of x all equal set.
func bitRangeIs(x []Digit, lo, hi uint, set bool) bool {
	for lo < hi {
		word, bit := lo/DigitBits, lo%DigitBits
		n := DigitBits - bit
		if hi-lo < n {
			n = hi - lo
		}
		mask := (DigitMax >> (DigitBits - n)) << bit
		got := x[word] & mask
		if set && got != mask || !set && got != 0 {
			return false
		}
		lo += n
	}
	return true
}

// divWVW sets z = (xn:x) / y and returns the remainder. xn must be less
// than y.
func divWVW(z []Digit, xn Digit, x []Digit, y Digit) (r Digit) {
	r = xn
	for i := len(z) - 1; i >= 0; i-- {
		z[i], r = divWW(r, x[i], y)
	}
	return r
}

// udivmod sets q = u / v and r = u % v for unsigned word sequences of equal
// length. v must not be zero. q and r must not alias u, v or each other.
func udivmod(q, r, u, v []Digit) {
	clearV(q)
	clearV(r)

	n := normLen(v)
	m := normLen(u)

	switch {
	case m < n || (m == n && cmpVV(u[:m], v[:n]) < 0):
		copy(r, u)

	case n == 1:
		r[0] = divWVW(q[:m], 0, u[:m], v[0])

	default:
		divLarge(q, r, u[:m], v[:n])
	}
}

// divLarge implements Knuth's Algorithm D (TAOCP vol. 2, 4.3.1) for a divisor
// v of at least two words with a non-zero most significant word, and
// len(u) >= len(v). The quotient is written to q[:len(u)-len(v)+1] and the
// remainder to r[:len(v)].
func divLarge(q, r, u, v []Digit) {
	n := len(v)
	m := len(u) - n

	// D1: normalize so that the divisor's top bit is set.
	s := leadingZeros(v[n-1])
	vn := make([]Digit, n+1)
	shlVU(vn[:n], v, s)

	un := make([]Digit, len(u)+1)
	un[len(u)] = shlVU(un[:len(u)], u, s)

	vn1, vn2 := vn[n-1], vn[n-2]
	qhatv := make([]Digit, n+1)

	for j := m; j >= 0; j-- {
		// D3: estimate qhat from the top two words of the window.
		qhat := DigitMax
		ujn := un[j+n]
		if ujn != vn1 {
			var rhat Digit
			qhat, rhat = divWW(ujn, un[j+n-1], vn1)

			x1, x2 := WideMul(qhat, vn2)
			ujn2 := un[j+n-2]
			for x1 > rhat || (x1 == rhat && x2 > ujn2) {
				qhat--
				prev := rhat
				rhat += vn1
				if rhat < prev {
					break
				}
				x1, x2 = WideMul(qhat, vn2)
			}
		}

		// D4: multiply and subtract.
		qhatv[n] = mulAddVWW(qhatv[:n], vn[:n], qhat, 0)
		c := subVV(un[j:j+n+1], un[j:j+n+1], qhatv)

		// D6: add back while the window went negative. vn[n] is zero so the
		// carry out of the n+1 word addition cancels the borrow.
		for c != 0 {
			qhat--
			if addVV(un[j:j+n+1], un[j:j+n+1], vn) != 0 {
				c = 0
			}
		}

		q[j] = qhat
	}

	// D8: unnormalize the remainder.
	shrVU(r[:n], un[:n], s)
}
