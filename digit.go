package apint

import (
	"math/bits"
)

// Digit is a single machine word of an ApInt's word sequence.
type Digit uint64

const (
	DigitBits = 64

	DigitMax Digit = 1<<DigitBits - 1

	digitSignBit Digit = 1 << (DigitBits - 1)
)

// AddCarry returns x + y + carry and the carry out. carry must be 0 or 1.
func AddCarry(x, y, carry Digit) (sum, carryOut Digit) {
	s, c := bits.Add64(uint64(x), uint64(y), uint64(carry))
	return Digit(s), Digit(c)
}

// SubBorrow returns x - y - borrow and the borrow out. borrow must be 0 or 1.
func SubBorrow(x, y, borrow Digit) (diff, borrowOut Digit) {
	d, b := bits.Sub64(uint64(x), uint64(y), uint64(borrow))
	return Digit(d), Digit(b)
}

// WideMul returns the double-word product of x and y.
func WideMul(x, y Digit) (hi, lo Digit) {
	h, l := bits.Mul64(uint64(x), uint64(y))
	return Digit(h), Digit(l)
}

// WideMulAdd returns x*y + c as a double word. The result cannot overflow.
func WideMulAdd(x, y, c Digit) (hi, lo Digit) {
	h, l := bits.Mul64(uint64(x), uint64(y))
	var cc uint64
	l, cc = bits.Add64(l, uint64(c), 0)
	return Digit(h + cc), Digit(l)
}

// DivWide divides the double word hi:lo by d. The quotient must fit in a
// single digit, so hi must be less than d; otherwise ErrValueOutOfRange is
// returned.
func DivWide(hi, lo, d Digit) (q, r Digit, err error) {
	if d == 0 {
		return 0, 0, ErrDivisionByZero
	}
	if hi >= d {
		return 0, 0, ErrValueOutOfRange
	}
	q, r = divWW(hi, lo, d)
	return q, r, nil
}

func leadingZeros(d Digit) uint { return uint(bits.LeadingZeros64(uint64(d))) }

func trailingZeros(d Digit) uint { return uint(bits.TrailingZeros64(uint64(d))) }

func onesCount(d Digit) uint { return uint(bits.OnesCount64(uint64(d))) }

// divWW is Hacker's delight 9-4, divlu. It requires u1 < v.
func divWW(u1, u0, v Digit) (q, r Digit) {
	const b Digit = 1 << 32
	var un1, un0, vn1, vn0, q1, q0, un32, un21, un10, rhat, left, right Digit

	s := leadingZeros(v)
	v <<= s

	vn1 = v >> 32
	vn0 = v & 0xffffffff

	if s > 0 {
		un32 = (u1 << s) | (u0 >> (64 - s))
		un10 = u0 << s
	} else {
		un32 = u1
		un10 = u0
	}

	un1 = un10 >> 32
	un0 = un10 & 0xffffffff

	q1 = un32 / vn1
	rhat = un32 % vn1

	left = q1 * vn0
	right = (rhat << 32) + un1

again1:
	if (q1 >= b) || (left > right) {
		q1--
		rhat += vn1
		if rhat < b {
			left -= vn0
			right = (rhat << 32) | un1
			goto again1
		}
	}

	un21 = (un32 << 32) + (un1 - (q1 * v))

	q0 = un21 / vn1
	rhat = un21 % vn1

	left = q0 * vn0
	right = (rhat << 32) | un0

again2:
	if (q0 >= b) || (left > right) {
		q0--
		rhat += vn1
		if rhat < b {
			left -= vn0
			right = (rhat << 32) | un0
			goto again2
		}
	}

	return (q1 << 32) | q0, ((un21 << 32) + (un0 - (q0 * v))) >> s
}
