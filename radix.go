package apint

import (
	"fmt"
	"strings"
)

const digitChars = "0123456789abcdefghijklmnopqrstuvwxyz"

// radixChunk holds, for each radix, the largest power of the radix that fits
// in a Digit and the number of radix digits that power covers.
type radixChunk struct {
	base Digit
	n    int
}

var radixChunks = func() (out [37]radixChunk) {
	for radix := 2; radix <= 36; radix++ {
		base, n := Digit(radix), 1
		for {
			hi, lo := WideMul(base, Digit(radix))
			if hi != 0 {
				break
			}
			base, n = lo, n+1
		}
		out[radix] = radixChunk{base: base, n: n}
	}
	return out
}()

func validRadix(radix int) bool { return radix >= 2 && radix <= 36 }

func digitValue(c byte) (v int, ok bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10, true
	}
	return 0, false
}

// Parse reads s as an integer in the given radix (2 to 36) into a value of
// width w. Letters are accepted in either case. A leading '-' is accepted
// only when sign is Signed.
//
// Values that do not fit in w bits are rejected with ErrValueOutOfRange
// rather than truncated. Unsigned values must lie in [0, 2^w); signed values
// in [-2^(w-1), 2^(w-1)).
func Parse(s string, radix int, w BitWidth, sign Signedness) (out ApInt, err error) {
	if err := w.valid(); err != nil {
		return out, err
	}
	if !validRadix(radix) {
		return out, radixError(radix)
	}
	if s == "" {
		return out, ErrEmptyString
	}

	start, neg := 0, false
	if s[0] == '-' {
		if sign != Signed {
			return out, &DigitError{Pos: 0, Digit: '-', Radix: radix}
		}
		start, neg = 1, true
	}
	if start == len(s) {
		return out, ErrEmptyString
	}

	out = newApInt(w)
	d := out.digits()
	top := len(d) - 1
	excess := ^w.msbMask()
	chunk := radixChunks[radix]

	overflow := func() error {
		return fmt.Errorf("%w: %q does not fit in %d %s bits", ErrValueOutOfRange, s, w, sign)
	}

	for i := start; i < len(s); {
		var acc Digit
		base := Digit(1)
		j := i
		for ; j < len(s) && j-i < chunk.n; j++ {
			v, ok := digitValue(s[j])
			if !ok || v >= radix {
				return ApInt{}, &DigitError{Pos: j, Digit: rune(s[j]), Radix: radix}
			}
			acc = acc*Digit(radix) + Digit(v)
			base *= Digit(radix)
		}
		i = j

		if mulAddVWW(d, d, base, acc) != 0 || d[top]&excess != 0 {
			return ApInt{}, overflow()
		}
	}

	if sign == Signed {
		// The magnitude may reach 2^(w-1) only when negative, and then only as
		// exactly SignedMin.
		if out.signBit() {
			word, mask := w.signMask()
			d[word] &^= mask
			exact := isZeroV(d)
			d[word] |= mask
			if !neg || !exact {
				return ApInt{}, overflow()
			}
		}
		if neg {
			out.neg(out)
		}
	}
	return out, nil
}

// MustParse is Parse, but panics on error.
func MustParse(s string, radix int, w BitWidth, sign Signedness) ApInt {
	out, err := Parse(s, radix, w, sign)
	if err != nil {
		panic(err)
	}
	return out
}

// Text formats a in the given radix (2 to 36) using lower-case letters. When
// sign is Signed and a is negative, the result has a leading '-'.
func (a ApInt) Text(radix int, sign Signedness) (string, error) {
	if !validRadix(radix) {
		return "", radixError(radix)
	}
	neg := sign == Signed && a.signBit()
	mag := a
	if neg {
		mag = a.Magnitude()
	}
	return string(mag.appendText(nil, radix, neg)), nil
}

// appendText appends the unsigned digits of a to buf, preceded by '-' if neg
// is set.
func (a ApInt) appendText(buf []byte, radix int, neg bool) []byte {
	src := a.digits()
	n := normLen(src)
	if n == 0 {
		if neg {
			buf = append(buf, '-')
		}
		return append(buf, '0')
	}

	q := make([]Digit, n)
	copy(q, src[:n])
	chunk := radixChunks[radix]

	// Digits are produced least significant first and reversed at the end.
	var rev []byte
	for n > 0 {
		r := divWVW(q[:n], 0, q[:n], chunk.base)
		n = normLen(q[:n])
		for i := 0; i < chunk.n; i++ {
			if n == 0 && r == 0 {
				break
			}
			rev = append(rev, digitChars[r%Digit(radix)])
			r /= Digit(radix)
		}
	}

	if neg {
		buf = append(buf, '-')
	}
	for i := len(rev) - 1; i >= 0; i-- {
		buf = append(buf, rev[i])
	}
	return buf
}

// String returns a in decimal, interpreted as unsigned.
func (a ApInt) String() string {
	return string(a.appendText(nil, 10, false))
}

// Format implements fmt.Formatter. The value is interpreted as unsigned;
// verbs and flags follow big.Int's Format. Use Text for signed output.
func (a ApInt) Format(s fmt.State, c rune) {
	a.UBigInt().Format(s, c)
}

// MarshalText encodes a as an unsigned decimal string.
func (a ApInt) MarshalText() ([]byte, error) {
	return a.appendText(nil, 10, false), nil
}

// UnmarshalText parses an unsigned decimal string into a, which must already
// have a width; the width is kept.
func (a *ApInt) UnmarshalText(text []byte) error {
	if a.width == 0 {
		return fmt.Errorf("%w: unmarshal into an ApInt with no width", ErrInvalidWidthArgument)
	}
	v, err := Parse(strings.TrimSpace(string(text)), 10, a.width, Unsigned)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

var _ fmt.Formatter = ApInt{}
