package apint

// ApInt is an integer of a fixed bit width stored as a two's complement bit
// pattern. Whether it is signed or unsigned depends on the operation.
//
// Bits above the width in the most significant digit are always zero.
type ApInt struct {
	width BitWidth
	inl   [1]Digit
	ext   []Digit
}

// Signedness selects how a bit pattern is interpreted by operations that
// care, like parsing, formatting and extension from a primitive.
type Signedness uint8

const (
	Unsigned Signedness = iota
	Signed
)

func (s Signedness) String() string {
	if s == Signed {
		return "signed"
	}
	return "unsigned"
}

// Zero returns the value 0 with the given width.
func Zero(w BitWidth) ApInt { return newApInt(w) }

// One returns the value 1 with the given width.
func One(w BitWidth) ApInt {
	out := newApInt(w)
	out.digits()[0] = 1
	return out
}

// AllSet returns a value of the given width with every bit set. This is the
// largest unsigned value and -1 when signed.
func AllSet(w BitWidth) ApInt {
	out := newApInt(w)
	fillV(out.digits(), DigitMax)
	out.canonicalize()
	return out
}

func UnsignedMax(w BitWidth) ApInt { return AllSet(w) }

func UnsignedMin(w BitWidth) ApInt { return Zero(w) }

// SignedMin returns the most negative value of the given width: the sign bit
// set and every other bit clear.
func SignedMin(w BitWidth) ApInt {
	out := newApInt(w)
	word, mask := w.signMask()
	out.digits()[word] = mask
	return out
}

// SignedMax returns the largest positive value of the given width.
func SignedMax(w BitWidth) ApInt {
	out := AllSet(w)
	word, mask := w.signMask()
	out.digits()[word] &^= mask
	return out
}

// FromWords creates an ApInt from a word sequence, least significant word
// first. The number of words must match w.Words(); bits above the width are
// cleared. The words are copied.
func FromWords(w BitWidth, words []Digit) (ApInt, error) {
	if err := w.valid(); err != nil {
		return ApInt{}, err
	}
	if len(words) != w.Words() {
		return ApInt{}, &WordCountError{Width: w, Expected: w.Words(), Found: len(words)}
	}
	out := newApInt(w)
	out.setFrom(words)
	out.canonicalize()
	return out, nil
}

// Words returns a copy of the word sequence, least significant word first.
// Together with Width it is the canonical view of the value.
func (a ApInt) Words() []Digit {
	d := a.digits()
	out := make([]Digit, len(d))
	copy(out, d)
	return out
}

func (a ApInt) Width() BitWidth { return a.width }

func (a ApInt) WordCount() int { return a.width.Words() }

func (a ApInt) checkWidth(b ApInt) error {
	if a.width != b.width {
		return &WidthMismatchError{Expected: a.width, Found: b.width}
	}
	return nil
}

func (a ApInt) IsZero() bool {
	if a.ext == nil {
		return a.inl[0] == 0
	}
	return isZeroV(a.ext)
}

func (a ApInt) IsOne() bool {
	d := a.digits()
	return d[0] == 1 && isZeroV(d[1:])
}

// Equal reports whether a and b have the same width and the same bits.
func (a ApInt) Equal(b ApInt) bool {
	if a.width != b.width {
		return false
	}
	return cmpVV(a.digits(), b.digits()) == 0
}
