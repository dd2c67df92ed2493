package apint

import "fmt"

// BitWidth is the number of bits an ApInt represents. It is always positive;
// use NewBitWidth or MustBitWidth to build one from an untrusted count.
type BitWidth uint

const (
	W1   BitWidth = 1
	W8   BitWidth = 8
	W16  BitWidth = 16
	W32  BitWidth = 32
	W64  BitWidth = 64
	W128 BitWidth = 128
)

func NewBitWidth(n uint) (BitWidth, error) {
	if n == 0 {
		return 0, fmt.Errorf("%w: bit width must be positive", ErrInvalidWidthArgument)
	}
	return BitWidth(n), nil
}

func MustBitWidth(n uint) BitWidth {
	w, err := NewBitWidth(n)
	if err != nil {
		panic(err)
	}
	return w
}

func (w BitWidth) Uint() uint { return uint(w) }

// Words returns the number of digits required to hold a value of this width.
func (w BitWidth) Words() int {
	w.mustValid()
	return int((uint(w)-1)/DigitBits) + 1
}

// ExcessBits returns the number of bits used in the most significant digit,
// or 0 if the width is a multiple of DigitBits and the whole digit is used.
func (w BitWidth) ExcessBits() uint {
	return uint(w) % DigitBits
}

// SignBitPos returns the position of the most significant bit.
func (w BitWidth) SignBitPos() uint {
	w.mustValid()
	return uint(w) - 1
}

func (w BitWidth) IsValidPos(pos uint) bool { return pos < uint(w) }

// msbMask has exactly ExcessBits low bits set, or all bits if the width is a
// multiple of DigitBits.
func (w BitWidth) msbMask() Digit {
	if ex := w.ExcessBits(); ex != 0 {
		return DigitMax >> (DigitBits - ex)
	}
	return DigitMax
}

func (w BitWidth) signMask() (word int, mask Digit) {
	pos := w.SignBitPos()
	return int(pos / DigitBits), 1 << (pos % DigitBits)
}

func (w BitWidth) mustValid() {
	if w == 0 {
		panic("apint: zero bit width")
	}
}

// valid is mustValid for operations that can report an error.
func (w BitWidth) valid() error {
	if w == 0 {
		return fmt.Errorf("%w: zero bit width", ErrInvalidWidthArgument)
	}
	return nil
}

func (w BitWidth) String() string {
	return fmt.Sprintf("%d bits", uint(w))
}
