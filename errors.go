package apint

import (
	"errors"
	"fmt"
)

var (
	ErrWidthMismatch        = errors.New("apint: width mismatch")
	ErrInvalidWidthArgument = errors.New("apint: invalid width argument")
	ErrDivisionByZero       = errors.New("apint: division by zero")
	ErrInvalidWordCount     = errors.New("apint: invalid word count")
	ErrInvalidRadix         = errors.New("apint: invalid radix")
	ErrInvalidDigitForRadix = errors.New("apint: invalid digit for radix")
	ErrEmptyString          = errors.New("apint: empty string")
	ErrValueOutOfRange      = errors.New("apint: value out of range")
	ErrInvalidBitPosition   = errors.New("apint: invalid bit position")
)

// WidthMismatchError is returned by binary operations whose operands differ
// in width. It matches ErrWidthMismatch with errors.Is.
type WidthMismatchError struct {
	Expected BitWidth
	Found    BitWidth
}

func (e *WidthMismatchError) Error() string {
	return fmt.Sprintf("apint: width mismatch, expected %d bits, found %d bits", e.Expected, e.Found)
}

func (e *WidthMismatchError) Unwrap() error { return ErrWidthMismatch }

// WidthArgumentError is returned by resize operations asked to move in the
// wrong direction, for example truncating to a larger width.
type WidthArgumentError struct {
	Op   string
	From BitWidth
	To   BitWidth
}

func (e *WidthArgumentError) Error() string {
	return fmt.Sprintf("apint: invalid width argument for %s, from %d bits to %d bits", e.Op, e.From, e.To)
}

func (e *WidthArgumentError) Unwrap() error { return ErrInvalidWidthArgument }

type WordCountError struct {
	Width    BitWidth
	Expected int
	Found    int
}

func (e *WordCountError) Error() string {
	return fmt.Sprintf("apint: width %d requires %d words, found %d", e.Width, e.Expected, e.Found)
}

func (e *WordCountError) Unwrap() error { return ErrInvalidWordCount }

// DigitError reports the first character of a string that is not a valid
// digit in the requested radix. Pos is a byte offset.
type DigitError struct {
	Pos   int
	Digit rune
	Radix int
}

func (e *DigitError) Error() string {
	return fmt.Sprintf("apint: invalid digit %q at position %d for radix %d", e.Digit, e.Pos, e.Radix)
}

func (e *DigitError) Unwrap() error { return ErrInvalidDigitForRadix }

type BitPositionError struct {
	Pos   uint
	Width BitWidth
}

func (e *BitPositionError) Error() string {
	return fmt.Sprintf("apint: bit position %d out of range for width %d", e.Pos, e.Width)
}

func (e *BitPositionError) Unwrap() error { return ErrInvalidBitPosition }

func radixError(radix int) error {
	return fmt.Errorf("%w %d, must be in 2..36", ErrInvalidRadix, radix)
}
