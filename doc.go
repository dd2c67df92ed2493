/*
Package apint provides integers of arbitrary, fixed bit width (ApInt), stored
as two's complement bit patterns. Signedness is not part of the value; it is
chosen per operation, so the same ApInt answers both UCmp and SCmp, UQuo and
SQuo, and so on.

An ApInt's width is fixed when it is created and never grows. Arithmetic wraps
exactly like hardware integers do; the AddWithCarry, SubWithBorrow,
SAddOverflow and SSubOverflow variants report overflow when it matters.

Values of up to 64 bits are stored inline without a heap allocation; wider
values use a separately allocated word buffer. The difference is invisible to
callers.

Simple example:

	a := apint.FromUint64(apint.W8, 200, apint.Unsigned)
	b := apint.FromUint64(apint.W8, 100, apint.Unsigned)
	c, _ := a.Add(b)
	fmt.Println(c)                           // 44
	fmt.Println(c.Text(10, apint.Signed))    // 44 <nil>

ApInts can be created from a variety of sources:

	Zero(w BitWidth) ApInt
	One(w BitWidth) ApInt
	AllSet(w BitWidth) ApInt
	SignedMin(w BitWidth) ApInt
	SignedMax(w BitWidth) ApInt
	FromUint64(w BitWidth, v uint64, s Signedness) ApInt
	FromInt64(w BitWidth, v int64, s Signedness) ApInt
	FromRaw128(hi, lo uint64) ApInt
	FromWords(w BitWidth, words []Digit) (ApInt, error)
	FromBigInt(w BitWidth, v *big.Int) ApInt
	FromBitSet(w BitWidth, b *bitset.BitSet) ApInt
	Parse(s string, radix int, w BitWidth, sign Signedness) (ApInt, error)
	Rand(w BitWidth, source RandSource) ApInt

Operations come in two layers. The value layer (Add, Mul, Lsh, ...) never
modifies its operands and returns a new ApInt. The in-place layer (AddAssign,
MulAssign, LshAssign, SetBit, ...) replaces the receiver's value. Copies of
an ApInt are independent: changing one through the in-place layer never
changes another, whatever the width.

The zero value of ApInt is not usable; always start from a constructor.

ApInt supports the following formatting interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler
*/
package apint
