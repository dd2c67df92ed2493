package apint

// RandSource supplies uniformly distributed 64-bit words, for example a
// *math/rand.Rand.
type RandSource interface {
	Uint64() uint64
}

// Rand returns a uniformly distributed value of width w built from words
// drawn from source.
func Rand(w BitWidth, source RandSource) ApInt {
	out := newApInt(w)
	d := out.digits()
	for i := range d {
		d[i] = Digit(source.Uint64())
	}
	out.canonicalize()
	return out
}

// UDifference subtracts the smaller of a and b from the larger, both
// interpreted as unsigned.
func UDifference(a, b ApInt) (ApInt, error) {
	c, err := a.UCmp(b)
	if err != nil {
		return ApInt{}, err
	}
	if c < 0 {
		return b.Sub(a)
	}
	return a.Sub(b)
}

func UMax(a, b ApInt) (ApInt, error) {
	c, err := a.UCmp(b)
	if err != nil {
		return ApInt{}, err
	}
	if c < 0 {
		return b.Clone(), nil
	}
	return a.Clone(), nil
}

func UMin(a, b ApInt) (ApInt, error) {
	c, err := a.UCmp(b)
	if err != nil {
		return ApInt{}, err
	}
	if c > 0 {
		return b.Clone(), nil
	}
	return a.Clone(), nil
}

func SMax(a, b ApInt) (ApInt, error) {
	c, err := a.SCmp(b)
	if err != nil {
		return ApInt{}, err
	}
	if c < 0 {
		return b.Clone(), nil
	}
	return a.Clone(), nil
}

func SMin(a, b ApInt) (ApInt, error) {
	c, err := a.SCmp(b)
	if err != nil {
		return ApInt{}, err
	}
	if c > 0 {
		return b.Clone(), nil
	}
	return a.Clone(), nil
}
