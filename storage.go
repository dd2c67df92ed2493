package apint

type storageKind uint8

const (
	// storageInline holds the single digit of a value of up to DigitBits
	// bits directly inside the ApInt.
	storageInline storageKind = iota

	// storageHeap holds the digits in a separately allocated buffer.
	storageHeap
)

func (k storageKind) String() string {
	switch k {
	case storageInline:
		return "inline"
	case storageHeap:
		return "heap"
	default:
		return "unknown"
	}
}

func (w BitWidth) storage() storageKind {
	if w <= DigitBits {
		return storageInline
	}
	return storageHeap
}

// newApInt returns a zero value of width w with storage matching the width.
func newApInt(w BitWidth) (out ApInt) {
	w.mustValid()
	out.width = w
	if w.storage() == storageHeap {
		out.ext = make([]Digit, w.Words())
	}
	return out
}

// digits exposes the word sequence, least significant word first, regardless
// of where the words live. Writes through the returned slice modify a.
func (a *ApInt) digits() []Digit {
	if a.ext != nil {
		return a.ext
	}
	return a.inl[:]
}

func (a *ApInt) storage() storageKind { return a.width.storage() }

// canonicalize clears the bits above the width in the most significant word.
// It must be called after any raw digit mutation that may have set them.
func (a *ApInt) canonicalize() {
	if a.ext != nil {
		a.ext[len(a.ext)-1] &= a.width.msbMask()
	} else {
		a.inl[0] &= a.width.msbMask()
	}
}

func (a *ApInt) msd() Digit {
	if a.ext != nil {
		return a.ext[len(a.ext)-1]
	}
	return a.inl[0]
}

// lsd returns the least significant digit.
func (a *ApInt) lsd() Digit {
	if a.ext != nil {
		return a.ext[0]
	}
	return a.inl[0]
}

// setFrom overwrites a's digits with src's digits. Both must have the same
// width.
func (a *ApInt) setFrom(src []Digit) {
	copy(a.digits(), src)
}

// unshare gives a its own copy of a heap buffer before a single-word write,
// leaving the old buffer to any ApInt copied from a.
func (a *ApInt) unshare() {
	if a.ext != nil {
		ext := make([]Digit, len(a.ext))
		copy(ext, a.ext)
		a.ext = ext
	}
}

// Clone returns a copy of a that shares no storage with a.
func (a ApInt) Clone() ApInt {
	if a.ext == nil {
		return a
	}
	out := a
	out.ext = make([]Digit, len(a.ext))
	copy(out.ext, a.ext)
	return out
}
