package apint

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestBitWidth(t *testing.T) {
	for _, tc := range []struct {
		w       BitWidth
		words   int
		excess  uint
		signPos uint
		msb     Digit
		kind    storageKind
	}{
		{W1, 1, 1, 0, 0x1, storageInline},
		{7, 1, 7, 6, 0x7f, storageInline},
		{W8, 1, 8, 7, 0xff, storageInline},
		{W64, 1, 0, 63, DigitMax, storageInline},
		{65, 2, 1, 64, 0x1, storageHeap},
		{W128, 2, 0, 127, DigitMax, storageHeap},
		{129, 3, 1, 128, 0x1, storageHeap},
		{4096, 64, 0, 4095, DigitMax, storageHeap},
	} {
		t.Run(fmt.Sprintf("%d", tc.w), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.words, tc.w.Words())
			tt.MustEqual(tc.excess, tc.w.ExcessBits())
			tt.MustEqual(tc.signPos, tc.w.SignBitPos())
			tt.MustEqual(tc.msb, tc.w.msbMask())
			tt.MustEqual(tc.kind, tc.w.storage())
			tt.MustAssert(tc.w.IsValidPos(tc.signPos))
			tt.MustAssert(!tc.w.IsValidPos(tc.signPos + 1))
		})
	}
}

func TestNewBitWidth(t *testing.T) {
	tt := assert.WrapTB(t)

	w, err := NewBitWidth(100)
	tt.MustOK(err)
	tt.MustEqual(BitWidth(100), w)
	tt.MustEqual("100 bits", w.String())

	_, err = NewBitWidth(0)
	tt.MustAssert(errors.Is(err, ErrInvalidWidthArgument))
}

func TestZeroBitWidthPanics(t *testing.T) {
	for name, fn := range map[string]func(){
		"must": func() { MustBitWidth(0) },
		"zero": func() { Zero(0) },
		"from": func() { FromUint64(0, 1, Unsigned) },
	} {
		t.Run(name, func(t *testing.T) {
			tt := assert.WrapTB(t)
			defer func() {
				tt.MustAssert(recover() != nil, "expected panic")
			}()
			fn()
		})
	}
}

func TestStorageKind(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual("inline", storageInline.String())
	tt.MustEqual("heap", storageHeap.String())

	small, large := Zero(W64), Zero(65)
	tt.MustAssert(small.ext == nil)
	tt.MustEqual(storageInline, small.storage())
	tt.MustEqual(2, len(large.ext))
	tt.MustEqual(storageHeap, large.storage())
}
