package apint

import (
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestUQuoRem(t *testing.T) {
	for idx, tc := range []struct {
		w    BitWidth
		u, b string
		q, r string
	}{
		{W8, "255", "16", "15", "15"},
		{W8, "3", "200", "0", "3"},
		{W64, "0xFFFFFFFFFFFFFFFF", "3", "0x5555555555555555", "0"},
		{W128, "0xFFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFF", "0xFFFFFFFFFFFFFFFF", "0x1 0000000000000001", "0"},
		{W128, "1000000000000000000000000000000", "7", "142857142857142857142857142857", "1"},
		{W128, "0x1 0000000000000000 ", "0x1 0000000000000000", "1", "0"},
		{W128, "0x1 0000000000000000", "0x1 0000000000000001", "0", "0x1 0000000000000000"},
		{W128, "340282366920938463463374607431768211455", "18446744073709551617", "18446744073709551615", "0"},
		{W128, "0x8000000000000000 0000000000000000", "0x8000000000000000 0000000000000001", "0", "0x8000000000000000 0000000000000000"},
		{192, "0x1 0000000000000000 0000000000000000", "0xFFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFF", "1", "1"},
		{256, "0xFFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFF",
			"0x1 0000000000000000 0000000000000001", "0xFFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFF", "0"},
	} {
		t.Run(fmt.Sprintf("%d/%d:%s÷%s", idx, tc.w, tc.u, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			u, by := apu(tc.w, tc.u), apu(tc.w, tc.b)
			eq, er := apu(tc.w, tc.q), apu(tc.w, tc.r)

			q, r, err := u.UQuoRem(by)
			tt.MustOK(err)
			tt.MustAssert(eq.Equal(q), "quo found %s", q)
			tt.MustAssert(er.Equal(r), "rem found %s", r)

			q, err = u.UQuo(by)
			tt.MustOK(err)
			tt.MustAssert(eq.Equal(q), "quo found %s", q)

			r, err = u.URem(by)
			tt.MustOK(err)
			tt.MustAssert(er.Equal(r), "rem found %s", r)

			a := u.Clone()
			tt.MustOK(a.UQuoAssign(by))
			tt.MustAssert(eq.Equal(a), "quo assign found %s", a)

			a = u.Clone()
			tt.MustOK(a.URemAssign(by))
			tt.MustAssert(er.Equal(a), "rem assign found %s", a)
		})
	}
}

func TestSQuoRem(t *testing.T) {
	for idx, tc := range []struct {
		w    BitWidth
		u, b int64
		q, r int64
	}{
		{W8, 7, 2, 3, 1},
		{W8, -7, 2, -3, -1},
		{W8, 7, -2, -3, 1},
		{W8, -7, -2, 3, -1},
		{W8, -128, -1, -128, 0}, // SignedMin / -1 wraps
		{W8, -128, 1, -128, 0},
		{W64, minInt64, -1, minInt64, 0},
		{W64, maxInt64, -7, -1317624576693539401, 0},
		{W128, -7, 2, -3, -1},
		{W128, 7, -2, -3, 1},
		{W128, -1, 3, 0, -1},
		{200, -1000000007, 1000, -1000000, -7},
	} {
		t.Run(fmt.Sprintf("%d/%d:%d÷%d", idx, tc.w, tc.u, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			u, by := FromInt64(tc.w, tc.u, Signed), FromInt64(tc.w, tc.b, Signed)
			eq, er := FromInt64(tc.w, tc.q, Signed), FromInt64(tc.w, tc.r, Signed)

			q, r, err := u.SQuoRem(by)
			tt.MustOK(err)
			tt.MustAssert(eq.Equal(q), "quo found %s", q.SBigInt())
			tt.MustAssert(er.Equal(r), "rem found %s", r.SBigInt())

			q, err = u.SQuo(by)
			tt.MustOK(err)
			tt.MustAssert(eq.Equal(q))

			r, err = u.SRem(by)
			tt.MustOK(err)
			tt.MustAssert(er.Equal(r))

			a := u.Clone()
			tt.MustOK(a.SQuoAssign(by))
			tt.MustAssert(eq.Equal(a))

			a = u.Clone()
			tt.MustOK(a.SRemAssign(by))
			tt.MustAssert(er.Equal(a))
		})
	}
}

func TestSignedMinDivNegOne(t *testing.T) {
	for _, w := range testWidths {
		t.Run(fmt.Sprintf("%d", w), func(t *testing.T) {
			tt := assert.WrapTB(t)
			q, r, err := SignedMin(w).SQuoRem(AllSet(w))
			tt.MustOK(err)
			tt.MustAssert(q.Equal(SignedMin(w)))
			tt.MustAssert(r.IsZero())
		})
	}
}

func TestDivisionByZero(t *testing.T) {
	for _, w := range testWidths {
		t.Run(fmt.Sprintf("%d", w), func(t *testing.T) {
			tt := assert.WrapTB(t)
			one, zero := One(w), Zero(w)

			_, err := one.UQuo(zero)
			tt.MustAssert(errors.Is(err, ErrDivisionByZero))
			_, err = one.URem(zero)
			tt.MustAssert(errors.Is(err, ErrDivisionByZero))
			_, _, err = one.SQuoRem(zero)
			tt.MustAssert(errors.Is(err, ErrDivisionByZero))

			a := one.Clone()
			tt.MustAssert(errors.Is(a.UQuoAssign(zero), ErrDivisionByZero))
			tt.MustAssert(a.IsOne(), "receiver must be unchanged on error")
			tt.MustAssert(errors.Is(a.SRemAssign(zero), ErrDivisionByZero))
			tt.MustAssert(a.IsOne(), "receiver must be unchanged on error")
		})
	}
}

func TestDivisionWidthMismatch(t *testing.T) {
	tt := assert.WrapTB(t)
	_, err := One(W128).UQuo(One(W64))
	tt.MustAssert(errors.Is(err, ErrWidthMismatch))
	_, err = One(W128).SRem(One(W64))
	tt.MustAssert(errors.Is(err, ErrWidthMismatch))
}

// Operands shaped to stress the qhat correction and add-back steps of
// Algorithm D.
func TestDivLargeAddBack(t *testing.T) {
	tt := assert.WrapTB(t)

	for _, tc := range []struct {
		u, v string
	}{
		{"0x7FFF800000000000 0000000000000000 0000000000000000", "0x8000000000000000 0000000000000001"},
		{"0x8000000000000000 0000000000000003 0000000000000000", "0x2000000000000000 0000000000000001"},
		{"0x0000800000000000 0000000000000000 0000000000000003 0000000000000000", "0x2000000000000000 0000000000000001 0000000000000000"},
	} {
		u, v := apu(256, tc.u), apu(256, tc.v)
		q, r, err := u.UQuoRem(v)
		tt.MustOK(err)

		bq, br := new(big.Int).QuoRem(bigs(tc.u), bigs(tc.v), new(big.Int))
		tt.MustEqual(bq.String(), q.UBigInt().String())
		tt.MustEqual(br.String(), r.UBigInt().String())
	}
}

func TestDivRandomAgainstBig(t *testing.T) {
	tt := assert.WrapTB(t)

	for _, w := range []BitWidth{65, 128, 190, 256, 1000} {
		for i := 0; i < 500; i++ {
			u := Rand(w, globalRNG)
			v := Rand(w, globalRNG).LRsh(uint(globalRNG.Intn(int(w))))
			if v.IsZero() {
				continue
			}
			q, r, err := u.UQuoRem(v)
			tt.MustOK(err)

			bq, br := new(big.Int).QuoRem(u.UBigInt(), v.UBigInt(), new(big.Int))
			tt.MustEqual(bq.String(), q.UBigInt().String(), "%d: %s / %s", w, u, v)
			tt.MustEqual(br.String(), r.UBigInt().String(), "%d: %s %% %s", w, u, v)
		}
	}
}

func BenchmarkUQuoRem(b *testing.B) {
	for _, w := range []BitWidth{W64, W128, 1024} {
		x := AllSet(w)
		y := AllSet(w).LRsh(w.Uint() / 3)
		b.Run(fmt.Sprintf("%d", w), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchApIntResult, _, _ = x.UQuoRem(y)
			}
		})
	}
}

func BenchmarkBigIntDiv(b *testing.B) {
	u := new(big.Int).SetUint64(maxUint64)
	by := new(big.Int).SetUint64(121525124)
	for i := 0; i < b.N; i++ {
		var z big.Int
		z.Div(u, by)
	}
}
