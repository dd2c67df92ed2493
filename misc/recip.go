package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"
	"github.com/shabbyrobe/go-apint"
	"github.com/spf13/cobra"
)

// This is an experiment for finding the multiply-and-shift reciprocal that
// compilers use to divide by a constant, generalised to any ApInt width. The
// result is checked against UQuo/SQuo before it is printed.
//
// Usage: recip [--width=N] [--signed] [--dump] <numer> <denom>

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var (
	width  uint
	signed bool
	dump   bool
)

func init() {
	rootCmd.Flags().UintVar(&width, "width", 64, "Bit width of the operands")
	rootCmd.Flags().BoolVar(&signed, "signed", false, "Treat the operands as signed")
	rootCmd.Flags().BoolVar(&dump, "dump", false, "Dump the divider")
}

var rootCmd = &cobra.Command{
	Use:   "recip <numer> <denom>",
	Short: "Reciprocal finder for fixed-width division by a constant.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := apint.NewBitWidth(width)
		if err != nil {
			return err
		}
		sign := apint.Unsigned
		if signed {
			sign = apint.Signed
		}
		if err := run(w, sign, args[0], args[1], dump); err != nil {
			log.Error().Err(err).Msg("recip failed")
			return err
		}
		return nil
	},
}

func run(w apint.BitWidth, sign apint.Signedness, numerStr, denomStr string, dump bool) error {
	numer, err := apint.Parse(numerStr, 10, w, sign)
	if err != nil {
		return err
	}
	denom, err := apint.Parse(denomStr, 10, w, sign)
	if err != nil {
		return err
	}
	if denom.IsZero() {
		return apint.ErrDivisionByZero
	}

	var result, expected apint.ApInt
	var div divider
	if sign == apint.Signed {
		div = divFindMul(denom.Magnitude())
		result = divMulSigned(numer, denom, div)
		expected, err = numer.SQuo(denom)
	} else {
		div = divFindMul(denom)
		result = divMul(numer, div)
		expected, err = numer.UQuo(denom)
	}
	if err != nil {
		return err
	}
	if dump {
		spew.Dump(div)
	}

	n, _ := numer.Text(10, sign)
	d, _ := denom.Text(10, sign)
	q, _ := result.Text(10, sign)
	fmt.Printf("%s / %s == %s\n", n, d, q)
	fmt.Printf("recip:%#x shift:%d add:%v\n", div.recip, div.shift, div.add)

	if !result.Equal(expected) {
		e, _ := expected.Text(10, sign)
		return fmt.Errorf("reciprocal result %s does not match quotient %s", q, e)
	}
	log.Info().Stringer("width", w).Stringer("sign", sign).Msg("reciprocal matches quotient")
	return nil
}

type divider struct {
	recip apint.ApInt
	shift uint
	add   bool

	// pow2 is set when the divisor is a power of two and recip is unused.
	pow2 bool
}

// divFindMul finds the reciprocal for the unsigned divisor denom.
func divFindMul(denom apint.ApInt) (div divider) {
	w := denom.Width()
	floorLog2Denom := denom.BitLen() - 1

	if denom.CountOnes() == 1 {
		div.pow2 = true
		div.shift = floorLog2Denom
		div.recip = apint.Zero(w)
		return div
	}

	// Move 2^floorLog2Denom into the hi half of a double width number.
	wide := w * 2
	numer := apint.One(wide).Lsh(floorLog2Denom + w.Uint())
	proposedM, rem, err := numer.UQuoRem(denom.ZeroResize(wide))
	if err != nil {
		panic(err)
	}
	proposedM, rem = proposedM.ZeroResize(w), rem.ZeroResize(w)

	e := mustOK(denom.Sub(rem))
	if lt, _ := e.ULess(apint.One(w).Lsh(floorLog2Denom)); lt {
		div.shift = floorLog2Denom
	} else {
		proposedM = mustOK(proposedM.Add(proposedM))
		twiceRem := mustOK(rem.Add(rem))
		ge, _ := twiceRem.UGreaterOrEqual(denom)
		lt, _ := twiceRem.ULess(rem)
		if ge || lt {
			proposedM = proposedM.Inc()
		}
		div.shift = floorLog2Denom
		div.add = true
	}

	div.recip = proposedM.Inc()
	return div
}

// divMul divides numer by the divisor div was built for.
func divMul(numer apint.ApInt, div divider) apint.ApInt {
	if div.pow2 {
		return numer.LRsh(div.shift)
	}

	q := mulHi(numer, div.recip)
	if div.add {
		t := mustOK(numer.Sub(q)).LRsh(1)
		return mustOK(t.Add(q)).LRsh(div.shift)
	}
	return q.LRsh(div.shift)
}

// divMulSigned divides magnitudes and fixes up the sign, which truncates
// toward zero like SQuo.
func divMulSigned(numer, denom apint.ApInt, div divider) apint.ApInt {
	q := divMul(numer.Magnitude(), div)
	if numer.IsNegative() != denom.IsNegative() {
		q = q.Neg()
	}
	return q
}

func mulHi(x, y apint.ApInt) apint.ApInt {
	w := x.Width()
	wide := w * 2
	p := mustOK(x.ZeroResize(wide).Mul(y.ZeroResize(wide)))
	return p.LRsh(w.Uint()).ZeroResize(w)
}

func mustOK(v apint.ApInt, err error) apint.ApInt {
	if err != nil {
		panic(err)
	}
	return v
}
