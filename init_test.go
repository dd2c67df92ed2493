package apint

import (
	"flag"
	"math/big"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

const (
	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1
	minInt64  = -1 << 63
)

var (
	big0         = new(big.Int)
	maxBigUint64 = new(big.Int).SetUint64(maxUint64)
)

var (
	fuzzIterations   = fuzzDefaultIterations
	fuzzOpsActive    = allFuzzOps
	fuzzWidthsActive = defaultFuzzWidths
	fuzzSeed         int64

	globalRNG *rand.Rand

	testLog = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
)

func TestMain(m *testing.M) {
	var ops StringList
	var widths StringList

	flag.IntVar(&fuzzIterations, "apint.fuzziter", fuzzIterations, "Number of iterations to fuzz each op")
	flag.Int64Var(&fuzzSeed, "apint.fuzzseed", fuzzSeed, "Seed the RNG (0 == current nanotime)")
	flag.Var(&ops, "apint.fuzzop", "Fuzz op to run (can pass multiple times, or a comma separated list)")
	flag.Var(&widths, "apint.fuzzwidth", "Bit width to fuzz (can pass multiple times, or a comma separated list)")
	flag.Parse()

	if fuzzSeed == 0 {
		fuzzSeed = time.Now().UnixNano()
	}
	globalRNG = rand.New(rand.NewSource(fuzzSeed))

	if len(ops) > 0 {
		fuzzOpsActive = nil
		for _, op := range ops {
			fuzzOpsActive = append(fuzzOpsActive, fuzzOp(op))
		}
	}

	if len(widths) > 0 {
		fuzzWidthsActive = nil
		for _, s := range widths {
			n, err := strconv.ParseUint(s, 10, 0)
			if err != nil {
				testLog.Fatal().Err(err).Str("width", s).Msg("invalid -apint.fuzzwidth")
			}
			fuzzWidthsActive = append(fuzzWidthsActive, MustBitWidth(uint(n)))
		}
	}

	testLog.Info().
		Int64("seed", fuzzSeed). // classic rando!
		Int("iterations", fuzzIterations).
		Str("ops", strings.Join(fuzzOpStrings(fuzzOpsActive), ",")).
		Uints("widths", widthUints(fuzzWidthsActive)).
		Msg("fuzz settings")

	code := m.Run()
	os.Exit(code)
}

type StringList []string

func (s StringList) Strings() []string { return s }

func (s *StringList) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

func (s *StringList) Set(v string) error {
	vs := strings.Split(v, ",")
	for _, vi := range vs {
		vi = strings.TrimSpace(vi)
		if vi != "" {
			*s = append(*s, vi)
		}
	}
	return nil
}

func fuzzOpStrings(ops []fuzzOp) []string {
	out := make([]string, len(ops))
	for i, op := range ops {
		out[i] = string(op)
	}
	return out
}

func widthUints(ws []BitWidth) []uint {
	out := make([]uint, len(ws))
	for i, w := range ws {
		out[i] = w.Uint()
	}
	return out
}

// pow2 returns 2^n.
func pow2(n uint) *big.Int {
	return new(big.Int).Lsh(big1, n)
}

// wrapBig reduces b modulo 2^w, giving the unsigned bit pattern a w bit
// integer would hold.
func wrapBig(w BitWidth, b *big.Int) *big.Int {
	return new(big.Int).Mod(b, pow2(w.Uint()))
}

// apu builds an ApInt from a decimal or 0x string, reduced modulo 2^w. Spaces
// are ignored so long constants can be grouped.
func apu(w BitWidth, s string) ApInt {
	s = strings.Replace(s, " ", "", -1)
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic("apint: test string " + s + " invalid")
	}
	return FromBigInt(w, b)
}

func bigs(s string) *big.Int {
	s = strings.Replace(s, " ", "", -1)
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic("apint: big string " + s + " invalid")
	}
	return b
}
