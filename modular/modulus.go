package modular

import (
	"errors"
	"fmt"
	"math/bits"
)

// Sentinel errors for modular arithmetic.
var (
	// ErrBadModulus indicates a zero modulus.
	ErrBadModulus = errors.New("modular: modulus must be positive")

	// ErrNoInverse indicates gcd(value, m) != 1.
	ErrNoInverse = errors.New("modular: value has no inverse")
)

// Mod returns a mod m in the range [0, m).
// It panics if m <= 0.
func Mod(a, m int) int {
	if m <= 0 {
		panic(fmt.Sprintf("modular: Mod called with non-positive modulus %d", m))
	}
	r := a % m
	if r < 0 {
		r += m
	}

	return r
}

// Modulus performs arithmetic modulo M. All results are in [0, M).
type Modulus struct {
	m uint64
}

// New returns a Modulus for m, or ErrBadModulus when m == 0.
func New(m uint64) (Modulus, error) {
	if m == 0 {
		return Modulus{}, ErrBadModulus
	}

	return Modulus{m: m}, nil
}

// M returns the modulus.
func (md Modulus) M() uint64 { return md.m }

// Reduce maps a signed integer into [0, M).
func (md Modulus) Reduce(a int64) uint64 {
	if a >= 0 {
		return uint64(a) % md.m
	}
	// -(a+1) avoids overflow on math.MinInt64
	r := (uint64(-(a + 1)) % md.m) + 1
	if r == md.m {
		return 0
	}

	return md.m - r
}

// Add returns (a + b) mod M.
func (md Modulus) Add(a, b uint64) uint64 {
	a, b = a%md.m, b%md.m
	s, carry := bits.Add64(a, b, 0)
	if carry != 0 || s >= md.m {
		s -= md.m
	}

	return s
}

// Sub returns (a - b) mod M.
func (md Modulus) Sub(a, b uint64) uint64 {
	a, b = a%md.m, b%md.m
	if a >= b {
		return a - b
	}

	return md.m - (b - a)
}

// Mul returns (a * b) mod M using a 128-bit product.
func (md Modulus) Mul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a%md.m, b%md.m)
	_, rem := bits.Div64(hi, lo, md.m)

	return rem
}

// Pow returns base^exp mod M by square-and-multiply.
func (md Modulus) Pow(base, exp uint64) uint64 {
	result := uint64(1) % md.m
	base %= md.m
	for exp > 0 {
		if exp&1 == 1 {
			result = md.Mul(result, base)
		}
		base = md.Mul(base, base)
		exp >>= 1
	}

	return result
}

// Inverse returns x such that a*x ≡ 1 (mod M).
// Returns ErrNoInverse when gcd(a, M) != 1.
func (md Modulus) Inverse(a uint64) (uint64, error) {
	// signed extended Euclid; coefficients stay below M in magnitude
	if md.m > 1<<62 {
		return 0, fmt.Errorf("%w: modulus %d too large", ErrNoInverse, md.m)
	}
	oldR, r := int64(a%md.m), int64(md.m)
	oldS, s := int64(1), int64(0)
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
	}
	if oldR != 1 {
		return 0, fmt.Errorf("%w: gcd(%d, %d) = %d", ErrNoInverse, a, md.m, oldR)
	}

	return md.Reduce(oldS), nil
}
