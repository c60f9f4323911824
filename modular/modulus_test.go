package modular_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/modular"
)

// TestMod verifies Euclidean remainders for positive and negative inputs.
func TestMod(t *testing.T) {
	cases := []struct {
		a, m, want int
	}{
		{0, 5, 0},
		{7, 5, 2},
		{-1, 5, 4},
		{-7, 5, 3},
		{-10, 5, 0},
		{-11, 1, 0},
		{13, 13, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, modular.Mod(tc.a, tc.m), "Mod(%d, %d)", tc.a, tc.m)
	}
}

// TestMod_PanicsOnNonPositive checks the programmer-error guard.
func TestMod_PanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { modular.Mod(3, 0) })
	assert.Panics(t, func() { modular.Mod(3, -2) })
}

func TestNew_ZeroModulus(t *testing.T) {
	_, err := modular.New(0)
	assert.ErrorIs(t, err, modular.ErrBadModulus)
}

// TestModulus_Arithmetic covers Reduce/Add/Sub/Mul/Pow on small and near-overflow values.
func TestModulus_Arithmetic(t *testing.T) {
	md, err := modular.New(7)
	require.NoError(t, err)

	assert.Equal(t, uint64(7), md.M())
	assert.Equal(t, uint64(4), md.Reduce(-3))
	assert.Equal(t, uint64(0), md.Reduce(-14))
	assert.Equal(t, uint64(3), md.Reduce(10))
	assert.Equal(t, uint64(1), md.Add(5, 3))
	assert.Equal(t, uint64(5), md.Sub(2, 4))
	assert.Equal(t, uint64(6), md.Mul(3, 9))
	assert.Equal(t, uint64(2), md.Pow(3, 2))  // 9 mod 7
	assert.Equal(t, uint64(1), md.Pow(3, 6))  // Fermat
	assert.Equal(t, uint64(1), md.Pow(10, 0)) // x^0

	big, err := modular.New(math.MaxUint64 - 58) // largest 64-bit prime
	require.NoError(t, err)
	a := uint64(math.MaxUint64 - 60)
	assert.Equal(t, big.M()-4, big.Add(a, a), "Add must not lose the carry")
	assert.Equal(t, uint64(4), big.Mul(a, a), "(-2)^2 == 4")
	assert.Equal(t, uint64(6), md.Reduce(math.MinInt64), "-2^63 ≡ -1 (mod 7)")
}

// TestModulus_Inverse verifies inverses and the non-coprime error.
func TestModulus_Inverse(t *testing.T) {
	md, err := modular.New(26)
	require.NoError(t, err)

	inv, err := md.Inverse(3)
	require.NoError(t, err)
	assert.Equal(t, uint64(9), inv)
	assert.Equal(t, uint64(1), md.Mul(3, inv))

	_, err = md.Inverse(13)
	assert.ErrorIs(t, err, modular.ErrNoInverse)

	one, err := modular.New(1)
	require.NoError(t, err)
	inv, err = one.Inverse(5)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), inv)
}
