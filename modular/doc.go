// Package modular provides Euclidean remainders and arithmetic in Z/mZ.
//
// What:
//
//   - Mod(a, m) returns the remainder of a in [0, m), also for negative a.
//     Go's % operator keeps the sign of the dividend, which is rarely what
//     puzzle code wants when wrapping indices or offsets.
//   - Modulus is a value type performing Add, Sub, Mul, Pow and Inverse
//     modulo a fixed m, with 128-bit intermediate products.
//
// Complexity:
//
//   - Mod, Reduce, Add, Sub, Mul: O(1).
//   - Pow: O(log e).
//   - Inverse: O(log m) (extended Euclid).
//
// Errors:
//
//   - ErrBadModulus: New was called with m == 0.
//   - ErrNoInverse: the value shares a factor with the modulus.
package modular
