// Package poly implements dense univariate polynomial algebra over the
// BN254 scalar field, plus radix-2 and mixed-radix-3 FFT/IFFT domains used
// to move between coefficient and evaluation representations.
//
// A Polynomial is always held in canonical form: coefficients ordered from
// the constant term upward, with no trailing zero coefficient except for
// the zero polynomial itself, which is represented as a single zero
// coefficient. Degree() therefore returns len(coefficients)-1 for every
// polynomial, including the zero polynomial (degree 0, not -1); use
// IsZero() to distinguish the zero polynomial from a genuine constant.
package poly
