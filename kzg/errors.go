package kzg

import "errors"

var (
	// ErrDegreeTooLarge is returned whenever a polynomial's degree (or a
	// requested maximum degree) exceeds what the SRS supports.
	ErrDegreeTooLarge = errors.New("kzg: degree exceeds SRS capacity")

	// ErrProveEvalFailed is returned by Prove when dividing p - p(z) by
	// the vanishing polynomial X - z leaves a nonzero remainder. Prove
	// computes p(z) itself, so this signals a broken internal invariant
	// rather than a wrong value supplied by the caller.
	ErrProveEvalFailed = errors.New("kzg: p(z) division left a nonzero remainder")

	// ErrVerifyFailed is returned by Verify when the pairing equation does
	// not hold.
	ErrVerifyFailed = errors.New("kzg: pairing check failed")

	// ErrDeserialization is returned when an SRS byte stream is malformed
	// or truncated.
	ErrDeserialization = errors.New("kzg: malformed SRS encoding")

	// ErrMinSRSSize is returned by Setup when asked for a degree too small
	// to produce a usable SRS (fewer than one G1 element).
	ErrMinSRSSize = errors.New("kzg: maxDegree must be >= 0")

	// ErrBlindFactorCountMismatch describes a blinding-factor count that
	// does not fit the zeroing degree. No function in this package returns
	// it: ApplyBlindFactors reports a zeroing degree plus blind count that
	// runs past the SRS as ErrDegreeTooLarge.
	ErrBlindFactorCountMismatch = errors.New("kzg: blind factor count mismatch")
)
