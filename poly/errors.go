package poly

import "errors"

// ErrDivisionByZero is returned by DivRem when the divisor is the zero
// polynomial.
var ErrDivisionByZero = errors.New("poly: division by zero polynomial")

// ErrUnsupportedDomainSize is returned by NewDomain when size is neither a
// power of two nor three times a power of two.
var ErrUnsupportedDomainSize = errors.New("poly: domain size must be 2^k or 3*2^k")

// ErrSizeMismatch is returned when an evaluation vector's length doesn't
// match its domain's size.
var ErrSizeMismatch = errors.New("poly: vector length does not match domain size")
