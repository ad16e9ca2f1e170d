package poly

import (
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// parallelThreshold is the coefficient count above which coefficient-wise
// ops fan out across goroutines via errgroup. Below it the overhead of
// spawning goroutines outweighs the saving.
const parallelThreshold = 1 << 12

// Polynomial is a dense univariate polynomial over F_r, stored from the
// constant term upward. The zero value is not a valid Polynomial; use
// Zero() or NewFromCoefficients.
type Polynomial struct {
	coeffs []fr.Element
}

// canonicalize trims trailing zero coefficients, leaving at least one
// coefficient (the zero polynomial is []fr.Element{0}).
func canonicalize(c []fr.Element) []fr.Element {
	last := len(c) - 1
	for last > 0 && c[last].IsZero() {
		last--
	}
	return c[:last+1]
}

// NewFromCoefficients builds a Polynomial from coefficients ordered from
// the constant term upward. The input slice is copied, not aliased.
func NewFromCoefficients(coeffs []fr.Element) *Polynomial {
	if len(coeffs) == 0 {
		return Zero()
	}
	c := make([]fr.Element, len(coeffs))
	copy(c, coeffs)
	return &Polynomial{coeffs: canonicalize(c)}
}

// NewFromRoots builds the monic polynomial whose roots are exactly the
// given elements (with multiplicity), i.e. prod_i (X - roots[i]), via
// repeated multiplication by a linear factor. O(n^2) in len(roots).
func NewFromRoots(roots []fr.Element) *Polynomial {
	p := One()
	for i := range roots {
		p = p.mulLinear(&roots[i])
	}
	return p
}

// mulLinear returns p * (X - root).
func (p *Polynomial) mulLinear(root *fr.Element) *Polynomial {
	out := make([]fr.Element, len(p.coeffs)+1)
	var term fr.Element
	for i, c := range p.coeffs {
		term.Mul(&c, root)
		out[i].Sub(&out[i], &term)
		out[i+1].Add(&out[i+1], &c)
	}
	return &Polynomial{coeffs: canonicalize(out)}
}

// Zero returns the zero polynomial.
func Zero() *Polynomial {
	return &Polynomial{coeffs: []fr.Element{{}}}
}

// One returns the constant polynomial 1.
func One() *Polynomial {
	one := fr.One()
	return &Polynomial{coeffs: []fr.Element{one}}
}

// Degree returns len(coefficients)-1. The zero polynomial has degree 0;
// use IsZero to tell it apart from a nonzero constant.
func (p *Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// IsZero reports whether p is the zero polynomial.
func (p *Polynomial) IsZero() bool {
	return len(p.coeffs) == 1 && p.coeffs[0].IsZero()
}

// Coefficients returns a copy of p's canonical coefficient vector.
func (p *Polynomial) Coefficients() []fr.Element {
	out := make([]fr.Element, len(p.coeffs))
	copy(out, p.coeffs)
	return out
}

// Clone returns an independent copy of p.
func (p *Polynomial) Clone() *Polynomial {
	return NewFromCoefficients(p.coeffs)
}

// Equal reports whether p and q have identical canonical coefficient
// vectors, order included.
func (p *Polynomial) Equal(q *Polynomial) bool {
	return slices.EqualFunc(p.coeffs, q.coeffs, func(a, b fr.Element) bool {
		return a.Equal(&b)
	})
}

// Eval evaluates p at x via Horner's method, highest-degree coefficient
// first.
func (p *Polynomial) Eval(x *fr.Element) fr.Element {
	var acc fr.Element
	acc.Set(&p.coeffs[len(p.coeffs)-1])
	for i := len(p.coeffs) - 2; i >= 0; i-- {
		acc.Mul(&acc, x)
		acc.Add(&acc, &p.coeffs[i])
	}
	return acc
}

func maxLen(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Add returns p + q.
func (p *Polynomial) Add(q *Polynomial) *Polynomial {
	n := maxLen(len(p.coeffs), len(q.coeffs))
	out := make([]fr.Element, n)
	for i := 0; i < n; i++ {
		var a, b fr.Element
		if i < len(p.coeffs) {
			a = p.coeffs[i]
		}
		if i < len(q.coeffs) {
			b = q.coeffs[i]
		}
		out[i].Add(&a, &b)
	}
	return &Polynomial{coeffs: canonicalize(out)}
}

// AddAssign sets p to p + q.
func (p *Polynomial) AddAssign(q *Polynomial) {
	*p = *p.Add(q)
}

// Sub returns p - q.
func (p *Polynomial) Sub(q *Polynomial) *Polynomial {
	n := maxLen(len(p.coeffs), len(q.coeffs))
	out := make([]fr.Element, n)
	for i := 0; i < n; i++ {
		var a, b fr.Element
		if i < len(p.coeffs) {
			a = p.coeffs[i]
		}
		if i < len(q.coeffs) {
			b = q.coeffs[i]
		}
		out[i].Sub(&a, &b)
	}
	return &Polynomial{coeffs: canonicalize(out)}
}

// SubAssign sets p to p - q.
func (p *Polynomial) SubAssign(q *Polynomial) {
	*p = *p.Sub(q)
}

// Neg returns -p.
func (p *Polynomial) Neg() *Polynomial {
	out := make([]fr.Element, len(p.coeffs))
	var zero fr.Element
	for i, c := range p.coeffs {
		out[i].Sub(&zero, &c)
	}
	return &Polynomial{coeffs: canonicalize(out)}
}

// NegAssign sets p to -p.
func (p *Polynomial) NegAssign() {
	*p = *p.Neg()
}

// AddCoefficientAssign adds v to the coefficient at index i, growing p
// with zero-padding if necessary, and re-canonicalizes.
func (p *Polynomial) AddCoefficientAssign(i int, v *fr.Element) {
	if i >= len(p.coeffs) {
		grown := make([]fr.Element, i+1)
		copy(grown, p.coeffs)
		p.coeffs = grown
	}
	p.coeffs[i].Add(&p.coeffs[i], v)
	p.coeffs = canonicalize(p.coeffs)
}

// MulScalar returns k*p.
func (p *Polynomial) MulScalar(k *fr.Element) *Polynomial {
	clone := p.Clone()
	clone.MulScalarAssign(k)
	return clone
}

// MulScalarAssign scales every coefficient of p by k in place. For large
// polynomials the scaling fans out across goroutines via errgroup; the
// result is bit-identical to the sequential computation since each
// coefficient is scaled independently.
func (p *Polynomial) MulScalarAssign(k *fr.Element) {
	if len(p.coeffs) < parallelThreshold {
		for i := range p.coeffs {
			p.coeffs[i].Mul(&p.coeffs[i], k)
		}
	} else {
		numWorkers := 8
		chunk := (len(p.coeffs) + numWorkers - 1) / numWorkers
		var g errgroup.Group
		for w := 0; w < numWorkers; w++ {
			start, end := w*chunk, (w+1)*chunk
			if start >= len(p.coeffs) {
				break
			}
			if end > len(p.coeffs) {
				end = len(p.coeffs)
			}
			g.Go(func() error {
				for i := start; i < end; i++ {
					p.coeffs[i].Mul(&p.coeffs[i], k)
				}
				return nil
			})
		}
		_ = g.Wait()
	}
	p.coeffs = canonicalize(p.coeffs)
}

// MulByVar returns the polynomial obtained by substituting X -> k*X, i.e.
// coefficient i scaled by k^i. Used to implement coset FFT/IFFT shifts.
func (p *Polynomial) MulByVar(k *fr.Element) *Polynomial {
	clone := p.Clone()
	clone.MulByVarAssign(k)
	return clone
}

// MulByVarAssign applies the X -> k*X substitution in place.
func (p *Polynomial) MulByVarAssign(k *fr.Element) {
	pow := fr.One()
	for i := range p.coeffs {
		p.coeffs[i].Mul(&p.coeffs[i], &pow)
		pow.Mul(&pow, k)
	}
	p.coeffs = canonicalize(p.coeffs)
}

// DivRem performs classical polynomial long division, returning (q, r)
// such that p = q*divisor + r with deg(r) < deg(divisor). When divisor
// has a higher degree than p it returns (Zero(), p). A zero divisor
// returns ErrDivisionByZero.
func (p *Polynomial) DivRem(divisor *Polynomial) (quotient, remainder *Polynomial, err error) {
	if divisor.IsZero() {
		return nil, nil, ErrDivisionByZero
	}
	remCoeffs := make([]fr.Element, len(p.coeffs))
	copy(remCoeffs, p.coeffs)

	divDeg := divisor.Degree()
	leadInv := new(fr.Element)
	leadInv.Inverse(&divisor.coeffs[divDeg])

	quotDeg := len(p.coeffs) - 1 - divDeg
	if quotDeg < 0 {
		return Zero(), NewFromCoefficients(remCoeffs), nil
	}
	quotCoeffs := make([]fr.Element, quotDeg+1)

	for shift := quotDeg; shift >= 0; shift-- {
		topIdx := shift + divDeg
		if topIdx >= len(remCoeffs) {
			continue
		}
		if remCoeffs[topIdx].IsZero() {
			continue
		}
		var coef fr.Element
		coef.Mul(&remCoeffs[topIdx], leadInv)
		quotCoeffs[shift] = coef
		for j := 0; j <= divDeg; j++ {
			var term fr.Element
			term.Mul(&coef, &divisor.coeffs[j])
			remCoeffs[shift+j].Sub(&remCoeffs[shift+j], &term)
		}
	}

	return NewFromCoefficients(quotCoeffs), NewFromCoefficients(remCoeffs), nil
}
