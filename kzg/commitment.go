package kzg

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/mjzk/kzg/poly"
)

// HomomorphicElement is the capability shared by a KZG commitment and by
// a plain polynomial under coefficient-wise scaling: both form an abelian
// group under Add with a compatible scalar action under Mul. Base and
// Identity are the group's distinguished generator and neutral element;
// Polynomial has no canonical generator under coefficient scaling and
// panics if asked for one, mirroring the narrower, group-only algebra a
// bare polynomial actually carries.
type HomomorphicElement interface {
	Base() HomomorphicElement
	Identity() HomomorphicElement
	Add(other HomomorphicElement) HomomorphicElement
	AddAssign(other HomomorphicElement)
	Sub(other HomomorphicElement) HomomorphicElement
	SubAssign(other HomomorphicElement)
	Mul(scalar *fr.Element) HomomorphicElement
	MulAssign(scalar *fr.Element)
	Bytes() []byte
}

// Commitment is a KZG commitment: a single G1 point. OpeningProof has the
// identical representation (both are bare G1 elements; only their role in
// the protocol differs), so it is defined as an alias rather than a
// distinct type.
type Commitment bn254.G1Affine

// OpeningProof is the quotient commitment produced by Prove.
type OpeningProof = Commitment

// Point returns the underlying G1 affine point.
func (c *Commitment) Point() bn254.G1Affine {
	return bn254.G1Affine(*c)
}

// Base returns the G1 generator as a Commitment.
func (c *Commitment) Base() HomomorphicElement {
	_, _, g1Aff, _ := bn254.Generators()
	out := Commitment(g1Aff)
	return &out
}

// Identity returns the G1 identity (point at infinity) as a Commitment.
func (c *Commitment) Identity() HomomorphicElement {
	var id bn254.G1Affine
	out := Commitment(id)
	return &out
}

// Add returns c + other.
func (c *Commitment) Add(other HomomorphicElement) HomomorphicElement {
	o := other.(*Commitment)
	var out bn254.G1Affine
	cp, op := c.Point(), o.Point()
	out.Add(&cp, &op)
	result := Commitment(out)
	return &result
}

// AddAssign sets c to c + other.
func (c *Commitment) AddAssign(other HomomorphicElement) {
	o := other.(*Commitment)
	var out bn254.G1Affine
	cp, op := c.Point(), o.Point()
	out.Add(&cp, &op)
	*c = Commitment(out)
}

// Sub returns c - other.
func (c *Commitment) Sub(other HomomorphicElement) HomomorphicElement {
	o := other.(*Commitment)
	var out bn254.G1Affine
	cp, op := c.Point(), o.Point()
	out.Sub(&cp, &op)
	result := Commitment(out)
	return &result
}

// SubAssign sets c to c - other.
func (c *Commitment) SubAssign(other HomomorphicElement) {
	o := other.(*Commitment)
	var out bn254.G1Affine
	cp, op := c.Point(), o.Point()
	out.Sub(&cp, &op)
	*c = Commitment(out)
}

// Mul returns scalar*c.
func (c *Commitment) Mul(scalar *fr.Element) HomomorphicElement {
	var out bn254.G1Affine
	cp := c.Point()
	var scalarBig big.Int
	scalar.BigInt(&scalarBig)
	out.ScalarMultiplication(&cp, &scalarBig)
	result := Commitment(out)
	return &result
}

// MulAssign sets c to scalar*c.
func (c *Commitment) MulAssign(scalar *fr.Element) {
	var out bn254.G1Affine
	cp := c.Point()
	var scalarBig big.Int
	scalar.BigInt(&scalarBig)
	out.ScalarMultiplication(&cp, &scalarBig)
	*c = Commitment(out)
}

// Bytes returns the canonical compressed G1 encoding.
func (c *Commitment) Bytes() []byte {
	p := c.Point()
	b := p.Bytes()
	return b[:]
}

// PolynomialElement adapts a *poly.Polynomial to HomomorphicElement under
// coefficient-wise scaling. It has no canonical base or generator under
// that action (only the group action on G1 points does), so Base,
// Identity and Bytes are intentionally unimplemented and panic, matching
// the narrower algebra a bare polynomial actually carries.
type PolynomialElement struct {
	*poly.Polynomial
}

func (p PolynomialElement) Base() HomomorphicElement {
	panic("kzg: Polynomial has no canonical base element under coefficient scaling")
}

func (p PolynomialElement) Identity() HomomorphicElement {
	panic("kzg: Polynomial has no canonical identity distinct from Zero()")
}

func (p PolynomialElement) Add(other HomomorphicElement) HomomorphicElement {
	o := other.(PolynomialElement)
	return PolynomialElement{p.Polynomial.Add(o.Polynomial)}
}

func (p PolynomialElement) AddAssign(other HomomorphicElement) {
	o := other.(PolynomialElement)
	p.Polynomial.AddAssign(o.Polynomial)
}

func (p PolynomialElement) Sub(other HomomorphicElement) HomomorphicElement {
	o := other.(PolynomialElement)
	return PolynomialElement{p.Polynomial.Sub(o.Polynomial)}
}

func (p PolynomialElement) SubAssign(other HomomorphicElement) {
	o := other.(PolynomialElement)
	p.Polynomial.SubAssign(o.Polynomial)
}

func (p PolynomialElement) Mul(scalar *fr.Element) HomomorphicElement {
	return PolynomialElement{p.Polynomial.MulScalar(scalar)}
}

func (p PolynomialElement) MulAssign(scalar *fr.Element) {
	p.Polynomial.MulScalarAssign(scalar)
}

func (p PolynomialElement) Bytes() []byte {
	panic("kzg: Polynomial has no wire encoding")
}
