package kzg

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"

	"github.com/mjzk/kzg/poly"
)

func TestCommitmentHomomorphicGroupLaws(t *testing.T) {
	srs, err := Setup(4, testRNG(t))
	require.NoError(t, err)

	p := poly.NewFromCoefficients([]fr.Element{feFromInt(3), feFromInt(5)})
	c, err := Commit(p, srs)
	require.NoError(t, err)

	var a Commitment = c
	identity := a.Identity().(*Commitment)

	sum := a.Add(identity).(*Commitment)
	require.Equal(t, a.Bytes(), sum.Bytes())

	diff := a.Sub(&a).(*Commitment)
	require.Equal(t, identity.Bytes(), diff.Bytes())
}

func TestPolynomialElementPanicsOnBaseAndBytes(t *testing.T) {
	p := PolynomialElement{poly.One()}
	require.Panics(t, func() { p.Base() })
	require.Panics(t, func() { p.Identity() })
	require.Panics(t, func() { p.Bytes() })
}

func TestPolynomialElementAddMatchesPolynomialAdd(t *testing.T) {
	a := PolynomialElement{poly.NewFromCoefficients([]fr.Element{feFromInt(1), feFromInt(2)})}
	b := PolynomialElement{poly.NewFromCoefficients([]fr.Element{feFromInt(3), feFromInt(4)})}

	sum := a.Add(b).(PolynomialElement)
	want := a.Polynomial.Add(b.Polynomial)
	require.True(t, want.Equal(sum.Polynomial))
}
