package poly

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func feFromInt(v int64) fr.Element {
	var e fr.Element
	e.SetInt64(v)
	return e
}

func TestZeroPolynomialCanonicalForm(t *testing.T) {
	z := Zero()
	require.True(t, z.IsZero())
	require.Equal(t, 0, z.Degree())
	require.Len(t, z.Coefficients(), 1)
}

func TestCanonicalizationTrimsTrailingZeros(t *testing.T) {
	coeffs := []fr.Element{feFromInt(1), feFromInt(2), {}, {}}
	p := NewFromCoefficients(coeffs)
	require.Equal(t, 1, p.Degree())
	require.Len(t, p.Coefficients(), 2)
}

func TestNewFromRootsMatchesEvalZero(t *testing.T) {
	roots := []fr.Element{feFromInt(1), feFromInt(2), feFromInt(3)}
	p := NewFromRoots(roots)
	require.Equal(t, len(roots), p.Degree())
	for _, r := range roots {
		r := r
		y := p.Eval(&r)
		require.True(t, y.IsZero())
	}
}

func TestEvalConstant(t *testing.T) {
	p := NewFromCoefficients([]fr.Element{feFromInt(7)})
	x := feFromInt(42)
	y := p.Eval(&x)
	require.True(t, y.Equal(&p.coeffs[0]))
}

func TestEvalLinear(t *testing.T) {
	// p(X) = 3 + 2X, p(5) = 13
	p := NewFromCoefficients([]fr.Element{feFromInt(3), feFromInt(2)})
	x := feFromInt(5)
	y := p.Eval(&x)
	want := feFromInt(13)
	require.True(t, y.Equal(&want))
}

func TestAddSubRoundTrip(t *testing.T) {
	a := NewFromCoefficients([]fr.Element{feFromInt(1), feFromInt(2), feFromInt(3)})
	b := NewFromCoefficients([]fr.Element{feFromInt(5), feFromInt(-1)})
	sum := a.Add(b)
	back := sum.Sub(b)
	require.True(t, a.Equal(back))
}

func TestNegIsAdditiveInverse(t *testing.T) {
	a := NewFromCoefficients([]fr.Element{feFromInt(9), feFromInt(-3)})
	sum := a.Add(a.Neg())
	require.True(t, sum.IsZero())
}

func TestMulScalarZeroGivesZeroPolynomial(t *testing.T) {
	a := NewFromCoefficients([]fr.Element{feFromInt(1), feFromInt(2), feFromInt(3)})
	var zero fr.Element
	got := a.MulScalar(&zero)
	require.True(t, got.IsZero())
}

func TestMulByVarEvalHomomorphism(t *testing.T) {
	// p(k*x) == p.MulByVar(k).Eval(x)
	a := NewFromCoefficients([]fr.Element{feFromInt(1), feFromInt(2), feFromInt(3)})
	k := feFromInt(4)
	shifted := a.MulByVar(&k)
	x := feFromInt(7)
	var kx fr.Element
	kx.Mul(&k, &x)
	want := a.Eval(&kx)
	got := shifted.Eval(&x)
	require.True(t, got.Equal(&want))
}

func TestDivRemIdentity(t *testing.T) {
	a := NewFromCoefficients([]fr.Element{feFromInt(10), feFromInt(-7), feFromInt(3), feFromInt(1)})
	b := NewFromCoefficients([]fr.Element{feFromInt(-2), feFromInt(1)})
	q, r, err := a.DivRem(b)
	require.NoError(t, err)
	require.True(t, r.Degree() < b.Degree() || r.IsZero())

	reconstructed := q.mulThenAdd(b, r)
	require.True(t, a.Equal(reconstructed))
}

// mulThenAdd is a tiny test-only helper computing q*b + r by schoolbook
// convolution, an oracle independent of DivRem (mulLinear only multiplies
// by a linear factor, so it is not general multiplication).
func (q *Polynomial) mulThenAdd(b, r *Polynomial) *Polynomial {
	out := make([]fr.Element, len(q.coeffs)+len(b.coeffs)-1)
	for i, qc := range q.coeffs {
		for j, bc := range b.coeffs {
			var term fr.Element
			term.Mul(&qc, &bc)
			out[i+j].Add(&out[i+j], &term)
		}
	}
	prod := NewFromCoefficients(out)
	return prod.Add(r)
}

func TestDivRemByZeroDivisorErrors(t *testing.T) {
	a := NewFromCoefficients([]fr.Element{feFromInt(1)})
	_, _, err := a.DivRem(Zero())
	require.ErrorIs(t, err, ErrDivisionByZero)
}

func TestPropertyCanonicalizationAndEvalHorner(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("evaluating the zero polynomial anywhere gives zero", prop.ForAll(
		func(xv int64) bool {
			x := feFromInt(xv)
			y := Zero().Eval(&x)
			return y.IsZero()
		},
		gen.Int64Range(-1000, 1000),
	))

	properties.Property("add then sub is identity", prop.ForAll(
		func(a, b int64) bool {
			pa := NewFromCoefficients([]fr.Element{feFromInt(a)})
			pb := NewFromCoefficients([]fr.Element{feFromInt(b)})
			back := pa.Add(pb).Sub(pb)
			return back.Coefficients()[0].Equal(&pa.coeffs[0])
		},
		gen.Int64Range(-10000, 10000),
		gen.Int64Range(-10000, 10000),
	))

	properties.TestingRun(t)
}
