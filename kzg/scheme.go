package kzg

import (
	"math/big"
	"time"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/mjzk/kzg/internal/gpuexp"
	"github.com/mjzk/kzg/internal/logger"
	"github.com/mjzk/kzg/poly"
)

// Commit computes the KZG commitment to p: the multi-scalar multiplication
// of p's coefficients against the matching prefix of srs.Tau1. p's degree
// must not exceed srs.MaxDegree().
func Commit(p *poly.Polynomial, srs *SRS) (Commitment, error) {
	start := time.Now()
	coeffs := p.Coefficients()
	if len(coeffs) > len(srs.Tau1) {
		return Commitment{}, ErrDegreeTooLarge
	}
	points := srs.Tau1[:len(coeffs)]

	result, handled, err := gpuexp.MultiExpG1(points, coeffs)
	if err != nil {
		return Commitment{}, err
	}
	if !handled {
		var acc bn254.G1Affine
		if _, err := acc.MultiExp(points, coeffs, ecc.MultiExpConfig{ScalarsMont: true}); err != nil {
			return Commitment{}, err
		}
		result = acc
	}

	logger.Logger().Debug().
		Int("degree", p.Degree()).
		Dur("took", time.Since(start)).
		Msg("kzg: commit")

	return Commitment(result), nil
}

// Eval evaluates p at z. It is a thin, explicit wrapper over
// poly.Polynomial.Eval so the scheme's public surface names every
// operation spec.md describes, even the ones that pass straight through
// to the polynomial algebra layer.
func Eval(p *poly.Polynomial, z *fr.Element) fr.Element {
	return p.Eval(z)
}

// ApplyBlindFactors blinds commitment c with the given blinding factors so
// that the blinded polynomial's evaluations are unchanged on the subgroup
// of zeroingDegree-th roots of unity: for each blind b_i, it adds
// b_i*Tau1[i] and subtracts b_i*Tau1[zeroingDegree+i], i.e. it commits to
// the addition of b_i*X^i*(1 - X^zeroingDegree), a polynomial that
// vanishes on that subgroup. zeroingDegree+len(blinds)-1 must not exceed
// srs.MaxDegree().
func ApplyBlindFactors(c Commitment, blinds []fr.Element, zeroingDegree int, srs *SRS) (Commitment, error) {
	if zeroingDegree+len(blinds)-1 >= len(srs.Tau1) {
		return Commitment{}, ErrDegreeTooLarge
	}

	acc := c
	for i := range blinds {
		b := blinds[i]

		var bBig big.Int
		b.BigInt(&bBig)

		var lowTerm bn254.G1Affine
		lowTerm.ScalarMultiplication(&srs.Tau1[i], &bBig)

		var highTerm bn254.G1Affine
		highTerm.ScalarMultiplication(&srs.Tau1[zeroingDegree+i], &bBig)

		accPoint := acc.Point()
		accPoint.Add(&accPoint, &lowTerm)
		accPoint.Sub(&accPoint, &highTerm)
		acc = Commitment(accPoint)
	}
	return acc, nil
}

// Prove produces an opening proof that p(z) = p.Eval(z), valid against an
// SRS supporting up to maxDegree. It divides p - y by (X - z); a nonzero
// remainder (which cannot happen if y really is p.Eval(z)) yields
// ErrProveEvalFailed.
func Prove(p *poly.Polynomial, z *fr.Element, maxDegree int, srs *SRS) (OpeningProof, error) {
	start := time.Now()
	if p.Degree() > maxDegree || maxDegree > srs.MaxDegree() {
		return OpeningProof{}, ErrDegreeTooLarge
	}

	y := p.Eval(z)
	shifted := p.Clone()
	shifted.AddCoefficientAssign(0, negate(&y))

	vanishing := poly.NewFromRoots([]fr.Element{*z})
	quotient, remainder, err := shifted.DivRem(vanishing)
	if err != nil {
		return OpeningProof{}, err
	}
	if !remainder.IsZero() {
		return OpeningProof{}, ErrProveEvalFailed
	}

	proof, err := Commit(quotient, srs)
	if err != nil {
		return OpeningProof{}, err
	}

	logger.Logger().Debug().
		Int("degree", p.Degree()).
		Dur("took", time.Since(start)).
		Msg("kzg: prove")

	return proof, nil
}

// Verify checks that commitment c opens to y at point z via proof, using
// the single pairing equation e(C - y*G1, G2) = e(proof, Tau2[1] - z*Tau2[0]).
// srs may be a full or a verifier-only SRS; Verify only ever reads
// Tau1[0] and Tau2.
func Verify(c Commitment, z, y *fr.Element, proof OpeningProof, srs *SRS) error {
	start := time.Now()

	lhs := c.Point()
	if !y.IsZero() {
		var yBig big.Int
		y.BigInt(&yBig)
		var yG1 bn254.G1Affine
		yG1.ScalarMultiplication(&srs.Tau1[0], &yBig)
		lhs.Sub(&lhs, &yG1)
	}

	var zBig big.Int
	z.BigInt(&zBig)
	var zTau2_0 bn254.G2Affine
	zTau2_0.ScalarMultiplication(&srs.Tau2[0], &zBig)
	rhsG2 := srs.Tau2[1]
	rhsG2.Sub(&rhsG2, &zTau2_0)

	proofPoint := proof.Point()
	var negProof bn254.G1Affine
	negProof.Neg(&proofPoint)

	ok, err := bn254.PairingCheck(
		[]bn254.G1Affine{lhs, negProof},
		[]bn254.G2Affine{srs.Tau2[0], rhsG2},
	)
	if err != nil {
		return err
	}

	logger.Logger().Debug().
		Dur("took", time.Since(start)).
		Bool("ok", ok).
		Msg("kzg: verify")

	if !ok {
		return ErrVerifyFailed
	}
	return nil
}

func negate(x *fr.Element) *fr.Element {
	var out fr.Element
	var zero fr.Element
	out.Sub(&zero, x)
	return &out
}
