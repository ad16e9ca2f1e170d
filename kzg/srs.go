package kzg

import (
	"io"
	"math/big"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/fxamacker/cbor/v2"

	"github.com/mjzk/kzg/internal/fmtver"
	"github.com/mjzk/kzg/internal/logger"
	"github.com/mjzk/kzg/internal/randfield"
)

// SRS is the structured reference string: powers of a toxic-waste scalar
// s in G1 up to the supported maximum degree, and the first two powers of
// s in G2 (needed by Verify's pairing equation). A verifier-only SRS
// (produced by ShrinkToVerifierOnly) carries a single G1 element at
// Tau1[0], the generator, and is otherwise identical.
type SRS struct {
	Tau1 []bn254.G1Affine
	Tau2 [2]bn254.G2Affine
}

// Setup generates an SRS supporting polynomials up to maxDegree, sampling
// the trapdoor scalar s from rng. This is a test-only helper: a real
// deployment derives its SRS from a multi-party ceremony, never from a
// single party's RNG, exactly as in the KZG scheme this package
// implements.
func Setup(maxDegree int, rng io.Reader) (*SRS, error) {
	start := time.Now()
	if maxDegree < 0 {
		return nil, ErrMinSRSSize
	}

	s, err := randfield.Sample(rng)
	if err != nil {
		return nil, err
	}

	_, _, g1Gen, g2Gen := bn254.Generators()

	tau1 := make([]bn254.G1Affine, maxDegree+1)
	sPow := fr.One()
	for i := 0; i <= maxDegree; i++ {
		var sPowBig big.Int
		sPow.BigInt(&sPowBig)
		tau1[i].ScalarMultiplication(&g1Gen, &sPowBig)
		sPow.Mul(&sPow, &s)
	}

	var tau2 [2]bn254.G2Affine
	tau2[0] = g2Gen
	var sBig big.Int
	s.BigInt(&sBig)
	tau2[1].ScalarMultiplication(&g2Gen, &sBig)

	logger.Logger().Debug().
		Int("maxDegree", maxDegree).
		Dur("took", time.Since(start)).
		Msg("kzg: srs setup")

	return &SRS{Tau1: tau1, Tau2: tau2}, nil
}

// MaxDegree returns the highest polynomial degree this SRS can commit to
// and open.
func (srs *SRS) MaxDegree() int {
	return len(srs.Tau1) - 1
}

// IsVerifierOnly reports whether this SRS has been shrunk to verifier-only
// form (a single G1 element).
func (srs *SRS) IsVerifierOnly() bool {
	return len(srs.Tau1) == 1
}

// ShrinkToVerifierOnly returns a new SRS retaining only what Verify needs:
// the G1 generator (Tau1[0]) and both G2 elements. The original SRS (and
// the trapdoor it was built from) is left untouched; this does not scrub
// anything, it merely stops carrying the G1 powers a verifier never uses.
func (srs *SRS) ShrinkToVerifierOnly() *SRS {
	return &SRS{
		Tau1: []bn254.G1Affine{srs.Tau1[0]},
		Tau2: srs.Tau2,
	}
}

// srsDebugSummary is the shape written by DebugSummary; a human/tooling
// facing introspection dump, never the consensus-critical wire format
// (see serialize.go for that).
type srsDebugSummary struct {
	FormatVersion string `cbor:"format_version"`
	MaxDegree     int    `cbor:"max_degree"`
	VerifierOnly  bool   `cbor:"verifier_only"`
}

// DebugSummary returns a small CBOR-encoded snapshot of this SRS's shape
// (degree and verifier-only-ness), for logging/debugging. It carries no
// group elements and is not a substitute for WriteUncheckedTo.
func (srs *SRS) DebugSummary() ([]byte, error) {
	summary := srsDebugSummary{
		FormatVersion: fmtver.DebugSummaryFormat.String(),
		MaxDegree:     srs.MaxDegree(),
		VerifierOnly:  srs.IsVerifierOnly(),
	}
	return cbor.Marshal(summary)
}
