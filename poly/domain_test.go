package poly

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"
)

func TestNewDomainRejectsUnsupportedSize(t *testing.T) {
	_, err := NewDomain(5)
	require.ErrorIs(t, err, ErrUnsupportedDomainSize)
}

func TestFFTIFFTRoundTripRadix2(t *testing.T) {
	for _, n := range []uint64{1, 2, 4, 8, 16, 32} {
		n := n
		t.Run("", func(t *testing.T) {
			d, err := NewDomain(n)
			require.NoError(t, err)

			coeffs := make([]fr.Element, n)
			for i := range coeffs {
				coeffs[i] = feFromInt(int64(i + 1))
			}
			p := NewFromCoefficients(coeffs)

			evals := d.FFT(p)
			require.Len(t, evals, int(n))

			back, err := d.IFFT(evals)
			require.NoError(t, err)
			require.True(t, p.Equal(back))
		})
	}
}

func TestFFTIFFTRoundTripMixedRadixThree(t *testing.T) {
	for _, n := range []uint64{3, 6, 12, 48} {
		n := n
		t.Run("", func(t *testing.T) {
			d, err := NewDomain(n)
			require.NoError(t, err)

			coeffs := make([]fr.Element, n)
			for i := range coeffs {
				coeffs[i] = feFromInt(int64(2*i + 1))
			}
			p := NewFromCoefficients(coeffs)

			evals := d.FFT(p)
			back, err := d.IFFT(evals)
			require.NoError(t, err)
			require.True(t, p.Equal(back))
		})
	}
}

func TestFFTMatchesDirectEvaluation(t *testing.T) {
	d, err := NewDomain(8)
	require.NoError(t, err)
	coeffs := make([]fr.Element, 8)
	for i := range coeffs {
		coeffs[i] = feFromInt(int64(i))
	}
	p := NewFromCoefficients(coeffs)
	evals := d.FFT(p)

	pow := fr.One()
	for j := 0; j < 8; j++ {
		want := p.Eval(&pow)
		require.True(t, evals[j].Equal(&want), "mismatch at root index %d", j)
		pow.Mul(&pow, &d.Generator)
	}
}

func TestCosetFFTIFFTRoundTrip(t *testing.T) {
	d, err := NewDomain(16)
	require.NoError(t, err)
	coeffs := make([]fr.Element, 16)
	for i := range coeffs {
		coeffs[i] = feFromInt(int64(i * i))
	}
	p := NewFromCoefficients(coeffs)

	evals := d.CosetFFT(p)
	back, err := d.CosetIFFT(evals)
	require.NoError(t, err)
	require.True(t, p.Equal(back))
}
