package poly

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// frMultiplicativeGenerator is a generator of F_r^*, the BN254 scalar
// field's multiplicative group; 5 is the standard choice used throughout
// the gnark-crypto curve family for deriving roots of unity and coset
// shifts.
var frMultiplicativeGenerator = func() fr.Element {
	var g fr.Element
	g.SetUint64(5)
	return g
}()

// Domain holds the roots of unity and derived constants needed to move a
// Polynomial between coefficient and evaluation representation at a fixed
// size N, where N is either a power of two or three times a power of two
// (gnark-crypto's own fft.Domain supports only the former; N = 3*2^k is
// handled by this package's own mixed-radix step, see fft.go).
type Domain struct {
	Size          uint64
	Generator     fr.Element // primitive Size-th root of unity
	GeneratorInv  fr.Element
	SizeInv       fr.Element // Size^-1 mod r
	CosetShift    fr.Element // generator of F_r^*, used by coset FFT/IFFT
	CosetShiftInv fr.Element
}

// NewDomain builds a Domain of the given size, which must be a power of
// two or three times a power of two and must divide r-1 (true for every
// such size up to BN254's 2-adicity of 28, times an optional factor of 3,
// since 3 | r-1 as well).
func NewDomain(size uint64) (*Domain, error) {
	if size == 0 || !isSupportedSize(size) {
		return nil, ErrUnsupportedDomainSize
	}

	rMinusOne := new(big.Int).Sub(fr.Modulus(), big.NewInt(1))
	sizeBig := new(big.Int).SetUint64(size)
	exp := new(big.Int)
	rem := new(big.Int)
	exp.DivMod(rMinusOne, sizeBig, rem)
	if rem.Sign() != 0 {
		return nil, ErrUnsupportedDomainSize
	}

	var gen fr.Element
	gen.Exp(frMultiplicativeGenerator, exp)

	var genInv fr.Element
	genInv.Inverse(&gen)

	var sizeInv fr.Element
	sizeInv.SetUint64(size)
	sizeInv.Inverse(&sizeInv)

	var cosetInv fr.Element
	cosetInv.Inverse(&frMultiplicativeGenerator)

	return &Domain{
		Size:          size,
		Generator:     gen,
		GeneratorInv:  genInv,
		SizeInv:       sizeInv,
		CosetShift:    frMultiplicativeGenerator,
		CosetShiftInv: cosetInv,
	}, nil
}

func isSupportedSize(n uint64) bool {
	if isPowerOfTwo(n) {
		return true
	}
	if n%3 == 0 && isPowerOfTwo(n/3) {
		return true
	}
	return false
}

func isPowerOfTwo(n uint64) bool {
	return n != 0 && n&(n-1) == 0
}

// padCoefficients pads or truncates coefficients to exactly
// d.Size entries, for FFT's input.
func (d *Domain) padCoefficients(c []fr.Element) []fr.Element {
	out := make([]fr.Element, d.Size)
	copy(out, c)
	return out
}

// FFT evaluates p at every Size-th root of unity, returning the
// evaluation vector ordered evals[j] = p(Generator^j). p's coefficients
// are zero-padded (or must already fit) up to d.Size.
func (d *Domain) FFT(p *Polynomial) []fr.Element {
	coeffs := d.padCoefficients(p.coeffs)
	return transform(coeffs, d.Generator)
}

// IFFT recovers the unique polynomial of degree < d.Size whose evaluations
// at the Size-th roots of unity (in the same order as FFT produces) are
// evals, requiring len(evals) == d.Size.
func (d *Domain) IFFT(evals []fr.Element) (*Polynomial, error) {
	if uint64(len(evals)) != d.Size {
		return nil, ErrSizeMismatch
	}
	coeffs := transform(evals, d.GeneratorInv)
	for i := range coeffs {
		coeffs[i].Mul(&coeffs[i], &d.SizeInv)
	}
	return NewFromCoefficients(coeffs), nil
}

// CosetFFT evaluates p over the coset CosetShift * <Generator>, i.e. at
// points CosetShift * Generator^j, by substituting X -> CosetShift*X
// before transforming.
func (d *Domain) CosetFFT(p *Polynomial) []fr.Element {
	shifted := p.MulByVar(&d.CosetShift)
	return d.FFT(shifted)
}

// CosetIFFT is the inverse of CosetFFT.
func (d *Domain) CosetIFFT(evals []fr.Element) (*Polynomial, error) {
	p, err := d.IFFT(evals)
	if err != nil {
		return nil, err
	}
	p.MulByVarAssign(&d.CosetShiftInv)
	return p, nil
}
