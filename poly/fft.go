package poly

import (
	"math/big"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// transform computes the discrete Fourier transform of a over the
// multiplicative subgroup generated by root, where root must be a
// primitive len(a)-th root of unity. len(a) must be a power of two or
// three times a power of two; NewDomain enforces this on construction, so
// any size reaching this function is one we know how to decompose.
func transform(a []fr.Element, root fr.Element) []fr.Element {
	n := len(a)
	out := make([]fr.Element, n)
	copy(out, a)

	if isPowerOfTwo(uint64(n)) {
		fftRadix2InPlace(out, root)
		return out
	}

	// n = 3*m, m a power of two: decimate into three subsequences of
	// stride 3, transform each at the m-th-root level, then combine with
	// the standard composite Cooley-Tukey recombination formula.
	m := n / 3
	var subRoot fr.Element
	subRoot.Exp(root, big.NewInt(3))

	sub := make([][]fr.Element, 3)
	for q := 0; q < 3; q++ {
		s := make([]fr.Element, m)
		for i := 0; i < m; i++ {
			s[i] = a[q+3*i]
		}
		sub[q] = transform(s, subRoot)
	}

	for k := 0; k < n; k++ {
		var acc fr.Element
		var rootPowK fr.Element
		rootPowK.Exp(root, big.NewInt(int64(k)))
		var wqk fr.Element
		wqk.SetOne()
		for q := 0; q < 3; q++ {
			var term fr.Element
			term.Mul(&wqk, &sub[q][k%m])
			acc.Add(&acc, &term)
			wqk.Mul(&wqk, &rootPowK)
		}
		out[k] = acc
	}
	return out
}

// fftRadix2InPlace performs an iterative decimation-in-time Cooley-Tukey
// FFT of power-of-two length, where root is a primitive len(a)-th root of
// unity.
func fftRadix2InPlace(a []fr.Element, root fr.Element) {
	n := len(a)
	bitReversalPermute(a)

	for size := 2; size <= n; size <<= 1 {
		half := size / 2
		var w fr.Element
		w.Exp(root, big.NewInt(int64(n/size)))
		for start := 0; start < n; start += size {
			var wPow fr.Element
			wPow.SetOne()
			for k := 0; k < half; k++ {
				var t fr.Element
				t.Mul(&wPow, &a[start+k+half])
				u := a[start+k]
				a[start+k].Add(&u, &t)
				a[start+k+half].Sub(&u, &t)
				wPow.Mul(&wPow, &w)
			}
		}
	}
}

// bitReversalPermute swaps a[i] and a[j] wherever j is the bit-reversal
// of i, using a bitset to avoid undoing a swap already performed.
func bitReversalPermute(a []fr.Element) {
	n := len(a)
	bits := 0
	for 1<<bits < n {
		bits++
	}
	done := bitset.New(uint(n))
	for i := 0; i < n; i++ {
		if done.Test(uint(i)) {
			continue
		}
		j := reverseBits(uint(i), bits)
		a[i], a[j] = a[j], a[i]
		done.Set(uint(i))
		done.Set(uint(j))
	}
}

func reverseBits(x uint, bits int) uint {
	var r uint
	for i := 0; i < bits; i++ {
		r <<= 1
		r |= x & 1
		x >>= 1
	}
	return r
}
