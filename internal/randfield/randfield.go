// Package randfield samples BN254 scalar-field elements from an arbitrary
// io.Reader, and offers a deterministic blake2b-seeded reader for
// reproducible test fixtures. Production callers of kzg.Setup are
// expected to pass crypto/rand.Reader or equivalent; the deterministic
// path here exists so tests (the kzg tests seed Setup with it) get the
// same trapdoor on every run without persisting a seed file.
package randfield

import (
	"errors"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"golang.org/x/crypto/blake2b"
)

// ErrShortRead is returned when r cannot supply enough bytes to sample an
// element.
var ErrShortRead = errors.New("randfield: short read from source")

// Sample draws a uniformly random element of F_r from r via rejection
// sampling: read fr.Bytes random bytes as a big-endian integer and, if the
// candidate is not in [0, modulus), discard it and read again, which
// avoids modulo bias.
func Sample(r io.Reader) (fr.Element, error) {
	var out fr.Element
	buf := make([]byte, fr.Bytes)
	modulus := fr.Modulus()
	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			return out, ErrShortRead
		}
		candidate := new(big.Int).SetBytes(buf)
		if candidate.Cmp(modulus) >= 0 {
			continue
		}
		out.SetBigInt(candidate)
		return out, nil
	}
}

// SampleSlice draws n independent elements from r.
func SampleSlice(r io.Reader, n int) ([]fr.Element, error) {
	out := make([]fr.Element, n)
	for i := range out {
		e, err := Sample(r)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

// DeterministicReader returns an io.Reader that produces an unbounded,
// deterministic stream of pseudorandom bytes derived from seed via
// blake2b in counter mode: block i is blake2b-512(seed || i-as-8LE-bytes).
// Two calls with the same seed always produce byte-identical streams,
// so a test fixture derived from it is reproducible across runs.
func DeterministicReader(seed []byte) io.Reader {
	return &ctrReader{seed: append([]byte(nil), seed...)}
}

type ctrReader struct {
	seed    []byte
	counter uint64
	buf     []byte
}

func (c *ctrReader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if len(c.buf) == 0 {
			var ctrBytes [8]byte
			for i := range ctrBytes {
				ctrBytes[i] = byte(c.counter >> (8 * i))
			}
			c.counter++
			block := blake2b.Sum512(append(append([]byte(nil), c.seed...), ctrBytes[:]...))
			c.buf = block[:]
		}
		k := copy(p[n:], c.buf)
		c.buf = c.buf[k:]
		n += k
	}
	return n, nil
}
