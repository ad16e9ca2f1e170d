// Package gpuexp wires an optional GPU-accelerated multi-scalar
// multiplication backend behind the "icicle" build tag. Commit and Prove
// call into gpuexp.MultiExpG1 unconditionally; this file's build-excluded
// counterpart (gpuexp_icicle.go) supplies the real implementation, while
// this default build reports the backend unavailable so callers fall back
// to gnark-crypto's CPU MultiExp.
//go:build !icicle

package gpuexp

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Available reports whether a GPU backend was compiled in.
func Available() bool { return false }

// MultiExpG1 is a no-op on the default build: it always reports handled=false
// so the caller falls back to the CPU path.
func MultiExpG1(points []bn254.G1Affine, scalars []fr.Element) (result bn254.G1Affine, handled bool, err error) {
	return bn254.G1Affine{}, false, nil
}
