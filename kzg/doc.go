// Package kzg implements a KZG polynomial commitment engine over BN254:
// structured reference string setup, commit, open (prove) and verify, a
// homomorphic commitment algebra shared by commitments and by plain
// polynomials, and the SRS's unchecked wire (de)serialization.
//
// This package builds directly on github.com/consensys/gnark-crypto's
// ecc/bn254 field, group and pairing primitives; it never reimplements
// field arithmetic, group law, or pairings itself.
package kzg
