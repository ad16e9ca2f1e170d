package kzg

import (
	"encoding/binary"
	"io"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/icza/bitio"
)

// WriteUncheckedTo writes srs in the "unchecked" wire format: two
// little-endian u32 lengths (len(Tau1), always 2 for Tau2) followed by
// the concatenated uncompressed encoding of every Tau1 point and then
// both Tau2 points. The format carries no version tag and no integrity
// check of its own.
func (srs *SRS) WriteUncheckedTo(w io.Writer) (int64, error) {
	bw := bitio.NewWriter(w)
	var written int64

	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(srs.Tau1)))
	if _, err := bw.Write(lenBuf[:]); err != nil {
		return written, err
	}
	written += 4

	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(srs.Tau2)))
	if _, err := bw.Write(lenBuf[:]); err != nil {
		return written, err
	}
	written += 4

	for i := range srs.Tau1 {
		raw := srs.Tau1[i].RawBytes()
		if _, err := bw.Write(raw[:]); err != nil {
			return written, err
		}
		written += int64(len(raw))
	}
	for i := range srs.Tau2 {
		raw := srs.Tau2[i].RawBytes()
		if _, err := bw.Write(raw[:]); err != nil {
			return written, err
		}
		written += int64(len(raw))
	}

	if err := bw.Close(); err != nil {
		return written, err
	}
	return written, nil
}

// UnsafeReadSRSFrom reads back an SRS written by WriteUncheckedTo. Each
// point is decoded with SetBytes, which rejects a point that is off the
// curve or outside the prime-order subgroup; nothing checks that the
// points are consecutive powers of one trapdoor, so the SRS itself is
// trusted as read.
func UnsafeReadSRSFrom(r io.Reader) (*SRS, int64, error) {
	br := bitio.NewReader(r)
	var readBytes int64

	var lenBuf [4]byte
	if _, err := io.ReadFull(br, lenBuf[:]); err != nil {
		return nil, readBytes, ErrDeserialization
	}
	readBytes += 4
	nTau1 := binary.LittleEndian.Uint32(lenBuf[:])

	if _, err := io.ReadFull(br, lenBuf[:]); err != nil {
		return nil, readBytes, ErrDeserialization
	}
	readBytes += 4
	nTau2 := binary.LittleEndian.Uint32(lenBuf[:])
	if nTau2 != 2 {
		return nil, readBytes, ErrDeserialization
	}

	tau1 := make([]bn254.G1Affine, nTau1)
	g1Buf := make([]byte, bn254.SizeOfG1AffineUncompressed)
	for i := range tau1 {
		if _, err := io.ReadFull(br, g1Buf); err != nil {
			return nil, readBytes, ErrDeserialization
		}
		readBytes += int64(len(g1Buf))
		if _, err := tau1[i].SetBytes(g1Buf); err != nil {
			return nil, readBytes, ErrDeserialization
		}
	}

	var tau2 [2]bn254.G2Affine
	g2Buf := make([]byte, bn254.SizeOfG2AffineUncompressed)
	for i := range tau2 {
		if _, err := io.ReadFull(br, g2Buf); err != nil {
			return nil, readBytes, ErrDeserialization
		}
		readBytes += int64(len(g2Buf))
		if _, err := tau2[i].SetBytes(g2Buf); err != nil {
			return nil, readBytes, ErrDeserialization
		}
	}

	return &SRS{Tau1: tau1, Tau2: tau2}, readBytes, nil
}

// WriteCompressedTo writes c in the canonical compressed G1 encoding —
// the same format used by Bytes(), exposed here as an io.Writer-facing
// method for symmetry with WriteUncheckedTo.
func (c *Commitment) WriteCompressedTo(w io.Writer) (int64, error) {
	b := c.Bytes()
	n, err := w.Write(b)
	return int64(n), err
}

// ReadCompressedFrom reads a commitment (or opening proof, same
// representation) from its canonical compressed G1 encoding, performing
// full on-curve and subgroup validation through SetBytes.
func ReadCompressedFrom(r io.Reader) (Commitment, int64, error) {
	buf := make([]byte, bn254.SizeOfG1AffineCompressed)
	if _, err := io.ReadFull(r, buf); err != nil {
		return Commitment{}, 0, ErrDeserialization
	}
	var p bn254.G1Affine
	if _, err := p.SetBytes(buf); err != nil {
		return Commitment{}, int64(len(buf)), ErrDeserialization
	}
	return Commitment(p), int64(len(buf)), nil
}
