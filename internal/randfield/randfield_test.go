package randfield

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeterministicReaderIsReproducible(t *testing.T) {
	seed := []byte("seed-a")
	e1, err := Sample(DeterministicReader(seed))
	require.NoError(t, err)
	e2, err := Sample(DeterministicReader(seed))
	require.NoError(t, err)
	require.True(t, e1.Equal(&e2))
}

func TestDeterministicReaderDiffersAcrossSeeds(t *testing.T) {
	e1, err := Sample(DeterministicReader([]byte("seed-a")))
	require.NoError(t, err)
	e2, err := Sample(DeterministicReader([]byte("seed-b")))
	require.NoError(t, err)
	require.False(t, e1.Equal(&e2))
}

func TestSampleSliceLength(t *testing.T) {
	out, err := SampleSlice(DeterministicReader([]byte("seed-c")), 10)
	require.NoError(t, err)
	require.Len(t, out, 10)
}
