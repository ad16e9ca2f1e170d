package kzg

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestSetupRejectsNegativeDegree(t *testing.T) {
	_, err := Setup(-1, testRNG(t))
	require.ErrorIs(t, err, ErrMinSRSSize)
}

func TestSetupZeroDegreeProducesSinglePoint(t *testing.T) {
	srs, err := Setup(0, testRNG(t))
	require.NoError(t, err)
	require.Equal(t, 0, srs.MaxDegree())
	require.Len(t, srs.Tau1, 1)
}

func TestDebugSummaryRoundTripsFields(t *testing.T) {
	srs, err := Setup(3, testRNG(t))
	require.NoError(t, err)

	b, err := srs.DebugSummary()
	require.NoError(t, err)
	require.NotEmpty(t, b)

	var summary srsDebugSummary
	require.NoError(t, cbor.Unmarshal(b, &summary))
	require.Equal(t, 3, summary.MaxDegree)
	require.False(t, summary.VerifierOnly)
}

func TestDebugSummaryStableAcrossEquivalentSRS(t *testing.T) {
	srsA, err := Setup(3, testRNG(t))
	require.NoError(t, err)
	srsB, err := Setup(3, testRNG(t))
	require.NoError(t, err)

	bA, err := srsA.DebugSummary()
	require.NoError(t, err)
	bB, err := srsB.DebugSummary()
	require.NoError(t, err)

	var sumA, sumB srsDebugSummary
	require.NoError(t, cbor.Unmarshal(bA, &sumA))
	require.NoError(t, cbor.Unmarshal(bB, &sumB))

	// Two SRS built for the same maxDegree must decode to identical debug
	// summaries, since the summary carries no group elements, only shape
	// metadata.
	if diff := cmp.Diff(sumA, sumB); diff != "" {
		t.Fatalf("debug summaries diverged despite equal shape (-want +got):\n%s", diff)
	}
}
