package pascal3d

import (
	"errors"
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitIndicesPartition(t *testing.T) {
	tests := []struct {
		name      string
		n         int
		fraction  float64
		wantTrain int
	}{
		{"empty", 0, 0.2, 0},
		{"single", 1, 0.2, 0},
		{"hundred", 100, 0.2, 80},
		{"odd", 17, 0.3, 11},
		{"no validation", 10, 0, 10},
		{"all validation", 10, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			train, val := SplitIndices(tt.n, tt.fraction, rand.New(rand.NewPCG(1, 2)))
			assert.Len(t, train, tt.wantTrain)
			assert.Len(t, val, tt.n-tt.wantTrain)

			all := append(slices.Clone(train), val...)
			slices.Sort(all)
			want := make([]int, tt.n)
			for i := range want {
				want[i] = i
			}
			if diff := cmp.Diff(want, all); diff != "" {
				t.Errorf("indices are not a partition (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSplitEightyTwenty(t *testing.T) {
	p := makePartition(t, 100)

	train, val, err := Split(p, 0.2, false)
	require.NoError(t, err)
	assert.Equal(t, 80, train.Len())
	assert.Equal(t, 20, val.Len())
	assert.Equal(t, 80, labelRows(train.Labels))
	assert.Equal(t, 20, labelRows(val.Labels))
}

func TestSplitCanonicalIsReproducible(t *testing.T) {
	p := makePartition(t, 50)

	train1, val1, err := Split(p, 0.5, true)
	require.NoError(t, err)
	train2, val2, err := Split(p, 0.5, true)
	require.NoError(t, err)

	// canonical ignores the requested fraction
	assert.Equal(t, 40, train1.Len())
	assert.Equal(t, 10, val1.Len())

	assert.Equal(t, sampleIDs(train1), sampleIDs(train2))
	assert.Equal(t, sampleIDs(val1), sampleIDs(val2))
}

func TestSplitSeeded(t *testing.T) {
	p := makePartition(t, 64)

	a, _, err := SplitSeeded(p, 0.25, 7)
	require.NoError(t, err)
	b, _, err := SplitSeeded(p, 0.25, 7)
	require.NoError(t, err)
	c, _, err := SplitSeeded(p, 0.25, 8)
	require.NoError(t, err)

	assert.Equal(t, sampleIDs(a), sampleIDs(b))
	assert.NotEqual(t, sampleIDs(a), sampleIDs(c))
}

func TestSplitUnseededVaries(t *testing.T) {
	p := makePartition(t, 100)

	first, _, err := Split(p, 0.2, false)
	require.NoError(t, err)

	// Two independent draws of 80 of 100 indices coincide with negligible probability.
	differs := false
	for i := 0; i < 3 && !differs; i++ {
		next, _, err := Split(p, 0.2, false)
		require.NoError(t, err)
		differs = !slices.Equal(sampleIDs(first), sampleIDs(next))
	}
	assert.True(t, differs, "unseeded splits should differ")
}

func TestSplitCanonicalDoesNotFixLaterDraws(t *testing.T) {
	p := makePartition(t, 100)

	_, _, err := Split(p, 0.2, true)
	require.NoError(t, err)
	a := rand.Perm(100)

	_, _, err = Split(p, 0.2, true)
	require.NoError(t, err)
	b := rand.Perm(100)

	assert.NotEqual(t, a, b)
}

func TestSplitKeepsLabelsAligned(t *testing.T) {
	p := makePartition(t, 30)

	train, val, err := Split(p, 0.2, false)
	require.NoError(t, err)

	for _, part := range []Partition{train, val} {
		for i, id := range sampleIDs(part) {
			assert.InDeltaSlice(t, EncodePose(poseFor(id)), part.Labels.RawRowView(i), 1e-12)
		}
	}
}

func TestSplitInvalidFraction(t *testing.T) {
	p := makePartition(t, 10)

	for _, f := range []float64{-0.1, 1.5, math.NaN()} {
		_, _, err := Split(p, f, false)
		if !errors.Is(err, ErrInvalidSplit) {
			t.Errorf("fraction %v: expected ErrInvalidSplit, got %v", f, err)
		}
	}
}

func TestSplitMismatchedPartition(t *testing.T) {
	p := makePartition(t, 10)
	p.Labels = makePartition(t, 9).Labels

	_, _, err := Split(p, 0.2, false)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestSplitZeroPartition(t *testing.T) {
	_, _, err := Split(Partition{}, 0.2, false)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, _, err = SplitSeeded(Partition{}, 0.2, 1)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	assert.Equal(t, 0, Partition{}.Take(nil).Len())
	assert.Equal(t, 0, (*Images)(nil).Take([]int{}).Len())
}
