package binning_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbstools/hbstools/binning"
	"github.com/hbstools/hbstools/types"
)

// TestHistogram_BinCount exercises P3: counts has length
// floor((end-start)/Δ)+1, bins is one longer, and bins[-1] >= end.
func TestHistogram_BinCount(t *testing.T) {
	gti := types.GTI{Start: 0, End: 10}
	counts, bins, err := binning.Histogram(nil, gti, 3)
	require.NoError(t, err)
	assert.Len(t, counts, 4) // floor(10/3)+1 = 4
	assert.Len(t, bins, 5)
	assert.GreaterOrEqual(t, bins[len(bins)-1], gti.End)
}

func TestHistogram_CountsEvents(t *testing.T) {
	gti := types.GTI{Start: 0, End: 10}
	data := types.EventTable{
		{Time: 0.5}, {Time: 1.5}, {Time: 1.9}, {Time: 5.0}, {Time: 9.9},
	}
	counts, bins, err := binning.Histogram(data, gti, 1)
	require.NoError(t, err)
	require.Len(t, bins, 12) // floor(10/1)+1 = 11 bins, 12 edges
	assert.Equal(t, 1, counts[0])
	assert.Equal(t, 2, counts[1])
	assert.Equal(t, 1, counts[5])
	assert.Equal(t, 1, counts[9])
}

func TestHistogram_InvalidBinning(t *testing.T) {
	gti := types.GTI{Start: 0, End: 10}
	_, _, err := binning.Histogram(nil, gti, 0)
	assert.ErrorIs(t, err, binning.ErrInvalidParameter)

	_, _, err = binning.Histogram(nil, gti, -1)
	assert.ErrorIs(t, err, binning.ErrInvalidParameter)
}

func TestHistogramQuadrants_AlwaysFourRows(t *testing.T) {
	gti := types.GTI{Start: 0, End: 4}
	data := types.EventTable{
		{Time: 0.5, Quad: 0},
		{Time: 1.5, Quad: 0},
		{Time: 2.5, Quad: 2},
	}
	matrix, bins, err := binning.HistogramQuadrants(data, gti, 1)
	require.NoError(t, err)
	require.Len(t, bins, 6) // floor(4/1)+1 = 5 bins, 6 edges
	assert.Len(t, matrix, types.DetectorNumber)
	assert.Equal(t, []int{1, 1, 0, 0, 0}, matrix[0])
	assert.Equal(t, []int{0, 0, 0, 0, 0}, matrix[1])
	assert.Equal(t, []int{0, 0, 1, 0, 0}, matrix[2])
	assert.Equal(t, []int{0, 0, 0, 0, 0}, matrix[3])
}
