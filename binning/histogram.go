package binning

import (
	"math"

	"github.com/hbstools/hbstools/types"
)

// bins computes the N+1 bin edges for [start, start+N*width), where
// N = floor((stop-start)/width) + 1, so bins[N] >= stop.
func bins(start, stop, width float64) []types.MET {
	n := int(math.Floor((stop-start)/width)) + 1
	edges := make([]types.MET, n+1)
	for i := 0; i <= n; i++ {
		edges[i] = start + float64(i)*width
	}
	return edges
}

// Histogram bins data's TIME column over gti into fixed-width bins of
// width binning, returning the per-bin counts and the N+1 bin edges.
// It fails with ErrInvalidParameter if binning is not strictly
// positive.
func Histogram(data types.EventTable, gti types.GTI, binning float64) ([]int, []types.MET, error) {
	if binning <= 0 {
		return nil, nil, ErrInvalidParameter
	}
	edges := bins(gti.Start, gti.End, binning)
	counts := make([]int, len(edges)-1)

	idx := 0
	for _, e := range data {
		for idx < len(edges)-2 && e.Time >= edges[idx+1] {
			idx++
		}
		if e.Time >= edges[idx] && e.Time < edges[idx+1] {
			counts[idx]++
		}
	}
	return counts, edges, nil
}

// HistogramQuadrants bins data the same way as Histogram but stacks
// four rows, one per quadrant 0..3. Rows for quadrants with no events
// are all zero; the returned matrix always has types.DetectorNumber
// rows regardless of which quadrants are present in data.
func HistogramQuadrants(data types.EventTable, gti types.GTI, binning float64) ([types.DetectorNumber][]int, []types.MET, error) {
	if binning <= 0 {
		return [types.DetectorNumber][]int{}, nil, ErrInvalidParameter
	}
	edges := bins(gti.Start, gti.End, binning)
	nBins := len(edges) - 1

	var matrix [types.DetectorNumber][]int
	for q := range matrix {
		matrix[q] = make([]int, nBins)
	}

	for q := 0; q < types.DetectorNumber; q++ {
		idx := 0
		for _, e := range data {
			if int(e.Quad) != q {
				continue
			}
			for idx < nBins-1 && e.Time >= edges[idx+1] {
				idx++
			}
			if e.Time >= edges[idx] && e.Time < edges[idx+1] {
				matrix[q][idx]++
			}
		}
	}
	return matrix, edges, nil
}
