package segment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbstools/hbstools/segment"
	"github.com/hbstools/hbstools/types"
)

// triggerAt fires a Change{Sigma: sigma, Offset: 1} the first time it
// sees a count >= threshold, and stays unsignificant afterwards.
type triggerAt struct {
	threshold float64
	sigma     float64
	fired     bool
}

func (d *triggerAt) Step(x float64) (types.Change, error) {
	if !d.fired && x >= d.threshold {
		d.fired = true
		return types.Change{Sigma: d.sigma, Offset: 1}, nil
	}
	return types.Unsignificant, nil
}

func newTriggerAt(threshold, sigma float64) func() (segment.Detector, error) {
	return func() (segment.Detector, error) {
		return &triggerAt{threshold: threshold, sigma: sigma}, nil
	}
}

// TestRunScalar_SingleTrigger exercises P7: for counts with only a
// single trigger location t*, the segment runner returns exactly one
// Changepoint with TtBin == t*, and restarting past it finds nothing
// further.
func TestRunScalar_SingleTrigger(t *testing.T) {
	counts := []float64{0, 0, 0, 9, 0, 0, 0, 0, 0, 0}
	out, err := segment.RunScalar(newTriggerAt(5, 7.0), counts, 2)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 3, out[0].TtBin)
	assert.Equal(t, 3, out[0].CpBin)
	assert.Equal(t, 7.0, out[0].Sigma)
}

func TestRunScalar_NoTrigger(t *testing.T) {
	counts := []float64{0, 1, 0, 1, 0, 1}
	out, err := segment.RunScalar(newTriggerAt(5, 7.0), counts, 1)
	require.NoError(t, err)
	assert.Empty(t, out)
}

// TestRunScalar_RestartsAfterTrigger checks that a second trigger past
// skip bins is found in a fresh detector instance, and the accumulated
// bin index is offset correctly.
func TestRunScalar_RestartsAfterTrigger(t *testing.T) {
	counts := []float64{9, 0, 0, 0, 9, 0, 0, 0}

	calls := 0
	newDetector := func() (segment.Detector, error) {
		calls++
		return &triggerAt{threshold: 5, sigma: 3.0}, nil
	}

	out, err := segment.RunScalar(newDetector, counts, 1)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, 0, out[0].TtBin)
	assert.Equal(t, 4, out[1].TtBin)
	assert.GreaterOrEqual(t, calls, 2)
}

func TestRunScalar_PropagatesDetectorError(t *testing.T) {
	sentinel := assert.AnError
	newDetector := func() (segment.Detector, error) {
		return nil, sentinel
	}
	_, err := segment.RunScalar(newDetector, []float64{1, 2, 3}, 1)
	assert.ErrorIs(t, err, sentinel)
}

// foldAt fires on the first column whose sum across quadrants reaches
// a threshold.
type foldAt struct {
	threshold float64
	sigma     float64
	fired     bool
}

func (f *foldAt) Step(counts [types.DetectorNumber]float64) (types.Change, error) {
	if f.fired {
		return types.Unsignificant, nil
	}
	sum := 0.0
	for _, c := range counts {
		sum += c
	}
	if sum >= f.threshold {
		f.fired = true
		return types.Change{Sigma: f.sigma, Offset: 1}, nil
	}
	return types.Unsignificant, nil
}

func TestRunMatrix_SingleTrigger(t *testing.T) {
	counts := [types.DetectorNumber][]float64{
		{0, 0, 3, 0, 0},
		{0, 0, 3, 0, 0},
		{0, 0, 3, 0, 0},
		{0, 0, 3, 0, 0},
	}
	newFolder := func() (segment.Folder, error) {
		return &foldAt{threshold: 10, sigma: 5.0}, nil
	}

	out, err := segment.RunMatrix(newFolder, counts, 1)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 2, out[0].TtBin)
	assert.Equal(t, 5.0, out[0].Sigma)
}

func TestRunMatrix_NoTrigger(t *testing.T) {
	counts := [types.DetectorNumber][]float64{
		{0, 0, 0}, {0, 0, 0}, {0, 0, 0}, {0, 0, 0},
	}
	newFolder := func() (segment.Folder, error) {
		return &foldAt{threshold: 1000, sigma: 1.0}, nil
	}
	out, err := segment.RunMatrix(newFolder, counts, 1)
	require.NoError(t, err)
	assert.Empty(t, out)
}
