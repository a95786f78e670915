package segment

import "github.com/hbstools/hbstools/types"

// Detector is the single-channel interface RunScalar drives.
type Detector interface {
	Step(x float64) (types.Change, error)
}

// Folder is the four-quadrant interface RunMatrix drives.
type Folder interface {
	Step(counts [types.DetectorNumber]float64) (types.Change, error)
}

// RunScalar drives a fresh Detector (built by newDetector) over counts,
// restarting skip bins after each trigger. It returns every
// Changepoint found, in increasing tt_bin order.
func RunScalar(newDetector func() (Detector, error), counts []float64, skip int) ([]types.Changepoint, error) {
	var out []types.Changepoint
	acc := 0

	for len(counts) > 0 {
		d, err := newDetector()
		if err != nil {
			return out, err
		}

		change, ttLocal, found, err := driveScalar(d, counts)
		if err != nil {
			return out, err
		}
		if !found {
			break
		}
		cpLocal := ttLocal - change.Offset + 1
		if ttLocal >= cpLocal {
			out = append(out, types.Changepoint{
				Sigma: change.Sigma,
				CpBin: acc + cpLocal,
				TtBin: acc + ttLocal,
			})
		}

		advance := ttLocal + skip
		acc += advance
		if advance >= len(counts) {
			break
		}
		counts = counts[advance:]
	}
	return out, nil
}

func driveScalar(d Detector, counts []float64) (change types.Change, ttLocal int, found bool, err error) {
	for t, x := range counts {
		c, stepErr := d.Step(x)
		if stepErr != nil {
			return types.Unsignificant, 0, false, stepErr
		}
		if c.IsSignificant() {
			return c, t, true, nil
		}
	}
	return types.Unsignificant, 0, false, nil
}

// RunMatrix drives a fresh Folder (built by newFolder) over a
// four-quadrant counts matrix, restarting skip bins after each
// trigger. All four rows of counts must have equal length.
func RunMatrix(newFolder func() (Folder, error), counts [types.DetectorNumber][]float64, skip int) ([]types.Changepoint, error) {
	var out []types.Changepoint
	acc := 0
	n := len(counts[0])

	for n > 0 {
		f, err := newFolder()
		if err != nil {
			return out, err
		}

		change, ttLocal, found, err := driveMatrix(f, counts, n)
		if err != nil {
			return out, err
		}
		if !found {
			break
		}
		cpLocal := ttLocal - change.Offset + 1
		if ttLocal >= cpLocal {
			out = append(out, types.Changepoint{
				Sigma: change.Sigma,
				CpBin: acc + cpLocal,
				TtBin: acc + ttLocal,
			})
		}

		advance := ttLocal + skip
		acc += advance
		if advance >= n {
			break
		}
		for q := range counts {
			counts[q] = counts[q][advance:]
		}
		n -= advance
	}
	return out, nil
}

func driveMatrix(f Folder, counts [types.DetectorNumber][]float64, n int) (change types.Change, ttLocal int, found bool, err error) {
	for t := 0; t < n; t++ {
		var col [types.DetectorNumber]float64
		for q := range counts {
			col[q] = counts[q][t]
		}
		c, stepErr := f.Step(col)
		if stepErr != nil {
			return types.Unsignificant, 0, false, stepErr
		}
		if c.IsSignificant() {
			return c, t, true, nil
		}
	}
	return types.Unsignificant, 0, false, nil
}
