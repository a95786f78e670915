package search

import (
	"github.com/hbstools/hbstools/bft"
	"github.com/hbstools/hbstools/detector"
	"github.com/hbstools/hbstools/segment"
	"github.com/hbstools/hbstools/types"
)

// detectorParams builds the shared detector.Params from the
// configuration's algorithm_params block. Beta defaults to 0 when
// unset, which is harmless: the SES variant ignores it entirely.
func (c Config) detectorParams() detector.Params {
	var beta float64
	if c.AlgorithmParams.Beta != nil {
		beta = *c.AlgorithmParams.Beta
	}
	return detector.Params{
		ThresholdStd: c.AlgorithmParams.ThresholdStd,
		MuMin:        c.AlgorithmParams.MuMin,
		Alpha:        c.AlgorithmParams.Alpha,
		Beta:         beta,
		M:            c.AlgorithmParams.M,
		Sleep:        c.AlgorithmParams.Sleep,
		TMax:         c.AlgorithmParams.TMax,
	}
}

// isBFT reports whether the configuration selects a multi-quadrant
// (BFT) variant, per spec §4.9: presence of majority.
func (c Config) isBFT() bool {
	return c.AlgorithmParams.Majority != nil
}

// isDES reports whether the configuration selects the DES background
// family, per spec §4.9: presence of beta.
func (c Config) isDES() bool {
	return c.AlgorithmParams.Beta != nil
}

func (c Config) newSingleChannel(params detector.Params) (segment.Detector, error) {
	if c.isDES() {
		return detector.NewPFDES(params)
	}
	return detector.NewPFSES(params)
}

// newDetectorFactory returns the constructor the segment runner calls
// to build a fresh single-channel detector on every restart.
func (c Config) newDetectorFactory() func() (segment.Detector, error) {
	params := c.detectorParams()
	return func() (segment.Detector, error) {
		return c.newSingleChannel(params)
	}
}

// newFolderFactory returns the constructor the segment runner calls to
// build a fresh BFT folder (four fresh single-channel detectors, one
// per quadrant) on every restart.
func (c Config) newFolderFactory() func() (segment.Folder, error) {
	params := c.detectorParams()
	majority := 0
	if c.AlgorithmParams.Majority != nil {
		majority = *c.AlgorithmParams.Majority
	}
	return func() (segment.Folder, error) {
		var ds [types.DetectorNumber]bft.Detector
		for i := range ds {
			d, err := c.newSingleChannel(params)
			if err != nil {
				return nil, err
			}
			ds[i] = d
		}
		return bft.New(bft.Params{Majority: majority}, ds)
	}
}
