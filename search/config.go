package search

import (
	"fmt"

	"github.com/hbstools/hbstools/types"
)

// AlgorithmParams carries the algorithm_params block of the
// configuration recognized by the search orchestrator. Beta selects
// between the DES and SES background families; Majority selects
// between the single-channel and BFT detector families.
type AlgorithmParams struct {
	ThresholdStd float64
	MuMin        float64
	Alpha        float64
	Beta         *float64
	M            int
	Sleep        int
	TMax         *int
	Majority     *int
}

// Config is the flat configuration record of spec §4.9.
type Config struct {
	Binning         float64
	Skip            int
	EnergyLow       float64
	EnergyHigh      float64
	AlgorithmParams AlgorithmParams

	// AbsTol is the stream assembler's GTI merge tolerance, in
	// seconds. Zero selects the default of 0.5s.
	AbsTol float64
}

const defaultAbsTol = 0.5

func (c Config) absTol() float64 {
	if c.AbsTol == 0 {
		return defaultAbsTol
	}
	return c.AbsTol
}

// Validate checks everything the core directly uses: the bin width,
// the energy band, and the selected variant's construction
// parameters. It fails with ErrInvalidParameter, which is fatal to the
// enclosing search (spec §7/§4.9).
func (c Config) Validate() error {
	if c.Binning <= 0 {
		return fmt.Errorf("%w: binning must be > 0, got %v", ErrInvalidParameter, c.Binning)
	}
	if c.Skip < 0 {
		return fmt.Errorf("%w: skip must be >= 0, got %v", ErrInvalidParameter, c.Skip)
	}
	if c.EnergyHigh < c.EnergyLow {
		return fmt.Errorf("%w: energy_lims high must be >= low, got [%v, %v)", ErrInvalidParameter, c.EnergyLow, c.EnergyHigh)
	}
	if c.AlgorithmParams.Majority != nil {
		m := *c.AlgorithmParams.Majority
		if m < 1 || m > types.DetectorNumber {
			return fmt.Errorf("%w: majority must be in [1, %d], got %v", ErrInvalidParameter, types.DetectorNumber, m)
		}
	}
	if err := c.detectorParams().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}
	return nil
}
