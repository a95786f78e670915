package detector

import (
	"fmt"

	"github.com/hbstools/hbstools/des"
	"github.com/hbstools/hbstools/focus"
	"github.com/hbstools/hbstools/types"
)

// Params configures a single-channel detector (PF+DES or PF+SES).
//
//	ThresholdStd, MuMin - FOCuS parameters, see focus.Params.
//	Alpha, Beta         - DES parameters. PF+SES ignores Beta.
//	M, Sleep            - background delay/warm-up, see des.Params.
//	TMax                - optional quality-control bound: crossings
//	                      whose changepoint offset is >= TMax are
//	                      suppressed as too old to trust given the
//	                      delayed background estimate. Must be >= 1 if set.
//	S0, B0              - optional DES initial level/slope.
//	CapacityHint        - forwarded to the underlying focus.Focus.
type Params struct {
	ThresholdStd float64
	MuMin        float64
	Alpha        float64
	Beta         float64
	M            int
	Sleep        int
	TMax         *int
	S0           *float64
	B0           *float64
	CapacityHint int
}

// Validate checks the detector-level constraint (t_max >= 1 if set)
// and delegates to focus.Params/des.Params for the rest.
func (p Params) Validate() error {
	if p.TMax != nil && *p.TMax < 1 {
		return fmt.Errorf("%w: t_max must be >= 1, got %v", ErrInvalidParameter, *p.TMax)
	}
	if err := (focus.Params{ThresholdStd: p.ThresholdStd, MuMin: p.MuMin}).Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}
	if err := (des.Params{Alpha: p.Alpha, Beta: p.Beta, M: p.M, Sleep: p.Sleep, S0: p.S0, B0: p.B0}).Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}
	return nil
}

func (p Params) desParams() des.Params {
	return des.Params{Alpha: p.Alpha, Beta: p.Beta, M: p.M, Sleep: p.Sleep, S0: p.S0, B0: p.B0}
}

func (p Params) focusParams() focus.Params {
	return focus.Params{ThresholdStd: p.ThresholdStd, MuMin: p.MuMin, CapacityHint: p.CapacityHint}
}

// qualityControl applies t_max quality control to a raw FOCuS result.
func qualityControl(globalMax float64, timeOffset int, tMax *int) types.Change {
	if globalMax <= 0 {
		return types.Unsignificant
	}
	if tMax != nil && timeOffset >= *tMax {
		return types.Unsignificant
	}
	return types.Change{Sigma: sqrtTwice(globalMax), Offset: timeOffset}
}
