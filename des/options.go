package des

import "fmt"

// Params configures a DES background estimator.
//
//	Alpha - level smoothing parameter. Must be >= 0.
//	Beta  - slope smoothing parameter. Must be >= 0.
//	M     - delay buffer length and forecast horizon, in bins. Must be >= 1.
//	Sleep - warm-up length, in bins, before the detector may fire. Must be >= 0.
//	S0    - optional initial level. If unset, the mean of the first M
//	        observed counts is used. Must be >= 0 if set.
//	B0    - optional initial slope. If unset, zero is used. Must be >= 0 if set.
type Params struct {
	Alpha float64
	Beta  float64
	M     int
	Sleep int
	S0    *float64
	B0    *float64
}

// Validate checks Params against the DES constructor constraints.
func (p Params) Validate() error {
	if p.Alpha < 0 {
		return fmt.Errorf("%w: alpha must be >= 0, got %v", ErrInvalidParameter, p.Alpha)
	}
	if p.Beta < 0 {
		return fmt.Errorf("%w: beta must be >= 0, got %v", ErrInvalidParameter, p.Beta)
	}
	if p.M < 1 {
		return fmt.Errorf("%w: m must be >= 1, got %v", ErrInvalidParameter, p.M)
	}
	if p.Sleep < 0 {
		return fmt.Errorf("%w: sleep must be >= 0, got %v", ErrInvalidParameter, p.Sleep)
	}
	if p.S0 != nil && *p.S0 < 0 {
		return fmt.Errorf("%w: s_0 must be >= 0, got %v", ErrInvalidParameter, *p.S0)
	}
	if p.B0 != nil && *p.B0 < 0 {
		return fmt.Errorf("%w: b_0 must be >= 0, got %v", ErrInvalidParameter, *p.B0)
	}
	return nil
}
