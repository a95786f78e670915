package eventfmt

import "fmt"

// Params carries the window geometry shared with the detector and
// segment runner: the bin width, the DES smoothing constant, the
// delay buffer length, and the restart skip. The formatter derives
// the four interval durations from these.
type Params struct {
	Binning float64 // Δ, bin width in seconds
	Alpha   float64 // α, DES level smoothing constant
	M       int     // DES delay buffer length, in bins
	Skip    int     // segment runner restart interval, in bins
}

// Validate checks that Params can produce sane interval durations.
func (p Params) Validate() error {
	if p.Binning <= 0 {
		return fmt.Errorf("%w: binning must be > 0, got %v", ErrInvalidParameter, p.Binning)
	}
	if p.Alpha <= 0 {
		return fmt.Errorf("%w: alpha must be > 0, got %v", ErrInvalidParameter, p.Alpha)
	}
	if p.M < 1 {
		return fmt.Errorf("%w: m must be >= 1, got %v", ErrInvalidParameter, p.M)
	}
	if p.Skip < 0 {
		return fmt.Errorf("%w: skip must be >= 0, got %v", ErrInvalidParameter, p.Skip)
	}
	return nil
}

// preT is how far behind the trigger time the pre-background window
// ends: Δ·m, the span of the detector's delay buffer.
func (p Params) preT() float64 {
	return p.Binning * float64(p.M)
}

// postT is how far past the trigger time the post-background window
// starts: Δ·skip, the segment runner's restart interval.
func (p Params) postT() float64 {
	return p.Binning * float64(p.Skip)
}

// delta is the shared duration of both background windows: Δ/α.
func (p Params) delta() float64 {
	return p.Binning / p.Alpha
}
