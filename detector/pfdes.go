package detector

import (
	"math"

	"github.com/hbstools/hbstools/des"
	"github.com/hbstools/hbstools/focus"
	"github.com/hbstools/hbstools/types"
)

func sqrtTwice(globalMax float64) float64 {
	return math.Sqrt(2 * globalMax)
}

// PFDES is the PF+DES detector (component C): a Poisson-FOCuS curve
// stack fed by a Double Exponential Smoothing background forecast.
type PFDES struct {
	focus *focus.Focus
	bkg   *des.DES
	tMax  *int
}

// NewPFDES constructs a PF+DES detector. It fails with
// ErrInvalidParameter if params does not satisfy Params.Validate.
func NewPFDES(params Params) (*PFDES, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	f, err := focus.New(params.focusParams())
	if err != nil {
		return nil, err
	}
	b, err := des.New(params.desParams())
	if err != nil {
		return nil, err
	}
	return &PFDES{focus: f, bkg: b, tMax: params.TMax}, nil
}

// Step feeds one bin count through the background schedule and,
// once steady state is reached, through the FOCuS update, applying
// t_max quality control. It fails with an error wrapping
// types.ErrInvalidBackground if the background forecast is not
// strictly positive.
func (d *PFDES) Step(x float64) (types.Change, error) {
	ready, lambda, err := d.bkg.Step(x)
	if err != nil {
		return types.Unsignificant, err
	}
	if !ready {
		return types.Unsignificant, nil
	}
	if err := d.focus.Update(x, lambda); err != nil {
		return types.Unsignificant, err
	}
	return qualityControl(d.focus.GlobalMax(), d.focus.TimeOffset(), d.tMax), nil
}
