package detector

import (
	"github.com/hbstools/hbstools/des"
	"github.com/hbstools/hbstools/focus"
	"github.com/hbstools/hbstools/types"
)

// PFSES is the PF+SES detector: a Poisson-FOCuS curve stack fed by a
// Simple (single) Exponential Smoothing background forecast — the
// slope-free sibling of PFDES described in SPEC_FULL.md §3.2, selected
// when the configuration omits beta. It reuses des.DES with the slope
// term pinned to zero, so lambda(t) reduces to s_t.
type PFSES struct {
	focus *focus.Focus
	bkg   *des.DES
	tMax  *int
}

// NewPFSES constructs a PF+SES detector. It fails with
// ErrInvalidParameter if params does not satisfy Params.Validate; Beta
// and B0 are ignored (the slope term is always zero).
func NewPFSES(params Params) (*PFSES, error) {
	zero := 0.0
	params.Beta = 0
	params.B0 = &zero

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
	return &PFSES{focus: f, bkg: b, tMax: params.TMax}, nil
}

// Step has the same contract as PFDES.Step.
func (d *PFSES) Step(x float64) (types.Change, error) {
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
