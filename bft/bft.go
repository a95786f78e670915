package bft

import (
	"errors"

	"github.com/hbstools/hbstools/types"
)

// Detector is the single-channel interface each quadrant runs;
// detector.PFDES and detector.PFSES both satisfy it structurally.
type Detector interface {
	Step(x float64) (types.Change, error)
}

// Bft folds types.DetectorNumber independent Detectors, one per
// instrument quadrant, into a majority-vote trigger.
type Bft struct {
	majority  int
	detectors [types.DetectorNumber]Detector
	alive     [types.DetectorNumber]bool
	steps     int
}

// New constructs a Bft from four already-built detectors and a
// majority threshold. It fails with ErrInvalidParameter if params
// does not satisfy Params.Validate.
func New(params Params, detectors [types.DetectorNumber]Detector) (*Bft, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	b := &Bft{majority: params.Majority, detectors: detectors}
	for i := range b.alive {
		b.alive[i] = true
	}
	return b, nil
}

// Step feeds one bin's worth of per-quadrant counts through the live
// detectors, masks any quadrant whose detector reports
// types.ErrInvalidBackground, and folds the result.
//
// The returned Change is the folded majority result: significant
// (Sigma > 0) only once at least Majority quadrants report
// significance on this step, in which case Sigma is the maximum
// per-quadrant significance and Offset is the maximum per-quadrant
// offset (the earliest candidate changepoint across quadrants). It is
// types.Unsignificant on every earlier step.
//
// Step fails with ErrInsufficientQuadrants once fewer than Majority
// quadrants remain alive.
func (b *Bft) Step(counts [types.DetectorNumber]float64) (types.Change, error) {
	var changes [types.DetectorNumber]types.Change

	for i := 0; i < types.DetectorNumber; i++ {
		if !b.alive[i] {
			changes[i] = types.Unsignificant
			continue
		}
		c, err := b.detectors[i].Step(counts[i])
		if err != nil {
			if errors.Is(err, types.ErrInvalidBackground) || errors.Is(err, types.ErrInvalidParameter) {
				b.alive[i] = false
				changes[i] = types.Unsignificant
				continue
			}
			return types.Unsignificant, err
		}
		changes[i] = c
	}

	liveCount := b.countAlive()
	if liveCount < b.majority {
		return types.Unsignificant, ErrInsufficientQuadrants
	}

	k := 0
	for _, c := range changes {
		if c.IsSignificant() {
			k++
		}
	}

	folded := types.Unsignificant
	if k >= b.majority {
		folded = fold(changes)
	}

	b.steps++
	return folded, nil
}

// Steps reports how many bins have been fed to the folder so far.
func (b *Bft) Steps() int {
	return b.steps
}

func (b *Bft) countAlive() int {
	n := 0
	for _, alive := range b.alive {
		if alive {
			n++
		}
	}
	return n
}

// fold collapses four per-quadrant Changes into one: the maximum
// significance and the maximum offset (the earliest candidate
// changepoint across quadrants).
func fold(changes [types.DetectorNumber]types.Change) types.Change {
	var maxSigma float64
	var maxOffset int
	for _, c := range changes {
		if c.Sigma > maxSigma {
			maxSigma = c.Sigma
		}
		if c.Offset > maxOffset {
			maxOffset = c.Offset
		}
	}
	return types.Change{Sigma: maxSigma, Offset: maxOffset}
}

// Masked reports, for diagnostics, whether quadrant i has been masked
// out by a prior ErrInvalidBackground/ErrInvalidParameter failure.
func (b *Bft) Masked(i int) bool {
	return !b.alive[i]
}
