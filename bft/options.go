package bft

import (
	"fmt"

	"github.com/hbstools/hbstools/types"
)

// Params configures a Bft folder.
//
//	Majority - minimum number of quadrants required, both to stay
//	           alive (else ErrInsufficientQuadrants) and to assert a
//	           trigger. Must be in [1, DetectorNumber].
type Params struct {
	Majority int
}

// Validate checks Params against the Bft constructor constraint.
func (p Params) Validate() error {
	if p.Majority < 1 || p.Majority > types.DetectorNumber {
		return fmt.Errorf("%w: majority must be in [1, %d], got %v", ErrInvalidParameter, types.DetectorNumber, p.Majority)
	}
	return nil
}
