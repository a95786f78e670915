package bft

import (
	"fmt"

	"github.com/hbstools/hbstools/types"
)

// Sentinel errors for BFT construction and stepping, wrapping the
// corresponding types.Err* kind.
var (
	// ErrInvalidParameter is returned by New when majority is out of
	// [1, DetectorNumber].
	ErrInvalidParameter = fmt.Errorf("bft: invalid parameter: %w", types.ErrInvalidParameter)

	// ErrInsufficientQuadrants is returned by Step when the number of
	// live (unmasked) quadrants falls below majority.
	ErrInsufficientQuadrants = fmt.Errorf("bft: fewer than majority quadrants remain live: %w", types.ErrInsufficientQuadrants)
)
