package focus

import (
	"fmt"

	"github.com/hbstools/hbstools/types"
)

// Sentinel errors for Poisson-FOCuS construction and updates. Both
// wrap the corresponding types.Err* kind so callers can classify a
// failure with errors.Is without importing this package.
var (
	// ErrInvalidParameter is returned by New when MuMin < 1 or
	// ThresholdStd <= 0.
	ErrInvalidParameter = fmt.Errorf("focus: invalid parameter: %w", types.ErrInvalidParameter)

	// ErrInvalidBackground is returned by Update when the supplied
	// background forecast is not strictly positive.
	ErrInvalidBackground = fmt.Errorf("focus: background must be greater than zero: %w", types.ErrInvalidBackground)
)
