package eventfmt

import (
	"fmt"

	"github.com/hbstools/hbstools/types"
)

// ErrInvalidParameter is returned by Params.Validate when the window
// geometry (binning, alpha, m, skip) cannot produce sane interval
// durations.
var ErrInvalidParameter = fmt.Errorf("eventfmt: invalid parameter: %w", types.ErrInvalidParameter)
