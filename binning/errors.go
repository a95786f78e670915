package binning

import (
	"fmt"

	"github.com/hbstools/hbstools/types"
)

// ErrInvalidParameter is returned when the bin width is not strictly
// positive.
var ErrInvalidParameter = fmt.Errorf("binning: bin width must be > 0: %w", types.ErrInvalidParameter)
