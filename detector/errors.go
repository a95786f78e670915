package detector

import (
	"fmt"

	"github.com/hbstools/hbstools/types"
)

// ErrInvalidParameter is returned by the constructors when a
// detector-level constraint (t_max >= 1 if set) is violated, or when
// an underlying focus/des parameter is invalid.
var ErrInvalidParameter = fmt.Errorf("detector: invalid parameter: %w", types.ErrInvalidParameter)
