package search

import (
	"fmt"

	"github.com/hbstools/hbstools/types"
)

// ErrInvalidParameter wraps a construction-time configuration failure.
// It is always fatal: Run returns it immediately rather than skipping
// a window.
var ErrInvalidParameter = fmt.Errorf("search: invalid parameter: %w", types.ErrInvalidParameter)
