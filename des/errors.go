package des

import (
	"fmt"

	"github.com/hbstools/hbstools/types"
)

// Sentinel errors for DES construction and stepping, wrapping the
// corresponding types.Err* kind.
var (
	// ErrInvalidParameter is returned by New when a constructor
	// constraint in Params.Validate is violated.
	ErrInvalidParameter = fmt.Errorf("des: invalid parameter: %w", types.ErrInvalidParameter)

	// ErrInvalidBackground is returned by Step when the freshly
	// computed forecast lambda(t) is not strictly positive.
	ErrInvalidBackground = fmt.Errorf("des: forecast background must be greater than zero: %w", types.ErrInvalidBackground)
)
