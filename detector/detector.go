package detector

import "github.com/hbstools/hbstools/types"

// Detector is the common single-channel interface PFDES and PFSES
// satisfy; the segment runner and BFT folder depend on this, not on
// either concrete type. Variant selection (DES vs. SES, on presence
// of beta in the configuration) is the orchestrator's job.
type Detector interface {
	Step(x float64) (types.Change, error)
}
