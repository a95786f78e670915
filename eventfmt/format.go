package eventfmt

import (
	"math"

	"github.com/hbstools/hbstools/types"
)

// Format turns a ChangepointMET plus its enclosing GTI into a
// FormattedEvent: a pre-trigger background window ending Δ·m seconds
// before the trigger, the source interval itself, and a post-trigger
// background window starting Δ·skip seconds after the trigger. Both
// background windows span Δ/α seconds and are clamped to gti.
//
// Format does not itself know whether gti came from a merge in the
// stream assembler; callers pass the merged window's own outer
// bounds, so clamping always lands on a real edge, never an internal
// seam (see the stream package for why no seam ever reaches here).
func Format(cp types.ChangepointMET, gti types.GTI, p Params) (types.FormattedEvent, error) {
	if err := p.Validate(); err != nil {
		return types.FormattedEvent{}, err
	}

	preT := p.preT()
	postT := p.postT()
	delta := p.delta()

	bkgPreEnd := cp.TtMET - preT
	bkgPreStart := bkgPreEnd - delta
	if bkgPreStart < gti.Start {
		bkgPreStart = gti.Start
	}

	eventStart := cp.CpMET
	eventEnd := cp.TtMET + postT

	bkgPostStart := cp.TtMET + postT
	bkgPostEnd := bkgPostStart + delta
	if bkgPostEnd > gti.End {
		bkgPostEnd = gti.End
		bkgPostStart = math.Max(bkgPostEnd-delta, cp.TtMET)
	}

	return types.FormattedEvent{
		BkgPreStart:  bkgPreStart,
		BkgPreEnd:    bkgPreEnd,
		EventStart:   eventStart,
		EventEnd:     eventEnd,
		BkgPostStart: bkgPostStart,
		BkgPostEnd:   bkgPostEnd,
	}, nil
}
