package eventfmt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbstools/hbstools/eventfmt"
	"github.com/hbstools/hbstools/types"
)

func TestFormat_Basic(t *testing.T) {
	cp := types.ChangepointMET{Sigma: 5.0, CpMET: 20, TtMET: 25}
	gti := types.GTI{Start: 0, End: 50}
	p := eventfmt.Params{Binning: 1, Alpha: 0.1, M: 5, Skip: 10}

	ev, err := eventfmt.Format(cp, gti, p)
	require.NoError(t, err)
	assert.Equal(t, types.FormattedEvent{
		BkgPreStart:  10,
		BkgPreEnd:    20,
		EventStart:   20,
		EventEnd:     35,
		BkgPostStart: 35,
		BkgPostEnd:   45,
	}, ev)
}

// TestFormat_LeftClamp exercises S5 and P8: a changepoint close to the
// start of the GTI clamps bkg_pre_start to gti.start.
func TestFormat_LeftClamp(t *testing.T) {
	cp := types.ChangepointMET{Sigma: 5.0, CpMET: 6, TtMET: 7}
	gti := types.GTI{Start: 0, End: 50}
	p := eventfmt.Params{Binning: 1, Alpha: 0.1, M: 5, Skip: 10}

	ev, err := eventfmt.Format(cp, gti, p)
	require.NoError(t, err)
	assert.Equal(t, 0.0, ev.BkgPreStart)
	assert.LessOrEqual(t, ev.BkgPreStart, ev.BkgPreEnd)
}

// TestFormat_RightClamp mirrors the left-clamp scenario at the other
// end of the GTI.
func TestFormat_RightClamp(t *testing.T) {
	cp := types.ChangepointMET{Sigma: 5.0, CpMET: 44, TtMET: 45}
	gti := types.GTI{Start: 0, End: 50}
	p := eventfmt.Params{Binning: 1, Alpha: 0.1, M: 5, Skip: 10}

	ev, err := eventfmt.Format(cp, gti, p)
	require.NoError(t, err)
	assert.Equal(t, 50.0, ev.BkgPostEnd)
	assert.GreaterOrEqual(t, ev.BkgPostEnd, ev.BkgPostStart)
	assert.GreaterOrEqual(t, ev.BkgPostStart, cp.TtMET)
}

func TestFormat_InvariantOrdering(t *testing.T) {
	cp := types.ChangepointMET{Sigma: 5.0, CpMET: 20, TtMET: 25}
	gti := types.GTI{Start: 0, End: 50}
	p := eventfmt.Params{Binning: 1, Alpha: 0.1, M: 5, Skip: 10}

	ev, err := eventfmt.Format(cp, gti, p)
	require.NoError(t, err)
	assert.LessOrEqual(t, gti.Start, ev.BkgPreStart)
	assert.LessOrEqual(t, ev.BkgPreStart, ev.BkgPreEnd)
	assert.LessOrEqual(t, ev.EventStart, ev.EventEnd)
	assert.LessOrEqual(t, ev.BkgPostStart, ev.BkgPostEnd)
	assert.LessOrEqual(t, ev.BkgPostEnd, gti.End)
}

func TestFormat_InvalidParams(t *testing.T) {
	cp := types.ChangepointMET{Sigma: 1.0, CpMET: 1, TtMET: 2}
	gti := types.GTI{Start: 0, End: 10}

	_, err := eventfmt.Format(cp, gti, eventfmt.Params{Binning: 0, Alpha: 0.1, M: 1, Skip: 0})
	assert.ErrorIs(t, err, eventfmt.ErrInvalidParameter)

	_, err = eventfmt.Format(cp, gti, eventfmt.Params{Binning: 1, Alpha: 0, M: 1, Skip: 0})
	assert.ErrorIs(t, err, eventfmt.ErrInvalidParameter)
}
