package search

import (
	"context"
	"errors"
	"time"

	"github.com/hbstools/hbstools/binning"
	"github.com/hbstools/hbstools/eventfmt"
	"github.com/hbstools/hbstools/segment"
	"github.com/hbstools/hbstools/stream"
	"github.com/hbstools/hbstools/types"
)

// Logger receives window-level diagnostics. A nil Logger passed to Run
// disables logging; window failures are still skipped, per spec §7.
type Logger interface {
	WarnCtx(ctx context.Context, msg string, args ...any)
}

// EventSink receives each emitted event as it is produced, for
// downstream persistence. A nil EventSink is fine; Run always returns
// the full list by value regardless of whether a sink is supplied.
type EventSink interface {
	Emit(types.FormattedEvent) error
}

// MetricsRecorder receives per-window instrumentation. A nil
// MetricsRecorder disables it.
type MetricsRecorder interface {
	ObserveWindow(d time.Duration, eventsEmitted int)
}

// Deps bundles Run's optional collaborators. Every field may be left
// nil; Run behaves identically, minus the corresponding side effect.
type Deps struct {
	Logger  Logger
	Sink    EventSink
	Metrics MetricsRecorder
}

// Run drives providers through the stream assembler, energy filter,
// histogram binner, segment runner and event formatter, selecting the
// detector variant from cfg. It returns every formatted event in
// increasing tt_MET order.
//
// A window that fails with InvalidBackground or InsufficientQuadrants
// is logged and skipped, per spec §7/§4.9. A configuration failure
// (InvalidParameter) is fatal and aborts the whole run. ctx is
// inspected cooperatively between windows, per spec §5; a nil ctx
// disables cancellation.
func Run(ctx context.Context, providers []stream.DatasetProvider, cfg Config, deps Deps) ([]types.FormattedEvent, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	asm, err := stream.NewAssembler(providers, cfg.absTol())
	if err != nil {
		return nil, err
	}

	var events []types.FormattedEvent
	for {
		select {
		case <-ctx.Done():
			return events, ctx.Err()
		default:
		}

		window, ok, err := asm.Next()
		if err != nil {
			return events, err
		}
		if !ok {
			break
		}

		started := time.Now()
		windowEvents, err := cfg.runWindow(window)
		if err != nil {
			if errors.Is(err, types.ErrInvalidParameter) {
				return events, err
			}
			if deps.Logger != nil {
				deps.Logger.WarnCtx(ctx, "search: skipping window",
					"gti_start", window.GTI.Start, "gti_end", window.GTI.End, "error", err)
			}
			continue
		}
		if deps.Metrics != nil {
			deps.Metrics.ObserveWindow(time.Since(started), len(windowEvents))
		}

		for _, e := range windowEvents {
			if deps.Sink != nil {
				if err := deps.Sink.Emit(e); err != nil {
					return events, err
				}
			}
		}
		events = append(events, windowEvents...)
	}
	return events, nil
}

// runWindow applies the energy filter, binner, segment runner and
// formatter to a single merged window, per spec §4.9's end-to-end
// data flow.
func (c Config) runWindow(window stream.MergedWindow) ([]types.FormattedEvent, error) {
	filtered := window.Events.FilterEnergy(c.EnergyLow, c.EnergyHigh)

	var cps []types.Changepoint
	var bins []types.MET
	var err error

	if c.isBFT() {
		var matrix [types.DetectorNumber][]int
		matrix, bins, err = binning.HistogramQuadrants(filtered, window.GTI, c.Binning)
		if err != nil {
			return nil, err
		}
		var fmatrix [types.DetectorNumber][]float64
		for q := range matrix {
			fmatrix[q] = toFloat(matrix[q])
		}
		cps, err = segment.RunMatrix(c.newFolderFactory(), fmatrix, c.Skip)
	} else {
		var counts []int
		counts, bins, err = binning.Histogram(filtered, window.GTI, c.Binning)
		if err != nil {
			return nil, err
		}
		cps, err = segment.RunScalar(c.newDetectorFactory(), toFloat(counts), c.Skip)
	}
	if err != nil {
		return nil, err
	}

	fmtParams := eventfmt.Params{
		Binning: c.Binning,
		Alpha:   c.AlgorithmParams.Alpha,
		M:       c.AlgorithmParams.M,
		Skip:    c.Skip,
	}

	events := make([]types.FormattedEvent, 0, len(cps))
	for _, cp := range cps {
		cpMET := types.ChangepointMET{Sigma: cp.Sigma, CpMET: bins[cp.CpBin], TtMET: bins[cp.TtBin]}
		ev, err := eventfmt.Format(cpMET, window.GTI, fmtParams)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}

func toFloat(counts []int) []float64 {
	out := make([]float64, len(counts))
	for i, v := range counts {
		out[i] = float64(v)
	}
	return out
}
