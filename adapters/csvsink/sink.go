package csvsink

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/hbstools/hbstools/types"
)

// Sink writes each emitted event as one CSV row:
// bkg_pre_start,bkg_pre_end,event_start,event_end,bkg_post_start,bkg_post_end.
// It satisfies search.EventSink structurally.
type Sink struct {
	w      *csv.Writer
	header bool
}

// New builds a Sink writing to w. The header row is written lazily,
// before the first Emit call.
func New(w io.Writer) *Sink {
	return &Sink{w: csv.NewWriter(w)}
}

// Emit appends one event row and flushes.
func (s *Sink) Emit(ev types.FormattedEvent) error {
	if !s.header {
		if err := s.w.Write([]string{
			"bkg_pre_start", "bkg_pre_end", "event_start", "event_end", "bkg_post_start", "bkg_post_end",
		}); err != nil {
			return fmt.Errorf("csvsink: write header: %w", err)
		}
		s.header = true
	}

	row := []string{
		formatMET(ev.BkgPreStart),
		formatMET(ev.BkgPreEnd),
		formatMET(ev.EventStart),
		formatMET(ev.EventEnd),
		formatMET(ev.BkgPostStart),
		formatMET(ev.BkgPostEnd),
	}
	if err := s.w.Write(row); err != nil {
		return fmt.Errorf("csvsink: write row: %w", err)
	}
	s.w.Flush()
	return s.w.Error()
}

func formatMET(t types.MET) string {
	return strconv.FormatFloat(t, 'f', -1, 64)
}
