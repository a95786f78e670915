package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder bundles the collectors a single search.Run invocation
// reports through. The zero value is not usable; build one with New.
type Recorder struct {
	windowsProcessed prometheus.Counter
	eventsEmitted    prometheus.Counter
	quadrantsMasked  prometheus.Counter
	windowDuration   prometheus.Histogram
}

// New builds a Recorder and registers its collectors with reg. A nil
// reg registers against prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	r := &Recorder{
		windowsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hbstools",
			Name:      "windows_processed_total",
			Help:      "Number of (GTI, event table) windows the orchestrator has processed.",
		}),
		eventsEmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hbstools",
			Name:      "events_emitted_total",
			Help:      "Number of formatted events emitted across all windows.",
		}),
		quadrantsMasked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hbstools",
			Name:      "bft_quadrants_masked_total",
			Help:      "Number of BFT quadrant fault-isolation events.",
		}),
		windowDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "hbstools",
			Name:      "window_processing_seconds",
			Help:      "Time spent processing a single window end to end.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	for _, c := range []prometheus.Collector{
		r.windowsProcessed, r.eventsEmitted, r.quadrantsMasked, r.windowDuration,
	} {
		_ = reg.Register(c) // best effort: a duplicate registration is not fatal
	}
	return r
}

// ObserveWindow records one window's processing duration and its
// emitted-event count.
func (r *Recorder) ObserveWindow(d time.Duration, eventsEmitted int) {
	if r == nil {
		return
	}
	r.windowsProcessed.Inc()
	r.windowDuration.Observe(d.Seconds())
	r.eventsEmitted.Add(float64(eventsEmitted))
}

// ObserveQuadrantMasked records one BFT fault-isolation event.
func (r *Recorder) ObserveQuadrantMasked() {
	if r == nil {
		return
	}
	r.quadrantsMasked.Inc()
}
