package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	captureFrames = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "eegctl",
			Subsystem: "capture",
			Name:      "frames_total",
			Help:      "Protocol frames split from capture buffers.",
		},
	)
	captureFacets = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "eegctl",
			Subsystem: "capture",
			Name:      "facets_total",
			Help:      "Decoded facet messages by kind.",
		},
		[]string{"kind"},
	)
	captureRecords = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "eegctl",
			Subsystem: "capture",
			Name:      "records_total",
			Help:      "Emitted domain records by series.",
		},
		[]string{"series"},
	)
	captureFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "eegctl",
			Subsystem: "capture",
			Name:      "failures_total",
			Help:      "Fatal capture failures by pipeline stage.",
		},
		[]string{"stage"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(captureFrames, captureFacets, captureRecords, captureFailures)
	})
}

func RecordFrames(n int) {
	RegisterMetrics()
	captureFrames.Add(float64(n))
}

func RecordFacet(kind string) {
	RegisterMetrics()
	captureFacets.WithLabelValues(kind).Inc()
}

func RecordSeries(rawSamples, powerRecords int) {
	RegisterMetrics()
	captureRecords.WithLabelValues("raw_eeg").Add(float64(rawSamples))
	captureRecords.WithLabelValues("power_levels").Add(float64(powerRecords))
}

func RecordFailure(stage string) {
	RegisterMetrics()
	captureFailures.WithLabelValues(stage).Inc()
}
