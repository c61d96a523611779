package pipeline

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are the counters a Runner reports to.
type Metrics struct {
	Cells        *prometheus.CounterVec
	Artifacts    *prometheus.CounterVec
	Bytes        prometheus.Counter
	CellDuration *prometheus.HistogramVec
	InFlight     prometheus.Gauge
}

// NewMetrics registers the pipeline metrics on reg. A nil reg leaves them
// unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		Cells: f.NewCounterVec(prometheus.CounterOpts{
			Name: "lvlath_corpus_cells_total",
			Help: "Cells processed, labelled by stage and status.",
		}, []string{"stage", "status"}),

		Artifacts: f.NewCounterVec(prometheus.CounterOpts{
			Name: "lvlath_corpus_artifacts_written_total",
			Help: "Files written, labelled by kind (graph, variant, properties, prompt).",
		}, []string{"kind"}),

		Bytes: f.NewCounter(prometheus.CounterOpts{
			Name: "lvlath_corpus_bytes_written_total",
			Help: "Bytes of property JSON and prompt text written.",
		}),

		CellDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lvlath_corpus_cell_duration_seconds",
			Help:    "Wall time per cell, labelled by stage.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14),
		}, []string{"stage"}),

		InFlight: f.NewGauge(prometheus.GaugeOpts{
			Name: "lvlath_corpus_cells_in_flight",
			Help: "Cells currently being processed.",
		}),
	}
}
