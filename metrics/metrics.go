// Package metrics provides opt-in Prometheus instrumentation for create
// dispatches. When no recorder is attached the registry does no metrics work
// at all, keeping the core silent as promised.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/forgo/loom/model"
)

// Recorder observes create dispatches and exports them as Prometheus
// metrics. Kind is used as a label; kinds form a small set fixed at setup
// time, so cardinality stays bounded.
type Recorder struct {
	creates   *prometheus.CounterVec
	models    *prometheus.CounterVec
	batchSize prometheus.Histogram
	duration  prometheus.Histogram
}

// NewRecorder creates a Recorder and registers its collectors with reg. Use
// prometheus.DefaultRegisterer outside of tests.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		creates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "loom_creates_total",
			Help: "Total create dispatches by kind and outcome",
		}, []string{"kind", "outcome"}),
		models: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "loom_models_total",
			Help: "Total models submitted for creation by kind",
		}, []string{"kind"}),
		batchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "loom_batch_size",
			Help:    "Distribution of models per create dispatch",
			Buckets: []float64{1, 2, 4, 8, 16, 32, 64, 128, 256},
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "loom_create_duration_seconds",
			Help:    "Duration of create dispatches",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(r.creates, r.models, r.batchSize, r.duration)
	return r
}

// ObserveCreate records one completed dispatch.
func (r *Recorder) ObserveCreate(kind model.Kind, batchSize int, d time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	r.creates.WithLabelValues(string(kind), outcome).Inc()
	r.models.WithLabelValues(string(kind)).Add(float64(batchSize))
	r.batchSize.Observe(float64(batchSize))
	r.duration.Observe(d.Seconds())
}
