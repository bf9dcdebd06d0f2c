package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the property module.
// Tracks upload/delete counts, lookup outcomes, and upload latency.
type Metrics struct {
	PropertiesUploaded prometheus.Counter
	PropertiesDeleted  *prometheus.CounterVec
	LookupOutcome      *prometheus.CounterVec
	UploadDuration     prometheus.Histogram
	RegistrySize       prometheus.Gauge
}

// New creates a new Metrics instance with all property module metrics registered.
func New() *Metrics {
	return &Metrics{
		PropertiesUploaded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "holdings_properties_uploaded_total",
			Help: "Total number of property uploads accepted",
		}),
		PropertiesDeleted: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "holdings_properties_deleted_total",
			Help: "Total delete attempts by outcome",
		}, []string{"outcome"}), // outcome: "deleted", "absent"
		LookupOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "holdings_property_lookups_total",
			Help: "Total point lookups by outcome",
		}, []string{"outcome"}), // outcome: "hit", "miss"
		UploadDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "holdings_property_upload_duration_seconds",
			Help:    "Duration of upload operations including digest computation",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		RegistrySize: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "holdings_registry_records",
			Help: "Number of records currently in the registry",
		}),
	}
}

// IncrementUploaded records an accepted upload.
func (m *Metrics) IncrementUploaded() {
	if m != nil {
		m.PropertiesUploaded.Inc()
	}
}

// IncrementDeleted records a delete attempt with its outcome.
func (m *Metrics) IncrementDeleted(removed bool) {
	if m != nil {
		outcome := "deleted"
		if !removed {
			outcome = "absent"
		}
		m.PropertiesDeleted.WithLabelValues(outcome).Inc()
	}
}

// IncrementLookup records a point lookup with its outcome.
func (m *Metrics) IncrementLookup(hit bool) {
	if m != nil {
		outcome := "hit"
		if !hit {
			outcome = "miss"
		}
		m.LookupOutcome.WithLabelValues(outcome).Inc()
	}
}

// ObserveUpload records the duration of an upload operation.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveUpload(start time.Time) {
	if m != nil {
		m.UploadDuration.Observe(time.Since(start).Seconds())
	}
}

// SetRegistrySize records the current record count.
func (m *Metrics) SetRegistrySize(n int) {
	if m != nil {
		m.RegistrySize.Set(float64(n))
	}
}
