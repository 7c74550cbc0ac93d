package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Stats collects operation counts and occupancy for a matrix.
type Stats interface {
	RecordInsert()
	RecordRemove()
	RecordUpdate()
	RecordExtract(end string)
	RecordDuplicate()
	SetOccupancy(elements, buckets int)
}

// PrometheusStats reports Stats through prometheus collectors.
type PrometheusStats struct {
	inserts     prometheus.Counter
	removals    prometheus.Counter
	updates     prometheus.Counter
	extractions *prometheus.CounterVec
	duplicates  prometheus.Counter
	elements    prometheus.Gauge
	buckets     prometheus.Gauge
}

// NewPrometheusStats registers the matrix collectors on reg under namespace.
// Registering two instances with the same namespace on one registry panics,
// as with any duplicate prometheus registration.
func NewPrometheusStats(reg prometheus.Registerer, namespace string) *PrometheusStats {
	f := promauto.With(reg)

	return &PrometheusStats{
		inserts: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inserts_total",
			Help:      "Total number of elements inserted",
		}),
		removals: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "removals_total",
			Help:      "Total number of elements removed by identity",
		}),
		updates: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "updates_total",
			Help:      "Total number of priority updates",
		}),
		extractions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "extractions_total",
			Help:      "Total number of elements extracted from either end",
		}, []string{"end"}),
		duplicates: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "duplicates_rejected_total",
			Help:      "Total number of inserts rejected because the element was present",
		}),
		elements: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "elements",
			Help:      "Number of elements currently held",
		}),
		buckets: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "buckets",
			Help:      "Number of distinct priority keys currently held",
		}),
	}
}

func (s *PrometheusStats) RecordInsert() { s.inserts.Inc() }
func (s *PrometheusStats) RecordRemove() { s.removals.Inc() }
func (s *PrometheusStats) RecordUpdate() { s.updates.Inc() }
func (s *PrometheusStats) RecordDuplicate() { s.duplicates.Inc() }

func (s *PrometheusStats) RecordExtract(end string) {
	s.extractions.WithLabelValues(end).Inc()
}

func (s *PrometheusStats) SetOccupancy(elements, buckets int) {
	s.elements.Set(float64(elements))
	s.buckets.Set(float64(buckets))
}

type nopStats struct{}

// NopStats returns Stats that records nothing.
func NopStats() Stats { return nopStats{} }

func (nopStats) RecordInsert() {}
func (nopStats) RecordRemove() {}
func (nopStats) RecordUpdate() {}
func (nopStats) RecordExtract(string) {}
func (nopStats) RecordDuplicate() {}
func (nopStats) SetOccupancy(int, int) {}
