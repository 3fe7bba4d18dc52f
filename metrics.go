package bloom

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments updated by an instrumented
// filter. Filters never require metrics; wrap one with Instrument to
// opt in.
type Metrics struct {
	// Adds counts items actually inserted.
	Adds prometheus.Counter
	// SuppressedAdds counts inserts skipped because a prior hit
	// (possibly a false positive) claimed the item was present.
	SuppressedAdds prometheus.Counter
	// Queries counts lookups by result ("hit" or "miss").
	Queries *prometheus.CounterVec
	// Growths counts stages appended by a Scalable filter.
	Growths prometheus.Counter
	// Stages is the current stage count of a Scalable filter.
	Stages prometheus.Gauge
	// BitsSet is the number of bits set across the filter.
	BitsSet prometheus.Gauge
	// EstimatedItems is the fill estimator's distinct item count.
	EstimatedItems prometheus.Gauge
}

// NewMetrics registers the bloom instruments with reg. Using an
// explicit registerer keeps multiple filters (and tests) from
// colliding in the default registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Adds: factory.NewCounter(prometheus.CounterOpts{
			Name: "bloom_adds_total",
			Help: "The total number of items inserted into the filter",
		}),
		SuppressedAdds: factory.NewCounter(prometheus.CounterOpts{
			Name: "bloom_suppressed_adds_total",
			Help: "The total number of inserts suppressed by a prior membership hit",
		}),
		Queries: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bloom_queries_total",
			Help: "The total number of membership queries",
		}, []string{"result"}),
		Growths: factory.NewCounter(prometheus.CounterOpts{
			Name: "bloom_growths_total",
			Help: "The total number of stages appended to the filter",
		}),
		Stages: factory.NewGauge(prometheus.GaugeOpts{
			Name: "bloom_stages",
			Help: "The current number of filter stages",
		}),
		BitsSet: factory.NewGauge(prometheus.GaugeOpts{
			Name: "bloom_bits_set",
			Help: "The number of bits currently set across the filter",
		}),
		EstimatedItems: factory.NewGauge(prometheus.GaugeOpts{
			Name: "bloom_estimated_items",
			Help: "The fill estimator's approximate distinct item count",
		}),
	}
}

// Instrument wraps f so every Add and Query updates m. The Scalable
// gauges (stages, bits set, estimated items) and the growth and
// suppression counters only move when f is a *Scalable; for other
// filters only Adds and Queries are recorded.
func Instrument(f Filter, m *Metrics) Filter {
	return &instrumented{f: f, m: m}
}

type instrumented struct {
	f Filter
	m *Metrics
}

func (i *instrumented) Add(item any) error {
	s, ok := i.f.(*Scalable)
	if !ok {
		if err := i.f.Add(item); err != nil {
			return err
		}
		i.m.Adds.Inc()
		return nil
	}
	inserted, grew, err := s.add(item)
	if err != nil {
		return err
	}
	if inserted {
		i.m.Adds.Inc()
	} else {
		i.m.SuppressedAdds.Inc()
	}
	if grew {
		i.m.Growths.Inc()
	}
	i.m.Stages.Set(float64(s.Len()))
	i.m.BitsSet.Set(float64(s.SetBits()))
	i.m.EstimatedItems.Set(s.EstimatedItems())
	return nil
}

func (i *instrumented) Query(item any) (bool, error) {
	ok, err := i.f.Query(item)
	if err != nil {
		return false, err
	}
	result := "miss"
	if ok {
		result = "hit"
	}
	i.m.Queries.WithLabelValues(result).Inc()
	return ok, nil
}
