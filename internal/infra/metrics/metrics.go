// Package metrics defines the prometheus instrumentation for the engine.
package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/example/rcb/internal/ports/secondary"
)

// Metrics holds the counters bumped by the application services.
type Metrics struct {
	BagsProduced *prometheus.CounterVec
	BagsShipped  *prometheus.CounterVec
}

// New registers and returns the service counters.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		BagsProduced: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rcb_bags_produced_total",
			Help: "Bags recorded by production stations.",
		}, []string{"product"}),
		BagsShipped: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rcb_bags_shipped_total",
			Help: "Bags confirmed shipped.",
		}, []string{"product"}),
	}
}

// PoolCollector reports slot occupancy from the store at scrape time, so the
// gauge can never drift from the actual pool state.
type PoolCollector struct {
	locations secondary.LocationRepository
	available *prometheus.Desc
	occupied  *prometheus.Desc
}

// NewPoolCollector creates a collector over the given location repository.
func NewPoolCollector(locations secondary.LocationRepository) *PoolCollector {
	return &PoolCollector{
		locations: locations,
		available: prometheus.NewDesc("rcb_pool_available_slots", "Free warehouse slots.", nil, nil),
		occupied:  prometheus.NewDesc("rcb_pool_occupied_slots", "Occupied warehouse slots.", nil, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *PoolCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.available
	ch <- c.occupied
}

// Collect implements prometheus.Collector.
func (c *PoolCollector) Collect(ch chan<- prometheus.Metric) {
	available, occupied, err := c.locations.CountByStatus(context.Background())
	if err != nil {
		return
	}
	ch <- prometheus.MustNewConstMetric(c.available, prometheus.GaugeValue, float64(available))
	ch <- prometheus.MustNewConstMetric(c.occupied, prometheus.GaugeValue, float64(occupied))
}
