// Package metrics holds the prometheus collectors shared by the generation
// and pricing layers.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SystemsGenerated counts procedural system generations by outcome.
	SystemsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "spacetrade",
		Subsystem: "galaxy",
		Name:      "systems_generated_total",
		Help:      "Number of star systems generated, by outcome.",
	}, []string{"outcome"})

	// SystemsMaterialized counts get-or-create calls by result (created, existing, cached).
	SystemsMaterialized = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "spacetrade",
		Subsystem: "galaxy",
		Name:      "systems_materialized_total",
		Help:      "Number of materialize calls, by result.",
	}, []string{"result"})

	// PriceComputations observes the latency of full price pipeline runs.
	PriceComputations = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "spacetrade",
		Subsystem: "market",
		Name:      "price_computation_seconds",
		Help:      "Latency of market price computations.",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
	})

	// LedgerWrites counts delta applications against the price ledger.
	LedgerWrites = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "spacetrade",
		Subsystem: "market",
		Name:      "ledger_writes_total",
		Help:      "Number of price delta applications.",
	})
)
