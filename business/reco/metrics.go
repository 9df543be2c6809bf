package reco

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	SourceFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reco_source_failures_total",
			Help: "Count of candidate generator failures (error or deadline) by source.",
		},
		[]string{"source"},
	)

	RerankOutcomesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reco_rerank_outcomes_total",
			Help: "Count of re-rank invocations by outcome (applied, failed).",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(SourceFailuresTotal, RerankOutcomesTotal)
}
