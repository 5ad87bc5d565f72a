package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the game pass claim HTTP handler
	ClaimLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "gamepass_claim_latency_seconds",
		Help:    "Latency of game pass claim handler",
		Buckets: prometheus.DefBuckets,
	})

	// Claim attempts by outcome (claimed, already_claimed, rejection codes)
	ClaimOutcomes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gamepass_claim_outcomes_total",
		Help: "Total game pass claim attempts by outcome",
	}, []string{"outcome"})

	// Zen spent on skip-ahead unlocks
	SkipAheadZenSpent = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gamepass_skip_ahead_zen_spent_total",
		Help: "Total zen debited for skip-ahead claims",
	})
)

func Init() {
	prometheus.MustRegister(
		ClaimLatency,
		ClaimOutcomes,
		SkipAheadZenSpent,
	)
}
