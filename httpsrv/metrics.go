package httpsrv

import "github.com/prometheus/client_golang/prometheus"

// run outcomes
const (
	outcomeOK      = "ok"
	outcomeInvalid = "invalid"
	outcomeBusy    = "busy"
)

type metrics struct {
	runs   *prometheus.CounterVec
	values prometheus.Counter
	period prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lcgen",
			Name:      "runs_total",
			Help:      "Generation requests by outcome.",
		}, []string{"outcome"}),
		values: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lcgen",
			Name:      "values_generated_total",
			Help:      "Values emitted across all runs.",
		}),
		period: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "lcgen",
			Name:      "period",
			Help:      "Detected cycle lengths. Runs without a detected cycle are not observed.",
			Buckets:   prometheus.ExponentialBuckets(1, 10, 7),
		}),
	}
	reg.MustRegister(m.runs, m.values, m.period)
	return m
}
