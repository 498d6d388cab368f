package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

func init() {
	prometheus.MustRegister(
		paymentsTotal,
		creditsDebitedTotal,
		creditsReleasedTotal,
		submissionsTotal,
	)
}

var (
	paymentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taxgate_payments_total",
			Help: "Settled payments by terminal status.",
		},
		[]string{"status"}, // 'COMPLETED', 'FAILED'
	)

	creditsDebitedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "taxgate_credits_debited_total",
			Help: "Submission credits consumed by created submissions.",
		},
	)

	creditsReleasedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "taxgate_credits_released_total",
			Help: "Submission credits returned by compensation after a failed create.",
		},
	)

	submissionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taxgate_submissions_total",
			Help: "Submission lifecycle transitions by resulting status.",
		},
		[]string{"status"}, // 'CREATED', 'PROCESSING', 'COMPLETED', 'FAILED'
	)
)

func IncPayments(status string) {
	paymentsTotal.WithLabelValues(status).Inc()
}

func IncCreditsDebited() {
	creditsDebitedTotal.Inc()
}

func IncCreditsReleased() {
	creditsReleasedTotal.Inc()
}

func IncSubmissions(status string) {
	submissionsTotal.WithLabelValues(status).Inc()
}
