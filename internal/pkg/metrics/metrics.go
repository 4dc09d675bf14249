package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the admission pipeline.
type Metrics struct {
	// Verification outcomes by resulting document status
	VerificationOutcome *prometheus.CounterVec

	// Shortlisting decisions by resulting admission status
	ShortlistingDecision *prometheus.CounterVec

	// Loan evaluations by qualification result
	LoanEvaluation *prometheus.CounterVec

	// Oracle call latency by role
	OracleLatency *prometheus.HistogramVec

	// Oracle failures by role
	OracleFailures *prometheus.CounterVec
}

// New creates a Metrics instance with all pipeline metrics registered.
func New() *Metrics {
	return &Metrics{
		VerificationOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "admitflow_verification_outcomes_total",
			Help: "Total document verification outcomes by status",
		}, []string{"status"}),

		ShortlistingDecision: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "admitflow_shortlisting_decisions_total",
			Help: "Total shortlisting decisions by resulting admission status",
		}, []string{"status"}),

		LoanEvaluation: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "admitflow_loan_evaluations_total",
			Help: "Total loan evaluations by qualification result",
		}, []string{"qualified"}),

		OracleLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "admitflow_oracle_duration_seconds",
			Help:    "Duration of decision oracle calls by role",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"role"}),

		OracleFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "admitflow_oracle_failures_total",
			Help: "Total decision oracle call failures by role",
		}, []string{"role"}),
	}
}

// ObserveOracle records the duration of one oracle call.
func (m *Metrics) ObserveOracle(role string, d time.Duration, err error) {
	if m == nil {
		return
	}
	m.OracleLatency.WithLabelValues(role).Observe(d.Seconds())
	if err != nil {
		m.OracleFailures.WithLabelValues(role).Inc()
	}
}

// CountVerification records one verification outcome.
func (m *Metrics) CountVerification(status string) {
	if m != nil {
		m.VerificationOutcome.WithLabelValues(status).Inc()
	}
}

// CountShortlisting records one shortlisting decision.
func (m *Metrics) CountShortlisting(status string) {
	if m != nil {
		m.ShortlistingDecision.WithLabelValues(status).Inc()
	}
}

// CountLoanEvaluation records one loan evaluation.
func (m *Metrics) CountLoanEvaluation(qualified bool) {
	if m != nil {
		if qualified {
			m.LoanEvaluation.WithLabelValues("true").Inc()
			return
		}
		m.LoanEvaluation.WithLabelValues("false").Inc()
	}
}
