// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SectionsValidated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wizard_sections_validated_total",
			Help: "Total number of section validation passes",
		},
		[]string{"section", "result"},
	)

	ValidationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wizard_validation_errors_total",
			Help: "Total number of field validation errors surfaced",
		},
		[]string{"section"},
	)

	Submissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wizard_submissions_total",
			Help: "Total number of final submissions by outcome",
		},
		[]string{"result"},
	)

	SubmissionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "wizard_submission_duration_seconds",
			Help: "Duration of gateway submission calls in seconds",
		},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "wizard_active_sessions",
			Help: "Number of wizard sessions currently held in memory",
		},
	)
)
