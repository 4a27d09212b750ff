package service

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"promoapi/internal/model"
)

// Recorder receives generation metrics.
type Recorder interface {
	// ObserveStage records how long a stage took.
	ObserveStage(stage model.Stage, d time.Duration)
	// RecordOutcome counts a finished request; an empty kind means success.
	RecordOutcome(kind model.ErrorKind)
}

type noopRecorder struct{}

func (noopRecorder) ObserveStage(model.Stage, time.Duration) {}
func (noopRecorder) RecordOutcome(model.ErrorKind)           {}

// PrometheusRecorder exports generation metrics to Prometheus.
type PrometheusRecorder struct {
	outcomes      *prometheus.CounterVec
	stageDuration *prometheus.HistogramVec
}

// NewPrometheusRecorder creates a PrometheusRecorder and registers its collectors.
func NewPrometheusRecorder(reg prometheus.Registerer) (*PrometheusRecorder, error) {
	r := &PrometheusRecorder{
		outcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "promo_generations_total",
				Help: "Total number of generation requests by outcome.",
			},
			[]string{"outcome"},
		),
		stageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "promo_stage_duration_seconds",
				Help:    "Duration of generation stages in seconds.",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 30},
			},
			[]string{"stage"},
		),
	}

	for _, c := range []prometheus.Collector{r.outcomes, r.stageDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *PrometheusRecorder) ObserveStage(stage model.Stage, d time.Duration) {
	r.stageDuration.WithLabelValues(string(stage)).Observe(d.Seconds())
}

func (r *PrometheusRecorder) RecordOutcome(kind model.ErrorKind) {
	outcome := "ok"
	if kind != "" {
		outcome = string(kind)
	}
	r.outcomes.WithLabelValues(outcome).Inc()
}
