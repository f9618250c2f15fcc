package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	leadCaptureFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "aproi_lead_capture_failures_total",
		Help: "Lead capture attempts that failed while the report was still delivered.",
	})

	reportsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "aproi_reports_generated_total",
		Help: "Successfully rendered scenario reports.",
	})
)
