package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "app_rut_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"path", "method", "status"},
	)

	// Validations tracks rut validations by outcome
	Validations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_rut_validations_total",
			Help: "Number of rut validations",
		},
		[]string{"outcome"},
	)

	// Formats tracks formatting operations by kind
	Formats = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_rut_formats_total",
			Help: "Number of rut formatting operations",
		},
		[]string{"kind"},
	)

	// CheckDigits tracks check digit computations
	CheckDigits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "app_rut_check_digits_total",
			Help: "Number of check digit computations",
		},
	)

	// ActiveConnections tracks active connections
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_rut_active_connections",
			Help: "Number of active connections",
		},
	)
)
