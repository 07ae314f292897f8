package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistered(t *testing.T) {
	assert.NotNil(t, RequestDuration)
	assert.NotNil(t, Validations)
	assert.NotNil(t, Formats)
	assert.NotNil(t, CheckDigits)
	assert.NotNil(t, ActiveConnections)
}

func TestMetricsUpdate(t *testing.T) {
	// Should not panic
	Validations.WithLabelValues("valid").Inc()
	Validations.WithLabelValues("checksum_mismatch").Inc()
	Formats.WithLabelValues("compact").Inc()
	Formats.WithLabelValues("grouped").Inc()
	CheckDigits.Inc()
	ActiveConnections.Inc()
	ActiveConnections.Dec()
	RequestDuration.WithLabelValues("/v1/rut/validate", "POST", "200").Observe(0.001)
}
