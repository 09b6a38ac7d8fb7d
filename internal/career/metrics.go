package career

import "github.com/prometheus/client_golang/prometheus"

// Operation outcomes.
const (
	OutcomeOK           = "ok"
	OutcomeInvalid      = "invalid_input"
	OutcomeRoleNotFound = "role_not_found"
	OutcomeError        = "error"
)

// Metrics counts service operations.
type Metrics struct {
	operations *prometheus.CounterVec
}

// NewMetrics creates the service counters and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pathwise_operations_total",
			Help: "Career engine operations by name and outcome.",
		}, []string{"operation", "outcome"}),
	}
	if reg != nil {
		reg.MustRegister(m.operations)
	}
	return m
}

// Observe counts one operation.
func (m *Metrics) Observe(operation, outcome string) {
	m.operations.WithLabelValues(operation, outcome).Inc()
}

// Operations exposes the counter vector, mainly for tests.
func (m *Metrics) Operations() *prometheus.CounterVec {
	return m.operations
}
