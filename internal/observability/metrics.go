// Package observability provides Prometheus metrics for the calculator.
//
// Metrics are registered on a caller-supplied registerer so tests can use an
// isolated registry; the server registers them on the default registry and
// exposes them at /metrics.
//
// All metric operations are thread-safe via Prometheus's internal locking.
package observability

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"romancalc/internal/calc"
	"romancalc/internal/domain"
	"romancalc/internal/roman"
)

const metricsNamespace = "romancalc"

const calculatorSubsystem = "calculator"

// CalculatorMetrics counts actions and evaluations.
type CalculatorMetrics struct {
	// ActionsTotal counts accepted actions.
	// Labels: kind (symbol, clear, add, subtract, calculate)
	ActionsTotal *prometheus.CounterVec

	// EvaluationsTotal counts calculations by operator and outcome.
	// Labels: operator (add, subtract), outcome (ok, out_of_range, invalid)
	EvaluationsTotal *prometheus.CounterVec

	// StoreErrorsTotal counts failed session loads and saves.
	// Labels: op (load, save, delete)
	StoreErrorsTotal *prometheus.CounterVec
}

// NewCalculatorMetrics creates the metrics and registers them on reg.
// A nil reg leaves them unregistered.
func NewCalculatorMetrics(reg prometheus.Registerer) *CalculatorMetrics {
	m := &CalculatorMetrics{
		ActionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: calculatorSubsystem,
				Name:      "actions_total",
				Help:      "Total calculator actions by kind",
			},
			[]string{"kind"},
		),
		EvaluationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: calculatorSubsystem,
				Name:      "evaluations_total",
				Help:      "Total calculations by operator and outcome",
			},
			[]string{"operator", "outcome"},
		),
		StoreErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: calculatorSubsystem,
				Name:      "store_errors_total",
				Help:      "Total session store failures by operation",
			},
			[]string{"op"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.ActionsTotal, m.EvaluationsTotal, m.StoreErrorsTotal)
	}
	return m
}

// RecordAction counts a and, when ev ran, its outcome. Safe on a nil receiver.
func (m *CalculatorMetrics) RecordAction(a domain.Action, ev calc.Evaluation) {
	if m == nil {
		return
	}
	kind := "symbol"
	if a.Kind != domain.ActionSymbol {
		kind = a.String()
	}
	m.ActionsTotal.WithLabelValues(kind).Inc()
	if ev.Ran {
		m.EvaluationsTotal.WithLabelValues(ev.Operator.String(), Outcome(ev.Err)).Inc()
	}
}

// RecordStoreError counts a failed store operation. Safe on a nil receiver.
func (m *CalculatorMetrics) RecordStoreError(op string) {
	if m == nil {
		return
	}
	m.StoreErrorsTotal.WithLabelValues(op).Inc()
}

// Outcome classifies an evaluation error for the outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, roman.ErrOutOfRange):
		return "out_of_range"
	}
	return "invalid"
}
