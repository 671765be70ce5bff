// Package metrics holds the Prometheus collectors for authentication outcomes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values.
const (
	OutcomeSuccess   = "success"
	OutcomeDuplicate = "duplicate"
	OutcomeInvalid   = "invalid_credentials"
	OutcomeError     = "error"
)

// Auth groups the auth counters. A nil *Auth is valid and records nothing,
// which keeps unit tests free of registry plumbing.
type Auth struct {
	Registrations *prometheus.CounterVec
	Logins        *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
// Panics if registration fails (following prometheus convention).
func New(reg prometheus.Registerer) *Auth {
	m := &Auth{
		Registrations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authkit_registrations_total",
				Help: "Registration attempts by outcome",
			},
			[]string{"outcome"},
		),
		Logins: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authkit_logins_total",
				Help: "Login attempts by outcome",
			},
			[]string{"outcome"},
		),
	}
	reg.MustRegister(m.Registrations, m.Logins)
	return m
}

// Registration records a register attempt.
func (m *Auth) Registration(outcome string) {
	if m == nil {
		return
	}
	m.Registrations.WithLabelValues(outcome).Inc()
}

// Login records a login attempt.
func (m *Auth) Login(outcome string) {
	if m == nil {
		return
	}
	m.Logins.WithLabelValues(outcome).Inc()
}
