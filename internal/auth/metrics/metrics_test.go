package metrics_test

import (
	"testing"

	"github.com/aussiebroadwan/authkit/internal/auth/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestAuthCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.Registration(metrics.OutcomeSuccess)
	m.Registration(metrics.OutcomeDuplicate)
	m.Registration(metrics.OutcomeDuplicate)
	m.Login(metrics.OutcomeInvalid)

	require.InDelta(t, 1, testutil.ToFloat64(m.Registrations.WithLabelValues(metrics.OutcomeSuccess)), 0)
	require.InDelta(t, 2, testutil.ToFloat64(m.Registrations.WithLabelValues(metrics.OutcomeDuplicate)), 0)
	require.InDelta(t, 1, testutil.ToFloat64(m.Logins.WithLabelValues(metrics.OutcomeInvalid)), 0)

	n, err := testutil.GatherAndCount(reg, "authkit_registrations_total", "authkit_logins_total")
	require.NoError(t, err)
	require.Equal(t, 3, n)
}

func TestNilAuthIsNoop(t *testing.T) {
	var m *metrics.Auth
	require.NotPanics(t, func() {
		m.Registration(metrics.OutcomeSuccess)
		m.Login(metrics.OutcomeError)
	})
}
