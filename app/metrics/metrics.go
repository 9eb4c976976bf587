// Package metrics provides Prometheus metrics for the stayin session core.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SignInsTotal counts sign-in attempts by outcome.
	SignInsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stayin",
			Name:      "sign_ins_total",
			Help:      "Total number of sign-in attempts",
		},
		[]string{"status"},
	)

	// SignUpsTotal counts registration attempts by outcome.
	SignUpsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stayin",
			Name:      "sign_ups_total",
			Help:      "Total number of registration attempts",
		},
		[]string{"status"},
	)

	// RedirectsTotal counts role-router redirects by destination.
	RedirectsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stayin",
			Name:      "redirects_total",
			Help:      "Total number of role-router redirects",
		},
		[]string{"destination"},
	)

	// GuardDenialsTotal counts per-root guard denials by tree.
	GuardDenialsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stayin",
			Name:      "guard_denials_total",
			Help:      "Total number of role-tree guard denials",
		},
		[]string{"tree"},
	)

	// ReadinessStatus tracks the startup readiness gate (1 = ready).
	ReadinessStatus = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "stayin",
			Name:      "readiness_status",
			Help:      "Startup readiness gate (1 = all startup tasks settled)",
		},
	)
)

// RecordSignIn records a sign-in attempt.
func RecordSignIn(status string) {
	SignInsTotal.WithLabelValues(status).Inc()
}

// RecordSignUp records a registration attempt.
func RecordSignUp(status string) {
	SignUpsTotal.WithLabelValues(status).Inc()
}

// RecordRedirect records a role-router redirect.
func RecordRedirect(destination string) {
	RedirectsTotal.WithLabelValues(destination).Inc()
}

// RecordGuardDenial records a guard denial for a role tree.
func RecordGuardDenial(tree string) {
	GuardDenialsTotal.WithLabelValues(tree).Inc()
}

// SetReady marks the readiness gauge as ready.
func SetReady() {
	ReadinessStatus.Set(1)
}
