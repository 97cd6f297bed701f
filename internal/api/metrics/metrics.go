// Package metrics defines all custom Prometheus metrics for the
// dashboard API. It is the single source of truth for metric names,
// labels, and help strings; registration happens on import via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dbudget"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthzDenialsTotal counts requests rejected by the authorization policy.
// Labels:
//   - resource: "objects" or "users"
//   - reason: "unauthenticated", "forbidden", or "self_deletion"
var AuthzDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_denials_total",
		Help:      "Total number of requests denied by the authorization policy.",
	},
	[]string{"resource", "reason"},
)

// ── Resource metrics ──────────────────────────────────────────────────────────

// ObjectsCreatedTotal counts newly created construction objects.
var ObjectsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "objects_created_total",
		Help:      "Total number of construction objects created.",
	},
)

// UsersCreatedTotal counts newly created accounts.
// Label:
//   - role: "admin" or "client"
var UsersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of accounts created, by role.",
	},
	[]string{"role"},
)
