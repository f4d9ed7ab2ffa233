// Package metrics defines the custom Prometheus metrics for the accounts API.
// It is the single source of truth for metric names, labels, and help strings.
// Metrics register themselves with the default registry at package init;
// echoprometheus exposes them on /metrics alongside the HTTP metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "accounts"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// TokensRejectedTotal counts bearer tokens rejected by the auth guard.
// Label:
//   - reason: "missing_header", "malformed_header", "invalid_token",
//     "unknown_user", "inactive_user"
var TokensRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_rejected_total",
		Help:      "Total number of bearer tokens rejected by the auth guard, by reason.",
	},
	[]string{"reason"},
)

// UsersCreatedTotal counts successfully registered users.
var UsersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of users created.",
	},
)

// RolesCreatedTotal counts successfully created roles.
var RolesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "roles_created_total",
		Help:      "Total number of roles created.",
	},
)
