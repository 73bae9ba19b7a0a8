// Package metrics defines and registers all custom Prometheus metrics for
// the trade journal API. It is the single source of truth for metric names,
// labels, and help strings. Metrics are registered with the default registry
// at package load via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tradelog"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid" (bad credentials), or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// UsersRegisteredTotal counts successfully registered accounts.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of user accounts created.",
	},
)

// ── Trade metrics ─────────────────────────────────────────────────────────────

// TradesCreatedTotal counts newly recorded trades.
// Label:
//   - type: "Long" or "Short"
var TradesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "trades_created_total",
		Help:      "Total number of trades created, by position type.",
	},
	[]string{"type"},
)

// TradesDeletedTotal counts deleted trades.
var TradesDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "trades_deleted_total",
		Help:      "Total number of trades deleted.",
	},
)

// TradeErrorsTotal counts failed trade operations.
// Label:
//   - reason: short description ("forbidden", "create_failed", "update_failed", "delete_failed")
var TradeErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "trade_errors_total",
		Help:      "Total number of trade operations that failed.",
	},
	[]string{"reason"},
)
