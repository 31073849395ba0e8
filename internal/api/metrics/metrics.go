// Package metrics defines and registers all custom Prometheus metrics for
// the social API. It is the single source of truth for metric names, labels,
// and help strings. Registration happens at import time via promauto; the
// echoprometheus middleware contributes the per-request HTTP metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "social"

// AccountsCreatedTotal counts successful account registrations.
var AccountsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_created_total",
		Help:      "Total number of accounts created.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "failed"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthFailuresTotal counts rejected credentials at the auth middleware.
// Label:
//   - reason: "malformed" (no credential found) or "unauthorized"
//     (credential present but failed verification)
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by the auth middleware, by reason.",
	},
	[]string{"reason"},
)

// TweetsCreatedTotal counts newly created tweets and comments.
// Label:
//   - kind: "tweet" or "comment"
var TweetsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tweets_created_total",
		Help:      "Total number of posts created, by kind.",
	},
	[]string{"kind"},
)

// LikesToggledTotal counts like toggles.
// Label:
//   - action: "added" or "removed"
var LikesToggledTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "likes_toggled_total",
		Help:      "Total number of like toggles, by action taken.",
	},
	[]string{"action"},
)

// HashtagQueueDepth tracks the number of tags waiting in each fan-out
// worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var HashtagQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "hashtag_queue_depth",
		Help:      "Current number of hashtags pending in each fan-out worker channel.",
	},
	[]string{"worker_id"},
)
