// Package metrics defines and registers all custom Prometheus metrics for the
// identity API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register with the default registry at package init; the router
// exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "identity"

// UsersCreatedTotal counts newly created user records.
// Label:
//   - role: the role assigned at creation ("admin", "user", "guest")
var UsersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of user records created, by role.",
	},
	[]string{"role"},
)

// ValidationVerdictsTotal counts candidate-mapping validation decisions.
// Label:
//   - result: "accepted" or "rejected"
var ValidationVerdictsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_verdicts_total",
		Help:      "Total number of validation verdicts, labelled by result.",
	},
	[]string{"result"},
)

// ProfileCacheTotal counts profile cache lookups.
// Label:
//   - result: "hit" (served from cache) or "miss" (remote fetch required)
var ProfileCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "profile_cache_total",
		Help:      "Total number of profile cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// ProfileFetchDuration measures how long a remote profile fetch takes.
// Label:
//   - result: "found", "absent", or "error"
var ProfileFetchDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "profile_fetch_duration_seconds",
		Help:      "Duration of remote profile fetches.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"result"},
)

// AuditEventsTotal counts audit events persisted by the pipeline.
// Label:
//   - action: the lifecycle action recorded (e.g. "user_created")
var AuditEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_total",
		Help:      "Total number of audit events persisted, by action.",
	},
	[]string{"action"},
)

// AuditQueueDepth tracks the current number of audit events waiting in each
// dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
