// Package metrics defines and registers the custom Prometheus metrics for the
// billable service. It is the single source of truth for metric names, labels
// and help strings. All metrics register with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "billable"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SessionVerificationsTotal counts session cookie checks.
// Label:
//   - result: "valid", "missing", "expired", "tampered", "revoked", "unknown_user" or "error"
var SessionVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_verifications_total",
		Help:      "Total number of session verifications, by result.",
	},
	[]string{"result"},
)

// ── Time tracking metrics ─────────────────────────────────────────────────────

// TimeEntriesCreatedTotal counts time entries stored.
var TimeEntriesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "time_entries_created_total",
		Help:      "Total number of time entries created.",
	},
)

// TimeEntriesRejectedTotal counts refused time-log submissions.
// Label:
//   - reason: "forbidden", "validation", "project_not_found" or "error"
var TimeEntriesRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "time_entries_rejected_total",
		Help:      "Total number of rejected time-log submissions, by reason.",
	},
	[]string{"reason"},
)

// ViewBuildDuration measures how long a page's data takes to assemble.
// Label:
//   - view: "dashboard", "projects", "timelogs", "invoices" or "reports"
var ViewBuildDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "view_build_duration_seconds",
		Help:      "Duration of loading and aggregating the data behind a page.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"view"},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditQueueDepth tracks audit events waiting in each dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// AuditEventsTotal counts audit events by outcome.
// Label:
//   - result: "written", "failed" or "dropped"
var AuditEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_total",
		Help:      "Total number of audit events handled by the dispatcher, by result.",
	},
	[]string{"result"},
)
