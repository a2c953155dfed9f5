// Package metrics defines the Prometheus metrics exposed on /metrics.
// All metrics register with the default registry on package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gymcoach"

// ── Domain metrics ────────────────────────────────────────────────────────────

// UsersRegisteredTotal counts successful registrations.
// Label:
//   - role: "trainer" or "client"
var UsersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of registered users, by role.",
	},
	[]string{"role"},
)

// ContentCreatedTotal counts stored routines and meal plans.
// Labels:
//   - kind: "routine" or "plan"
//   - source: "auto" (goal template) or "custom" (trainer-authored)
//   - profile: goal profile for auto content, "none" for custom
var ContentCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "content_created_total",
		Help:      "Total number of routines and meal plans created.",
	},
	[]string{"kind", "source", "profile"},
)

// LinksTotal counts successful client-trainer links, including re-links.
var LinksTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "links_total",
		Help:      "Total number of client to trainer links.",
	},
)

// PermissionDeniedTotal counts guard rejections.
// Label:
//   - operation: "custom_routine" or "custom_plan"
var PermissionDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "permission_denied_total",
		Help:      "Total number of personalized-content requests rejected for an unlinked trainer.",
	},
	[]string{"operation"},
)

// ProgressRecordsTotal counts stored progress records.
var ProgressRecordsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "progress_records_total",
		Help:      "Total number of progress records stored.",
	},
)

// ReportsExportedTotal counts client workbooks.
// Label:
//   - delivery: "download" or "s3"
var ReportsExportedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_exported_total",
		Help:      "Total number of client reports exported, by delivery.",
	},
	[]string{"delivery"},
)

// ── HTTP metrics ──────────────────────────────────────────────────────────────

// HTTPRequestsTotal counts handled requests.
// Labels:
//   - method, route (gin route template, "unmatched" for 404s), status
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests handled.",
	},
	[]string{"method", "route", "status"},
)

// HTTPRequestDuration measures handler latency.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)
