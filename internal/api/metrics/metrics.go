// Package metrics defines the custom Prometheus metrics of the portfolio API.
// HTTP request metrics come from echoprometheus; everything here is
// domain-level and registered on the default registry via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portfolio"

// ── Authorization pipeline ────────────────────────────────────────────────────

// AuthRejectionsTotal counts requests stopped by the authorization pipeline.
// Label:
//   - reason: "no_token", "token_failed", "token_revoked", "user_not_found" or "role"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by the authorization pipeline, by reason.",
	},
	[]string{"reason"},
)

// IdentityLookupDuration measures the single identity lookup performed per
// authenticated request.
var IdentityLookupDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "identity_lookup_duration_seconds",
		Help:      "Duration of the identity store lookup during authentication.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ── Projects ──────────────────────────────────────────────────────────────────

// ProjectsCreatedTotal counts projects persisted through the API.
var ProjectsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "projects_created_total",
		Help:      "Total number of projects created.",
	},
)
