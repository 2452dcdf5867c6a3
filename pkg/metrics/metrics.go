package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "skillsphere",
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	IdentityRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "skillsphere",
		Name:      "identity_rejections_total",
		Help:      "Bearer tokens that resolved to no principal, by reason.",
	}, []string{"reason"})

	Reactions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "skillsphere",
		Name:      "reactions_total",
		Help:      "Reaction transitions by outcome.",
	}, []string{"outcome"})

	ReactionRetries = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "skillsphere",
		Name:      "reaction_retries_total",
		Help:      "Reaction transactions retried after a unique key conflict.",
	})

	CascadeDeletes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "skillsphere",
		Name:      "cascade_deleted_rows_total",
		Help:      "Rows removed by cascading deletes, by table.",
	}, []string{"table"})

	SubscriptionsExpired = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "skillsphere",
		Name:      "subscriptions_expired_total",
		Help:      "Subscriptions deactivated by the expiry sweep.",
	})
)
