package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "folio_redis_error_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// CacheLookups counts cache-aside lookups by key prefix and outcome.
	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "folio_cache_lookups_total",
		Help: "Total number of cache lookups by key prefix and outcome (hit/miss)",
	}, []string{"prefix", "outcome"})

	// ContactMessagesReceived counts contact messages accepted from visitors.
	ContactMessagesReceived = promauto.NewCounter(prometheus.CounterOpts{
		Name: "folio_contact_messages_received_total",
		Help: "Total number of contact messages accepted from portfolio visitors",
	})

	// PortfolioViews counts public portfolio page loads by outcome.
	PortfolioViews = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "folio_portfolio_views_total",
		Help: "Total number of public portfolio lookups by outcome (found/not_found)",
	}, []string{"outcome"})
)
