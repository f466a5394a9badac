package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	// Collection mutations
	CollectionMutationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "collection_mutations_total",
			Help: "Total successful collection mutations",
		},
		[]string{"collection", "op"}, // favorites|watchlist|reviews, add|remove|upsert|delete
	)

	// Metadata gateway
	GatewayFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "metadata_gateway_failures_total",
			Help: "Total failed metadata gateway requests",
		},
	)
)

// Handler serves the /metrics endpoint.
var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(CollectionMutationsTotal)
	prometheus.MustRegister(GatewayFailures)
}
