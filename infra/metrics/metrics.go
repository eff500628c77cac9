package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the marketplace-specific collectors.
	Registry = prometheus.NewRegistry()

	listingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "agora",
			Subsystem: "market",
			Name:      "listings_created_total",
			Help:      "Total number of listings recorded in the ledger.",
		},
	)

	salesSettled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "agora",
			Subsystem: "market",
			Name:      "sales_settled_total",
			Help:      "Total number of successfully settled purchases.",
		},
	)

	operationFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "agora",
			Subsystem: "market",
			Name:      "operation_failures_total",
			Help:      "Rejected operations by reason.",
		},
		[]string{"op", "reason"},
	)

	listingCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "agora",
			Subsystem: "market",
			Name:      "listing_count",
			Help:      "Last assigned listing id.",
		},
	)
)

func init() {
	Registry.MustRegister(
		listingsCreated,
		salesSettled,
		operationFailures,
		listingCount,
	)
}

func ListingCreated(count uint64) {
	listingsCreated.Inc()
	listingCount.Set(float64(count))
}

func SaleSettled() {
	salesSettled.Inc()
}

func OperationFailed(op, reason string) {
	operationFailures.WithLabelValues(op, reason).Inc()
}

// Handler serves the registry for cmd/server's metrics listener.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
