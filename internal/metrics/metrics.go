// README: Prometheus counters for the booking domain.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "camprent_bookings_created_total",
		Help: "Bookings accepted through the creation path.",
	})

	AvailabilityQueries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "camprent_availability_queries_total",
		Help: "Availability queries evaluated.",
	})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "camprent_http_requests_total",
		Help: "HTTP requests by method, path and status.",
	}, []string{"method", "path", "status"})
)
