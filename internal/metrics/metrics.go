package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	OrdersUploaded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_uploaded_total",
			Help: "Order headers persisted by successful upload batches",
		},
	)

	OrderBatchesRolledBack = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "order_batches_rolled_back_total",
			Help: "Upload batches aborted and rolled back",
		},
	)
)
