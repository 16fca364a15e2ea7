package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CheckoutsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "checkouts_total",
		Help: "Total number of successfully finalized checkouts",
	})

	CheckoutsFailedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "checkouts_failed_total",
		Help: "Total number of failed checkout attempts",
	}, []string{"reason"})

	CheckoutValue = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "checkout_value_centavos",
		Help:    "Grand total of finalized checkouts in centavos",
		Buckets: prometheus.ExponentialBuckets(500, 2, 10),
	})

	CartOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_operations_total",
		Help: "Total number of cart mutations by operation",
	}, []string{"op"})

	CartDecodeFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cart_decode_failures_total",
		Help: "Total number of persisted carts that failed to decode and were treated as empty",
	})

	ShippingRateFetchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shipping_rate_fetches_total",
		Help: "Total number of shipping rate fetches by outcome",
	}, []string{"outcome"})

	OrderEventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "order_events_published_total",
		Help: "Total number of order events published by outcome",
	}, []string{"outcome"})

	OrdersNotifiedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orders_notified_total",
		Help: "Total number of order events seen by the notification worker",
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
