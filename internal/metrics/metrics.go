// Package metrics provides Prometheus metrics collection for the pallet service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// PackRunsTotal tracks total packing runs by shipping mode.
	PackRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pack_runs_total",
			Help: "Total number of packing runs",
		},
		[]string{"status", "shipping_mode"},
	)

	// PackDuration tracks packing run duration.
	PackDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pack_duration_seconds",
			Help:    "Packing run duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
	)

	// PalletsPerRun tracks how many pallets each run produced.
	PalletsPerRun = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pallets_per_run",
			Help:    "Pallet count per packing run",
			Buckets: []float64{1, 2, 3, 5, 8, 13, 21, 34},
		},
	)

	// ItemsPerRun tracks how many items each run placed.
	ItemsPerRun = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "items_per_run",
			Help:    "Item count per packing run",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500},
		},
	)

	// UnknownItemRunsTotal counts runs that contained unknown SKUs.
	UnknownItemRunsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "unknown_item_runs_total",
			Help: "Total number of packing runs containing unknown SKUs",
		},
	)

	// ValidationsTotal tracks validation reconciliations by outcome.
	ValidationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "validations_total",
			Help: "Total number of shipment validations",
		},
		[]string{"outcome"},
	)

	// ValidationPalletDelta tracks the predicted-minus-actual pallet delta.
	ValidationPalletDelta = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "validation_pallet_delta",
			Help:    "Predicted minus actual pallet count per validation",
			Buckets: []float64{-5, -3, -2, -1, 0, 1, 2, 3, 5},
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordPack records metrics for a successful packing run.
func RecordPack(duration time.Duration, pallets, items int, shippingMode string) {
	PackDuration.Observe(duration.Seconds())
	PalletsPerRun.Observe(float64(pallets))
	ItemsPerRun.Observe(float64(items))
	PackRunsTotal.WithLabelValues("success", shippingMode).Inc()
}

// RecordPackError records a failed packing run.
func RecordPackError() {
	PackRunsTotal.WithLabelValues("error", "none").Inc()
}

// RecordUnknownItems marks a run that contained unknown SKUs.
func RecordUnknownItems() {
	UnknownItemRunsTotal.Inc()
}

// RecordValidation records a completed validation reconciliation.
func RecordValidation(palletDelta int, exact, withinOne bool) {
	outcome := "off"
	switch {
	case exact:
		outcome = "exact"
	case withinOne:
		outcome = "within_one"
	}
	ValidationsTotal.WithLabelValues(outcome).Inc()
	ValidationPalletDelta.Observe(float64(palletDelta))
}
