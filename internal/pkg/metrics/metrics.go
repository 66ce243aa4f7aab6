// Package metrics exposes the service's Prometheus instruments on a private registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "orderflow"

type ServerMetrics struct {
	Requests  *prometheus.CounterVec
	LatencyMS *prometheus.HistogramVec

	OrdersCreated    prometheus.Counter
	PaymentsRecorded prometheus.Counter
	OrdersPromoted   prometheus.Counter
	SweepFailures    prometheus.Counter

	registry *prometheus.Registry
}

func NewServerMetrics(service string) *ServerMetrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: service,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"handler", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: service,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"handler"})
	ordersCreated := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: service,
		Name:      "orders_created_total",
		Help:      "Orders accepted in PENDING status.",
	})
	paymentsRecorded := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: service,
		Name:      "payments_recorded_total",
		Help:      "Payments applied to orders.",
	})
	ordersPromoted := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: service,
		Name:      "orders_promoted_total",
		Help:      "Fully paid orders moved to PROCESSING by the reconciliation sweep.",
	})
	sweepFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: service,
		Name:      "sweep_failures_total",
		Help:      "Reconciliation sweep ticks that ended in an error.",
	})

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		requests, latency,
		ordersCreated, paymentsRecorded, ordersPromoted, sweepFailures,
	)

	return &ServerMetrics{
		Requests:         requests,
		LatencyMS:        latency,
		OrdersCreated:    ordersCreated,
		PaymentsRecorded: paymentsRecorded,
		OrdersPromoted:   ordersPromoted,
		SweepFailures:    sweepFailures,
		registry:         registry,
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *ServerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Gatherer gives tests direct access to the collected families.
func (m *ServerMetrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// Middleware counts every request by route template and final status.
func (m *ServerMetrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			handler := c.Path()
			if handler == "" {
				handler = "unmatched"
			}
			status := strconv.Itoa(c.Response().Status)
			m.Requests.WithLabelValues(handler, status).Inc()
			m.LatencyMS.WithLabelValues(handler).Observe(float64(time.Since(start).Milliseconds()))

			return nil
		}
	}
}
