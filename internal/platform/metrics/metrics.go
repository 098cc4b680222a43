package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	diagnosesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "diagnoses_total",
			Help: "Total number of completed diagnoses",
		},
		[]string{"tier", "urgency"},
	)

	intakeRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intake_rejections_total",
			Help: "Total number of symptom reports rejected by validation",
		},
		[]string{"kind"},
	)

	historyClearedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "history_cleared_total",
			Help: "Total number of administrative history clears",
		},
	)
)

// Handler returns the Prometheus metrics HTTP handler.
func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}

// Middleware records request counts, latencies, and in-flight requests.
// Paths are labelled by route template, not raw URL, to keep cardinality low.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			httpRequestsInFlight.Inc()
			defer httpRequestsInFlight.Dec()

			err := next(c)

			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}
			status := c.Response().Status
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}

			httpRequestsTotal.WithLabelValues(c.Request().Method, path, strconv.Itoa(status)).Inc()
			httpRequestDuration.WithLabelValues(c.Request().Method, path).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

// RecordDiagnosis records a completed diagnosis.
func RecordDiagnosis(tier, urgency string) {
	diagnosesTotal.WithLabelValues(tier, urgency).Inc()
}

// RecordIntakeRejection records a validation rejection by rule kind.
func RecordIntakeRejection(kind string) {
	intakeRejectionsTotal.WithLabelValues(kind).Inc()
}

// RecordHistoryCleared records an administrative history clear.
func RecordHistoryCleared() {
	historyClearedTotal.Inc()
}
