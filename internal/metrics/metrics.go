package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "status_code"},
	)

	httpRequestSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_size_bytes",
			Help:    "HTTP request size in bytes",
			Buckets: []float64{100, 500, 1000, 5000, 10000, 50000, 100000, 500000},
		},
		[]string{"method", "endpoint"},
	)

	httpResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "HTTP response size in bytes",
			Buckets: []float64{100, 500, 1000, 5000, 10000, 50000, 100000, 500000},
		},
		[]string{"method", "endpoint"},
	)

	// Catalog database metrics
	dbQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_queries_total",
			Help: "Total number of catalog database queries",
		},
		[]string{"operation", "status"},
	)

	dbQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Catalog database query duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"operation"},
	)

	// Business metrics
	inquiriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inquiries_total",
			Help: "Total number of inquiry submissions by outcome",
		},
		[]string{"outcome"}, // sent, invalid, unconfigured, failed
	)

	inquiryValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inquiry_validation_failures_total",
			Help: "Total number of inquiry field validation failures",
		},
		[]string{"field"},
	)

	emailSendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "email_send_duration_seconds",
			Help:    "Email provider call duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"provider", "status"},
	)

	pageViewsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "page_views_total",
			Help: "Total number of rendered pages",
		},
		[]string{"page", "result"}, // result: found, not_found
	)
)

// Inquiry outcomes
const (
	OutcomeSent         = "sent"
	OutcomeInvalid      = "invalid"
	OutcomeUnconfigured = "unconfigured"
	OutcomeFailed       = "failed"
)

// PrometheusMiddleware creates a middleware that records Prometheus metrics.
// endpoint labels come from route, which maps a request to its route pattern
// so path parameters do not explode label cardinality.
func PrometheusMiddleware(route func(*http.Request) string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Skip metrics endpoint itself
			if r.URL.Path == "/metrics" {
				next.ServeHTTP(w, r)
				return
			}

			wrapped := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			next.ServeHTTP(wrapped, r)

			endpoint := route(r)
			duration := time.Since(start).Seconds()
			statusCode := strconv.Itoa(wrapped.statusCode)

			httpRequestsTotal.WithLabelValues(r.Method, endpoint, statusCode).Inc()
			httpRequestDuration.WithLabelValues(r.Method, endpoint, statusCode).Observe(duration)
			if r.ContentLength > 0 {
				httpRequestSize.WithLabelValues(r.Method, endpoint).Observe(float64(r.ContentLength))
			}
			httpResponseSize.WithLabelValues(r.Method, endpoint).Observe(float64(wrapped.size))
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture status code and response size
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	size       int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	size, err := rw.ResponseWriter.Write(b)
	rw.size += size
	return size, err
}

// RecordInquiry records the outcome of one inquiry submission
func RecordInquiry(outcome string) {
	inquiriesTotal.WithLabelValues(outcome).Inc()
}

// RecordValidationFailure records a rejected inquiry field
func RecordValidationFailure(field string) {
	inquiryValidationFailures.WithLabelValues(field).Inc()
}

// RecordEmailSend records one email provider call
func RecordEmailSend(provider string, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	emailSendDuration.WithLabelValues(provider, status).Observe(duration.Seconds())
}

// RecordPageView records a rendered page
func RecordPageView(page string, found bool) {
	result := "found"
	if !found {
		result = "not_found"
	}
	pageViewsTotal.WithLabelValues(page, result).Inc()
}

// RecordDBQuery records a catalog database query
func RecordDBQuery(operation string, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	dbQueriesTotal.WithLabelValues(operation, status).Inc()
	dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
