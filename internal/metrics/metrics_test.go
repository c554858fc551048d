package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func histogram(t *testing.T, vec *prometheus.HistogramVec, labels ...string) *dto.Histogram {
	t.Helper()
	m := &dto.Metric{}
	require.NoError(t, vec.WithLabelValues(labels...).(prometheus.Metric).Write(m))
	return m.GetHistogram()
}

func TestPrometheusMiddleware_LabelsByRoute(t *testing.T) {
	var routed []string
	route := func(r *http.Request) string {
		routed = append(routed, r.URL.Path)
		return "/locations/{city}"
	}

	h := PrometheusMiddleware(route)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("not found"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/locations/nowhere", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not found", rec.Body.String())
	assert.Equal(t, []string{"/locations/nowhere"}, routed)
}

func TestPrometheusMiddleware_SkipsMetricsEndpoint(t *testing.T) {
	called := false
	h := PrometheusMiddleware(func(*http.Request) string {
		called = true
		return ""
	})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.False(t, called)
}

func TestPrometheusMiddleware_RecordsRequestAndResponseSize(t *testing.T) {
	const route = "/api/inquiries-size-test"
	h := PrometheusMiddleware(func(*http.Request) string { return route })(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"success":true}`))
		}))

	body := `{"name":"Jane Doe","email":"jane@example.com"}`
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/inquiries", strings.NewReader(body)))

	req := histogram(t, httpRequestSize, http.MethodPost, route)
	assert.Equal(t, uint64(1), req.GetSampleCount())
	assert.Equal(t, float64(len(body)), req.GetSampleSum())

	resp := histogram(t, httpResponseSize, http.MethodPost, route)
	assert.Equal(t, uint64(1), resp.GetSampleCount())
	assert.Equal(t, float64(len(`{"success":true}`)), resp.GetSampleSum())
}
