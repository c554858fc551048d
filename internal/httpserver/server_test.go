package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"carlygage/internal/config"
	"carlygage/internal/domain"
	"carlygage/internal/mailer"
	"carlygage/internal/services"
	"carlygage/internal/submission"
	apperrors "carlygage/pkg/errors"
)

type mockSender struct {
	mock.Mock
}

func (m *mockSender) Send(ctx context.Context, msg *mailer.Message) (string, error) {
	args := m.Called(ctx, msg)
	return args.String(0), args.Error(1)
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:    "Carly Gage Photography",
			Version: "test",
			Port:    "8000",
			BaseURL: "https://carlygage.com",
		},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type"},
			MaxAge:         600,
		},
		Inquiry: config.InquiryConfig{
			From:            "Carly Gage Photography <hello@carlygage.com>",
			BusinessInbox:   "carlygagephotography@gmail.com",
			FallbackContact: "carlygagephotography@gmail.com",
			SubjectPrefix:   "New Family Session Inquiry",
			SuccessDisplay:  3 * time.Second,
		},
		RateLimit: config.RateLimitConfig{InquiriesPerMinute: 100},
	}
}

// newTestServer wires the real services around sender; a nil sender means
// the email provider is not configured.
func newTestServer(t *testing.T, cfg *config.Config, sender mailer.Sender) *Server {
	t.Helper()
	inquiries := services.NewInquiryService(sender, cfg.Inquiry, zap.NewNop())
	locations := services.NewLocationService(nil, zap.NewNop())
	return New(Deps{
		Config:    cfg,
		Logger:    zap.NewNop(),
		Inquiries: inquiries,
		Locations: locations,
		Pages:     services.NewPageService(locations),
		Health:    services.NewHealthService(cfg.App.Name, cfg.App.Version, inquiries, nil),
		Now:       func() time.Time { return time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC) },
	})
}

func janeDoe() domain.InquiryForm {
	return domain.InquiryForm{
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		Phone:       "2145550123",
		SessionType: "family",
		Location:    "Flower Mound",
		Message:     "Looking forward to it!",
	}
}

func postJSON(t *testing.T, h http.Handler, body string) (*httptest.ResponseRecorder, domain.InquiryResult) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/inquiries", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var result domain.InquiryResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result), rec.Body.String())
	return rec, result
}

func TestEndToEnd_FormSubmitsThroughServer(t *testing.T) {
	sender := new(mockSender)
	sender.On("Send", mock.Anything, mock.MatchedBy(func(msg *mailer.Message) bool {
		return strings.Contains(msg.Subject, "Jane Doe") &&
			msg.ReplyTo == "jane@example.com" &&
			strings.Contains(msg.HTML, "Flower Mound")
	})).Return("msg-1", nil).Once()

	srv := httptest.NewServer(newTestServer(t, testConfig(), sender))
	defer srv.Close()

	form := submission.NewForm(submission.NewHTTPSubmitter(srv.URL))
	var (
		mu     sync.Mutex
		states = []submission.State{form.State()}
	)
	form.OnTransition(func(_, to submission.State) {
		mu.Lock()
		defer mu.Unlock()
		states = append(states, to)
	})
	defer form.Close()

	form.Set(janeDoe())
	result, err := form.Submit(context.Background())
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.NotEmpty(t, result.Reference)
	mu.Lock()
	assert.Equal(t, []submission.State{submission.Idle, submission.Submitting, submission.Success}, states)
	mu.Unlock()
	assert.Equal(t, submission.ConfirmationMessage, form.Message())
	sender.AssertNumberOfCalls(t, "Send", 1)
}

func TestEndToEnd_UnconfiguredProviderFails(t *testing.T) {
	srv := httptest.NewServer(newTestServer(t, testConfig(), nil))
	defer srv.Close()

	form := submission.NewForm(submission.NewHTTPSubmitter(srv.URL))
	defer form.Close()
	form.Set(janeDoe())

	result, err := form.Submit(context.Background())
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, submission.Idle, form.State())
	assert.Contains(t, form.Message(), "carlygagephotography@gmail.com")
	assert.Equal(t, janeDoe(), form.Values())
}

func TestSubmitInquiryJSON(t *testing.T) {
	valid, err := json.Marshal(janeDoe())
	require.NoError(t, err)

	tests := []struct {
		name       string
		body       string
		sendErr    error
		nilSender  bool
		wantStatus int
		wantOK     bool
		wantField  string
		wantCalls  int
	}{
		{name: "accepted", body: string(valid), wantStatus: http.StatusOK, wantOK: true, wantCalls: 1},
		{
			name:       "invalid email",
			body:       `{"name":"Jane Doe","email":"nope","phone":"2145550123","sessionType":"family","location":"Plano"}`,
			wantStatus: http.StatusBadRequest,
			wantField:  "email",
		},
		{name: "malformed body", body: `{"name":`, wantStatus: http.StatusBadRequest},
		{name: "provider rejects", body: string(valid), sendErr: errors.New("rate limited"), wantStatus: http.StatusBadGateway, wantCalls: 1},
		{name: "provider not configured", body: string(valid), nilSender: true, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := new(mockSender)
			sender.On("Send", mock.Anything, mock.Anything).Return("msg-1", tt.sendErr).Maybe()

			var s mailer.Sender = sender
			if tt.nilSender {
				s = nil
			}
			rec, result := postJSON(t, newTestServer(t, testConfig(), s), tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantOK, result.Success)
			if !tt.wantOK {
				assert.NotEmpty(t, result.Error)
			}
			if tt.wantField != "" {
				assert.Contains(t, result.Fields, tt.wantField)
			}
			sender.AssertNumberOfCalls(t, "Send", tt.wantCalls)
		})
	}
}

func TestSubmitInquiryJSON_IgnoresXMLAccept(t *testing.T) {
	h := newTestServer(t, testConfig(), new(mockSender))
	req := httptest.NewRequest(http.MethodPost, "/api/inquiries", strings.NewReader(`{"name":"J"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/xml")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var result domain.InquiryResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result), rec.Body.String())
	assert.False(t, result.Success)
	assert.Equal(t, services.MsgCorrectFields, result.Error)
	assert.Contains(t, result.Fields, "name")
	assert.Contains(t, result.Fields, "email")
}

func TestSubmitInquiryJSON_DuplicatesSendTwice(t *testing.T) {
	sender := new(mockSender)
	sender.On("Send", mock.Anything, mock.Anything).Return("msg", nil)
	h := newTestServer(t, testConfig(), sender)
	body, err := json.Marshal(janeDoe())
	require.NoError(t, err)

	_, first := postJSON(t, h, string(body))
	_, second := postJSON(t, h, string(body))

	assert.True(t, first.Success)
	assert.True(t, second.Success)
	assert.NotEqual(t, first.Reference, second.Reference)
	sender.AssertNumberOfCalls(t, "Send", 2)
}

func TestSubmitInquiryJSON_RateLimited(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit.InquiriesPerMinute = 1
	sender := new(mockSender)
	sender.On("Send", mock.Anything, mock.Anything).Return("msg", nil)
	h := newTestServer(t, cfg, sender)
	body, err := json.Marshal(janeDoe())
	require.NoError(t, err)

	rec, _ := postJSON(t, h, string(body))
	require.Equal(t, http.StatusOK, rec.Code)

	rec, result := postJSON(t, h, string(body))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "carlygagephotography@gmail.com")
	sender.AssertNumberOfCalls(t, "Send", 1)
}

func TestSubmitInquiryForm(t *testing.T) {
	t.Run("invalid input re-renders with values", func(t *testing.T) {
		h := newTestServer(t, testConfig(), new(mockSender))
		form := url.Values{
			"name":        {"J"},
			"email":       {"jane@example.com"},
			"phone":       {"2145550123"},
			"sessionType": {"mini"},
			"location":    {"Plano"},
		}
		req := httptest.NewRequest(http.MethodPost, "/inquire", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
		body := rec.Body.String()
		assert.Contains(t, body, domain.MsgName)
		assert.Contains(t, body, `value="Plano"`)
		assert.Contains(t, body, `<option value="mini" selected>Mini Session</option>`)
	})

	t.Run("success shows thank you", func(t *testing.T) {
		sender := new(mockSender)
		sender.On("Send", mock.Anything, mock.Anything).Return("msg", nil).Once()
		h := newTestServer(t, testConfig(), sender)
		form := url.Values{}
		for k, v := range map[string]string{
			"name": "Jane Doe", "email": "jane@example.com", "phone": "2145550123",
			"sessionType": "family", "location": "Flower Mound",
		} {
			form.Set(k, v)
		}
		req := httptest.NewRequest(http.MethodPost, "/inquire", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Thank You!")
		assert.Equal(t, "3; url=/", rec.Header().Get("Refresh"))
		sender.AssertExpectations(t)
	})

	t.Run("delivery failure keeps values", func(t *testing.T) {
		sender := new(mockSender)
		sender.On("Send", mock.Anything, mock.Anything).
			Return("", apperrors.New(apperrors.ErrCodeDelivery, "provider down")).Once()
		h := newTestServer(t, testConfig(), sender)
		form := url.Values{
			"name": {"Jane Doe"}, "email": {"jane@example.com"}, "phone": {"2145550123"},
			"sessionType": {"family"}, "location": {"Flower Mound"},
		}
		req := httptest.NewRequest(http.MethodPost, "/inquire", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "carlygagephotography@gmail.com")
		assert.Contains(t, body, `value="Flower Mound"`)
	})
}

func TestPages(t *testing.T) {
	h := newTestServer(t, testConfig(), nil)

	tests := []struct {
		path       string
		wantStatus int
		wantType   string
		wantBody   string
	}{
		{"/", http.StatusOK, "text/html", "Dallas Family Photographer | Carly Gage Photography"},
		{"/portfolio/dallas-family-session", http.StatusOK, "text/html", "Fun in the Field"},
		{"/portfolio/weddings", http.StatusNotFound, "text/html", "/portfolio/weddings"},
		{"/locations/frisco-family-photographer", http.StatusOK, "text/html", "Family Photography in Frisco"},
		{"/locations/frisco", http.StatusOK, "text/html", "Frisco Commons Park"},
		{"/locations/nowhere-tx", http.StatusNotFound, "text/html", "/locations/nowhere-tx"},
		{"/sitemap.xml", http.StatusOK, "application/xml", "<loc>https://carlygage.com/locations/frisco-family-photographer</loc>"},
		{"/robots.txt", http.StatusOK, "text/plain", "Sitemap: https://carlygage.com/sitemap.xml"},
		{"/no/such/page", http.StatusNotFound, "text/html", "Return home"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), tt.wantType)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
			assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
		})
	}
}

func TestTrailingSlashRedirects(t *testing.T) {
	h := newTestServer(t, testConfig(), nil)

	tests := []struct {
		path string
		want string
	}{
		{"/locations/frisco/", "/locations/frisco"},
		{"/portfolio/dallas-family-session//", "/portfolio/dallas-family-session"},
		{"/locations/plano/?ref=nav", "/locations/plano?ref=nav"},
		{"//evil.example/", "/evil.example"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, http.StatusMovedPermanently, rec.Code)
			assert.Equal(t, tt.want, rec.Header().Get("Location"))
		})
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/locations/frisco", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer(t, testConfig(), nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var res services.HealthResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "degraded", res.Status)
	assert.Equal(t, "not_configured", res.Email)
	assert.Equal(t, "static", res.Catalog)
}

func TestCORS(t *testing.T) {
	cfg := testConfig()
	cfg.CORS.AllowedOrigins = []string{"https://carlygage.com"}
	h := newTestServer(t, cfg, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/inquiries", nil)
	req.Header.Set("Origin", "https://carlygage.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://carlygage.com", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRecover(t *testing.T) {
	h := Recover(zap.NewNop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestStatusFor(t *testing.T) {
	_, verr := domain.ValidateInquiry(domain.InquiryForm{})

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"validation", verr, http.StatusBadRequest},
		{"not found", apperrors.New(apperrors.ErrCodeNotFound, "x"), http.StatusNotFound},
		{"configuration", apperrors.New(apperrors.ErrCodeConfiguration, "x"), http.StatusServiceUnavailable},
		{"delivery", apperrors.New(apperrors.ErrCodeDelivery, "x"), http.StatusBadGateway},
		{"plain", errors.New("x"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.err))
		})
	}
}
