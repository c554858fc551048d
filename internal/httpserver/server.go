package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	goahttp "goa.design/goa/v3/http"
	"goa.design/goa/v3/http/middleware"

	"carlygage/internal/config"
	"carlygage/internal/metrics"
	"carlygage/internal/services"
	"carlygage/internal/web"
)

const maxInquiryBody = 64 << 10

// Deps are the collaborators of the HTTP server
type Deps struct {
	Config    *config.Config
	Logger    *zap.Logger
	Inquiries *services.InquiryService
	Locations *services.LocationService
	Pages     *services.PageService
	Health    *services.HealthService
	Renderer  *web.Renderer
	Now       func() time.Time
}

// Server holds the mounted routes
type Server struct {
	deps    Deps
	logger  *zap.Logger
	mux     goahttp.Muxer
	handler http.Handler
}

// New mounts every route on a goa muxer and wraps it with the middleware
// chain: recover, request id, logging, security headers, CORS.
func New(deps Deps) *Server {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Renderer == nil {
		deps.Renderer = web.MustRenderer()
	}

	s := &Server{
		deps:   deps,
		logger: deps.Logger.With(zap.String("component", "http")),
		mux:    goahttp.NewMuxer(),
	}

	limit := httprate.Limit(
		deps.Config.RateLimit.InquiriesPerMinute,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(s.tooManyInquiries),
	)

	// catch-all first so the explicit routes below take precedence
	s.handle(http.MethodGet, "/{*path}", s.notFound)
	s.handle(http.MethodGet, "/", s.home)
	s.handle(http.MethodGet, "/portfolio/{slug}", s.portfolio)
	s.handle(http.MethodGet, "/locations/{city}", s.location)
	s.handle(http.MethodGet, "/sitemap.xml", s.sitemap)
	s.handle(http.MethodGet, "/robots.txt", s.robots)
	s.handle(http.MethodGet, "/health", s.health)
	s.handle(http.MethodPost, "/api/inquiries", limit(http.HandlerFunc(s.submitInquiryJSON)).ServeHTTP)
	s.handle(http.MethodPost, "/inquire", limit(http.HandlerFunc(s.submitInquiryForm)).ServeHTTP)
	s.mux.Handle(http.MethodGet, "/metrics", promhttp.Handler().ServeHTTP)

	s.handler = Chain(s.mux,
		Recover(s.logger),
		middleware.RequestID(middleware.UseXRequestIDHeaderOption(true)),
		middleware.PopulateRequestContext(),
		RequestLogging(s.logger),
		SecurityHeaders(deps.Config),
		CORS(deps.Config),
		RedirectTrailingSlash,
	)
	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// handle mounts h and labels its metrics with the route pattern
func (s *Server) handle(method, pattern string, h http.HandlerFunc) {
	instrumented := metrics.PrometheusMiddleware(func(*http.Request) string { return pattern })(h)
	s.mux.Handle(method, pattern, instrumented.ServeHTTP)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(r.Context(), w, r, http.StatusOK, s.deps.Health.Check(r.Context()))
}

// writeJSON encodes v as JSON with goa's response encoder whatever the
// Accept header asks for; InquiryResult.Fields has no XML form.
func (s *Server) writeJSON(ctx context.Context, w http.ResponseWriter, r *http.Request, status int, v any) {
	ctx = context.WithValue(ctx, goahttp.AcceptTypeKey, "application/json")
	enc := goahttp.ResponseEncoder(ctx, w)
	w.WriteHeader(status)
	if err := enc.Encode(v); err != nil {
		s.logger.Error("failed to encode response",
			zap.String("request_id", RequestIDFrom(ctx)),
			zap.Error(err))
	}
}
