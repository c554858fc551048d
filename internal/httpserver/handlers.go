package httpserver

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"net/http"

	"go.uber.org/zap"
	goahttp "goa.design/goa/v3/http"

	"carlygage/internal/domain"
	"carlygage/internal/services"
	"carlygage/internal/web"
	apperrors "carlygage/pkg/errors"
)

// POST /api/inquiries
func (s *Server) submitInquiryJSON(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	r.Body = http.MaxBytesReader(w, r.Body, maxInquiryBody)

	var form domain.InquiryForm
	if err := goahttp.RequestDecoder(r).Decode(&form); err != nil {
		s.logger.Info("malformed inquiry body",
			zap.String("request_id", RequestIDFrom(ctx)),
			zap.Error(err))
		s.writeJSON(ctx, w, r, http.StatusBadRequest, domain.InquiryFailed("Invalid request body", ""))
		return
	}

	result, err := s.deps.Inquiries.Process(ctx, form)
	s.writeJSON(ctx, w, r, StatusFor(err), result)
}

// POST /inquire
func (s *Server) submitInquiryForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	r.Body = http.MaxBytesReader(w, r.Body, maxInquiryBody)

	if err := r.ParseForm(); err != nil {
		s.renderPage(w, r, http.StatusBadRequest, web.PageInquiryResult, web.View{
			Title: "Inquiry | Carly Gage Photography",
			Page:  domain.InquiryFailed("Invalid form submission", ""),
			Form:  &web.FormView{Notice: "Invalid form submission", Failed: true},
		})
		return
	}

	form := domain.InquiryForm{
		Name:        r.PostForm.Get("name"),
		Email:       r.PostForm.Get("email"),
		Phone:       r.PostForm.Get("phone"),
		SessionType: r.PostForm.Get("sessionType"),
		Location:    r.PostForm.Get("location"),
		Message:     r.PostForm.Get("message"),
	}

	result, err := s.deps.Inquiries.Process(ctx, form)
	status := StatusFor(err)
	if apperrors.IsValidation(err) {
		status = http.StatusUnprocessableEntity
	}

	view := web.View{
		Title: "Inquiry | Carly Gage Photography",
		Page:  result,
	}
	if !result.Success {
		view.Form = &web.FormView{
			Values: form,
			Errors: result.Fields,
			Notice: result.Error,
			Failed: true,
		}
	} else if d := s.deps.Config.Inquiry.SuccessDisplay; d > 0 {
		// the confirmation returns to the home page once the display elapses
		w.Header().Set("Refresh", fmt.Sprintf("%d; url=/", int(math.Ceil(d.Seconds()))))
	}
	s.renderPage(w, r, status, web.PageInquiryResult, view)
}

func (s *Server) tooManyInquiries(w http.ResponseWriter, r *http.Request) {
	msg := "Too many inquiries from this address. Please try again in a minute or contact " +
		s.deps.Config.Inquiry.FallbackContact + " directly."
	if r.URL.Path == "/api/inquiries" {
		s.writeJSON(r.Context(), w, r, http.StatusTooManyRequests, domain.InquiryFailed(msg, ""))
		return
	}
	s.renderPage(w, r, http.StatusTooManyRequests, web.PageInquiryResult, web.View{
		Title: "Inquiry | Carly Gage Photography",
		Page:  domain.InquiryFailed(msg, ""),
		Form:  &web.FormView{Notice: msg, Failed: true},
	})
}

// GET /
func (s *Server) home(w http.ResponseWriter, r *http.Request) {
	page := s.deps.Pages.Home(r.Context())
	s.renderPage(w, r, http.StatusOK, web.PageHome, web.View{
		Title:       page.Title,
		Description: "Heirloom family, maternity and baby announcement portraits across Dallas-Fort Worth.",
		Canonical:   s.deps.Config.App.BaseURL,
		Page:        page,
	})
}

// GET /portfolio/{slug}
func (s *Server) portfolio(w http.ResponseWriter, r *http.Request) {
	slug := s.mux.Vars(r)["slug"]
	page := s.deps.Pages.Portfolio(r.Context(), slug)
	if !page.Found {
		s.renderNotFound(w, r)
		return
	}
	s.renderPage(w, r, http.StatusOK, web.PagePortfolio, web.View{
		Title:     page.Title,
		Canonical: s.deps.Config.App.BaseURL + page.Category.Path(),
		Page:      page,
	})
}

// GET /locations/{city}
func (s *Server) location(w http.ResponseWriter, r *http.Request) {
	page := s.deps.Locations.Page(r.Context(), s.mux.Vars(r)["city"])
	if !page.Found {
		s.renderNotFound(w, r)
		return
	}
	s.renderPage(w, r, http.StatusOK, web.PageLocation, web.View{
		Title:       page.Title,
		Description: page.MetaDescription,
		Canonical:   s.deps.Config.App.BaseURL + page.City.Path(),
		Page:        page,
	})
}

// GET /sitemap.xml
func (s *Server) sitemap(w http.ResponseWriter, r *http.Request) {
	body, err := services.BuildSitemap(s.deps.Config.App.BaseURL, s.deps.Now()).Encode()
	if err != nil {
		s.logger.Error("failed to encode sitemap", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write(body)
}

// GET /robots.txt
func (s *Server) robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(services.RobotsTxt(s.deps.Config.App.BaseURL)))
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	s.renderNotFound(w, r)
}

func (s *Server) renderNotFound(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, http.StatusNotFound, web.PageNotFound, web.View{
		Title: "Page Not Found | Carly Gage Photography",
		Page:  r.URL.Path,
	})
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, status int, page string, view web.View) {
	if view.Year == 0 {
		view.Year = s.deps.Now().Year()
	}

	var buf bytes.Buffer
	if err := s.deps.Renderer.Render(&buf, page, view); err != nil {
		s.logger.Error("failed to render page",
			zap.String("request_id", RequestIDFrom(r.Context())),
			zap.String("page", page),
			zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil && !errors.Is(err, http.ErrHandlerTimeout) {
		s.logger.Debug("client went away while writing page", zap.Error(err))
	}
}
