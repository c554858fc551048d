package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"carlygage/internal/domain"
	"carlygage/internal/metrics"
	apperrors "carlygage/pkg/errors"
)

// CityFinder looks up service-area cities. FindCity expects a normalized
// slug and returns a NOT_FOUND AppError for unknown cities.
type CityFinder interface {
	FindCity(ctx context.Context, slug string) (domain.CityProfile, error)
	ListCities(ctx context.Context) ([]domain.CityProfile, error)
}

// StaticCities serves the compiled-in city table
type StaticCities struct{}

// FindCity implements CityFinder
func (StaticCities) FindCity(_ context.Context, slug string) (domain.CityProfile, error) {
	city, ok := domain.LookupCity(slug)
	if !ok {
		return domain.CityProfile{}, apperrors.New(apperrors.ErrCodeNotFound, fmt.Sprintf("city %q not found", slug))
	}
	return city, nil
}

// ListCities implements CityFinder
func (StaticCities) ListCities(context.Context) ([]domain.CityProfile, error) {
	return domain.Cities, nil
}

// LocationPage is the view model of a city landing page
type LocationPage struct {
	Found           bool
	RequestedSlug   string
	City            domain.CityProfile
	Title           string
	MetaDescription string
	Heading         string
	Intro           string
	Offerings       []domain.Offering
}

// LocationService builds city landing pages
type LocationService struct {
	finder CityFinder
	logger *zap.Logger
}

// NewLocationService creates a location service. A nil finder uses the
// static table.
func NewLocationService(finder CityFinder, logger *zap.Logger) *LocationService {
	if finder == nil {
		finder = StaticCities{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LocationService{finder: finder, logger: logger.With(zap.String("component", "location"))}
}

// Page resolves a raw slug to a landing page. Unknown cities produce a page
// with Found false.
func (s *LocationService) Page(ctx context.Context, rawSlug string) LocationPage {
	slug := domain.NormalizeCitySlug(rawSlug)
	page := LocationPage{RequestedSlug: rawSlug}

	city, err := s.finder.FindCity(ctx, slug)
	if err != nil && !apperrors.IsNotFound(err) {
		s.logger.Warn("city catalog lookup failed, using static table", zap.String("slug", slug), zap.Error(err))
		city, err = StaticCities{}.FindCity(ctx, slug)
	}
	if err != nil {
		metrics.RecordPageView("location", false)
		page.Title = "Page Not Found | Carly Gage Photography"
		return page
	}

	metrics.RecordPageView("location", true)
	page.Found = true
	page.City = city
	page.Title = fmt.Sprintf("Family Photographer %s | Carly Gage Photography", city.DisplayName)
	page.MetaDescription = fmt.Sprintf("Premium family photography sessions in %s, Texas. Heirloom portraits for families in %s and surrounding DFW areas.", city.DisplayName, city.DisplayName)
	page.Heading = fmt.Sprintf("Family Photography in %s", city.DisplayName)
	page.Intro = fmt.Sprintf("Serving families in %s with organic, timeless portraiture.", city.DisplayName)
	page.Offerings = domain.Offerings
	return page
}

// Cities lists the service area, falling back to the static table when the
// catalog is unavailable.
func (s *LocationService) Cities(ctx context.Context) []domain.CityProfile {
	cities, err := s.finder.ListCities(ctx)
	if err != nil || len(cities) == 0 {
		if err != nil {
			s.logger.Warn("city catalog listing failed, using static table", zap.Error(err))
		}
		return domain.Cities
	}
	return cities
}
