package services

import (
	"context"

	"carlygage/internal/domain"
	"carlygage/internal/metrics"
)

// AreaLink is an entry of the areas-served list
type AreaLink struct {
	Name string
	Path string
}

// HomePage is the view model of the landing page
type HomePage struct {
	Title       string
	Portfolio   []domain.PortfolioCategory
	Offerings   []domain.Offering
	FAQs        []domain.FAQ
	Areas       []AreaLink
	SessionOpts []domain.SessionType
}

// PortfolioPage is the view model of a gallery page
type PortfolioPage struct {
	Found    bool
	Category domain.PortfolioCategory
	Title    string
	Related  []domain.PortfolioCategory
}

// PageService builds the static marketing pages
type PageService struct {
	locations *LocationService
}

// NewPageService creates a page service
func NewPageService(locations *LocationService) *PageService {
	return &PageService{locations: locations}
}

// Home builds the landing page
func (s *PageService) Home(ctx context.Context) HomePage {
	cities := s.locations.Cities(ctx)
	areas := make([]AreaLink, len(cities))
	for i, c := range cities {
		areas[i] = AreaLink{Name: c.DisplayName, Path: c.Path()}
	}

	metrics.RecordPageView("home", true)
	return HomePage{
		Title:       "Dallas Family Photographer | Carly Gage Photography",
		Portfolio:   domain.Portfolio,
		Offerings:   domain.Offerings,
		FAQs:        domain.GeneralFAQs,
		Areas:       areas,
		SessionOpts: domain.SessionTypes,
	}
}

// Portfolio builds a gallery page
func (s *PageService) Portfolio(_ context.Context, slug string) PortfolioPage {
	category, ok := domain.LookupPortfolio(slug)
	metrics.RecordPageView("portfolio", ok)
	if !ok {
		return PortfolioPage{Title: "Page Not Found | Carly Gage Photography"}
	}

	related := make([]domain.PortfolioCategory, 0, len(domain.Portfolio)-1)
	for _, p := range domain.Portfolio {
		if p.Slug != slug {
			related = append(related, p)
		}
	}
	return PortfolioPage{
		Found:    true,
		Category: category,
		Title:    category.Title + " | Dallas Portfolio | Carly Gage Photography",
		Related:  related,
	}
}
