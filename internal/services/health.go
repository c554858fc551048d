package services

import (
	"context"
)

// Pinger checks a backing store
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthResult is the health check payload
type HealthResult struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
	Email   string `json:"email"`
	Catalog string `json:"catalog"`
}

// HealthService implements the health service
type HealthService struct {
	name    string
	version string
	inquiry *InquiryService
	catalog Pinger
}

// NewHealthService creates a new health service. catalog may be nil when
// the city table is served from memory.
func NewHealthService(name, version string, inquiry *InquiryService, catalog Pinger) *HealthService {
	return &HealthService{name: name, version: version, inquiry: inquiry, catalog: catalog}
}

// Check implements the health check method. A missing email credential or
// catalog outage degrades the status but the site keeps serving pages.
func (s *HealthService) Check(ctx context.Context) *HealthResult {
	res := &HealthResult{
		Status:  "healthy",
		Service: s.name,
		Version: s.version,
		Email:   "configured",
		Catalog: "static",
	}
	if s.inquiry == nil || !s.inquiry.Configured() {
		res.Email = "not_configured"
		res.Status = "degraded"
	}
	if s.catalog != nil {
		if err := s.catalog.Ping(ctx); err != nil {
			res.Catalog = "unavailable"
			res.Status = "degraded"
		} else {
			res.Catalog = "database"
		}
	}
	return res
}
