package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"carlygage/internal/domain"
	"carlygage/internal/metrics"
	apperrors "carlygage/pkg/errors"
)

// CityRecord is a service-area city row
type CityRecord struct {
	ID          uint                 `gorm:"primaryKey"`
	Slug        string               `gorm:"uniqueIndex;size:64;not null"`
	DisplayName string               `gorm:"size:128;not null"`
	Description string               `gorm:"type:text"`
	Position    int                  `gorm:"not null;default:0"`
	Locations   []CityLocationRecord `gorm:"foreignKey:CityID;constraint:OnDelete:CASCADE"`
	FAQs        []CityFAQRecord      `gorm:"foreignKey:CityID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for CityRecord
func (CityRecord) TableName() string {
	return "catalog_cities"
}

// CityLocationRecord is a point of interest of a city
type CityLocationRecord struct {
	ID          uint   `gorm:"primaryKey"`
	CityID      uint   `gorm:"index;not null"`
	Position    int    `gorm:"not null;default:0"`
	Name        string `gorm:"size:128;not null"`
	Description string `gorm:"type:text"`
}

// TableName specifies the table name for CityLocationRecord
func (CityLocationRecord) TableName() string {
	return "catalog_city_locations"
}

// CityFAQRecord is a question and answer pair of a city
type CityFAQRecord struct {
	ID       uint   `gorm:"primaryKey"`
	CityID   uint   `gorm:"index;not null"`
	Position int    `gorm:"not null;default:0"`
	Question string `gorm:"type:text;not null"`
	Answer   string `gorm:"type:text;not null"`
}

// TableName specifies the table name for CityFAQRecord
func (CityFAQRecord) TableName() string {
	return "catalog_city_faqs"
}

func (r CityRecord) profile() domain.CityProfile {
	p := domain.CityProfile{
		Slug:        r.Slug,
		DisplayName: r.DisplayName,
		Description: r.Description,
		Locations:   make([]domain.NamedLocation, len(r.Locations)),
		FAQs:        make([]domain.FAQ, len(r.FAQs)),
	}
	for i, l := range r.Locations {
		p.Locations[i] = domain.NamedLocation{Name: l.Name, Description: l.Description}
	}
	for i, f := range r.FAQs {
		p.FAQs[i] = domain.FAQ{Question: f.Question, Answer: f.Answer}
	}
	return p
}

func newCityRecord(position int, c domain.CityProfile) CityRecord {
	rec := CityRecord{
		Slug:        c.Slug,
		DisplayName: c.DisplayName,
		Description: c.Description,
		Position:    position,
	}
	for i, l := range c.Locations {
		rec.Locations = append(rec.Locations, CityLocationRecord{Position: i, Name: l.Name, Description: l.Description})
	}
	for i, f := range c.FAQs {
		rec.FAQs = append(rec.FAQs, CityFAQRecord{Position: i, Question: f.Question, Answer: f.Answer})
	}
	return rec
}

// CityRepository reads and seeds the city catalog
type CityRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewCityRepository creates a city repository
func NewCityRepository(db *gorm.DB, logger *zap.Logger) *CityRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CityRepository{db: db, logger: logger.With(zap.String("component", "catalog"))}
}

func orderedChildren(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// FindCity returns the city with the given normalized slug
func (r *CityRepository) FindCity(ctx context.Context, slug string) (domain.CityProfile, error) {
	start := time.Now()
	var rec CityRecord
	err := r.db.WithContext(ctx).
		Preload("Locations", orderedChildren).
		Preload("FAQs", orderedChildren).
		Where("slug = ?", slug).
		First(&rec).Error
	metrics.RecordDBQuery("find_city", time.Since(start), ignoreNotFound(err))

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.CityProfile{}, apperrors.New(apperrors.ErrCodeNotFound, fmt.Sprintf("city %q not found", slug))
	}
	if err != nil {
		return domain.CityProfile{}, fmt.Errorf("failed to load city %q: %w", slug, err)
	}
	return rec.profile(), nil
}

// ListCities returns every city in display order
func (r *CityRepository) ListCities(ctx context.Context) ([]domain.CityProfile, error) {
	start := time.Now()
	var recs []CityRecord
	err := r.db.WithContext(ctx).
		Preload("Locations", orderedChildren).
		Preload("FAQs", orderedChildren).
		Order("position ASC").
		Find(&recs).Error
	metrics.RecordDBQuery("list_cities", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}

	cities := make([]domain.CityProfile, len(recs))
	for i, rec := range recs {
		cities[i] = rec.profile()
	}
	return cities, nil
}

// Seed replaces the catalog with cities in one transaction and returns the
// number of cities written.
func (r *CityRepository) Seed(ctx context.Context, cities []domain.CityProfile) (int, error) {
	start := time.Now()
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{&CityFAQRecord{}, &CityLocationRecord{}, &CityRecord{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return err
			}
		}
		for i, c := range cities {
			rec := newCityRecord(i, c)
			if err := tx.Create(&rec).Error; err != nil {
				return fmt.Errorf("insert city %q: %w", c.Slug, err)
			}
		}
		return nil
	})
	metrics.RecordDBQuery("seed_cities", time.Since(start), err)
	if err != nil {
		return 0, fmt.Errorf("failed to seed catalog: %w", err)
	}

	r.logger.Info("catalog seeded", zap.Int("cities", len(cities)))
	return len(cities), nil
}

// Ping checks the catalog connection
func (r *CityRepository) Ping(ctx context.Context) error {
	return ping(ctx, r.db)
}

func ignoreNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}
