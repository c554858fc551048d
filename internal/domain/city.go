package domain

import "strings"

// NamedLocation is a local point of interest used for sessions
type NamedLocation struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// FAQ is a question and answer pair
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// CityProfile is the static content for one service-area city
type CityProfile struct {
	Slug        string          `json:"slug"`
	DisplayName string          `json:"displayName"`
	Description string          `json:"description"`
	Locations   []NamedLocation `json:"locations"`
	FAQs        []FAQ           `json:"faqs"`
}

// LocationPath is the canonical landing page path for a city slug
func LocationPath(slug string) string {
	return "/locations/" + slug + "-family-photographer"
}

// Path returns the canonical landing page path of the city
func (c CityProfile) Path() string {
	return LocationPath(c.Slug)
}

// Longest suffixes first so "-family-photographer" wins over "-photographer".
var citySlugSuffixes = []string{
	"-family-photographer",
	"-family-photography",
	"-photographer",
	"-photography",
	"-texas",
	"-tx",
}

// NormalizeCitySlug maps a free-form path segment to a city key:
// "Frisco-Family-Photographer/" and "highland_park tx" normalize to
// "frisco" and "highland-park".
func NormalizeCitySlug(raw string) string {
	slug := strings.ToLower(strings.TrimSpace(raw))
	slug = strings.TrimSuffix(slug, "/")
	slug = strings.Join(strings.FieldsFunc(slug, func(r rune) bool {
		return r == ' ' || r == '_' || r == '-'
	}), "-")

	// a slug may carry more than one suffix, e.g. "plano-tx-photographer"
	for trimmed := true; trimmed; {
		trimmed = false
		for _, suffix := range citySlugSuffixes {
			if strings.HasSuffix(slug, suffix) && len(slug) > len(suffix) {
				slug = strings.TrimSuffix(slug, suffix)
				trimmed = true
				break
			}
		}
	}
	return slug
}

var citiesBySlug = func() map[string]CityProfile {
	m := make(map[string]CityProfile, len(Cities))
	for _, c := range Cities {
		m[c.Slug] = c
	}
	return m
}()

// LookupCity returns the profile for a raw slug after normalization
func LookupCity(raw string) (CityProfile, bool) {
	c, ok := citiesBySlug[NormalizeCitySlug(raw)]
	return c, ok
}

// CitySlugs returns the slugs of all service-area cities in table order
func CitySlugs() []string {
	slugs := make([]string, len(Cities))
	for i, c := range Cities {
		slugs[i] = c.Slug
	}
	return slugs
}
