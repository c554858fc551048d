package services

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"carlygage/internal/domain"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// SitemapURL is one <url> entry
type SitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// Sitemap is the <urlset> document
type Sitemap struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// BuildSitemap lists the home page, the portfolio galleries and every
// service-area landing page.
func BuildSitemap(baseURL string, now time.Time) Sitemap {
	base := strings.TrimRight(baseURL, "/")
	lastMod := now.UTC().Format("2006-01-02")
	entry := func(path, freq string, priority float64) SitemapURL {
		return SitemapURL{
			Loc:        base + path,
			LastMod:    lastMod,
			ChangeFreq: freq,
			Priority:   fmt.Sprintf("%.1f", priority),
		}
	}

	urls := []SitemapURL{entry("", "weekly", 1.0)}
	for _, p := range domain.Portfolio {
		urls = append(urls, entry(p.Path(), "monthly", 0.8))
	}
	for _, slug := range domain.CitySlugs() {
		urls = append(urls, entry(domain.LocationPath(slug), "monthly", 0.7))
	}
	return Sitemap{Xmlns: sitemapNamespace, URLs: urls}
}

// Encode renders the sitemap with the XML header
func (s Sitemap) Encode() ([]byte, error) {
	body, err := xml.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

// RobotsTxt allows all crawlers and points at the sitemap
func RobotsTxt(baseURL string) string {
	return fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", strings.TrimRight(baseURL, "/"))
}
