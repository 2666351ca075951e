package handlers

import "zerotosite/models"

const (
	defaultSiteURL = "https://zerotosite.app"
	ogImagePath    = "/static/images/logo.png"
	ogImageAlt     = "ZeroToSite - Professional Websites Built Fast"
)

// SEO configurations for public pages. Canonical and image URLs are relative
// to the site URL and resolved by GetSEO.
var pageSEO = map[string]*models.SEO{
	"landing": {
		Title:       "ZeroToSite",
		Description: "Professional websites built fast. Fast, mobile optimized, and SEO ready.",
		Keywords:    "website, web design, small business website, landing page, SEO",
		Author:      "ZeroToSite",
		Canonical:   "/",
		ThemeColor:  "#2563eb",
		Social: models.SocialCard{
			SiteName:    "ZeroToSite",
			Title:       "ZeroToSite - Professional Websites Built Fast",
			Description: "Professional websites built fast. Fast, mobile optimized, and SEO ready. From zero to live in 24 hours.",
			Image:       ogImagePath,
			ImageAlt:    ogImageAlt,
			Type:        "website",
			Card:        "summary_large_image",
			Locale:      "en_US",
		},
	},
}

// GetSEO returns the SEO configuration for a page with URLs made absolute
// against siteURL. An empty siteURL uses the production domain.
func GetSEO(page, siteURL string) *models.SEO {
	seo, ok := pageSEO[page]
	if !ok {
		return nil
	}
	if siteURL == "" {
		siteURL = defaultSiteURL
	}

	// Return a copy to avoid mutations
	copy := *seo
	copy.Canonical = siteURL + seo.Canonical
	copy.Social.Image = siteURL + seo.Social.Image
	return &copy
}

// organizationSchema is the JSON-LD block describing the business
func organizationSchema(name, siteURL, logo string) map[string]interface{} {
	if siteURL == "" {
		siteURL = defaultSiteURL
	}
	return map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     name,
		"url":      siteURL,
		"logo":     siteURL + logo,
	}
}
