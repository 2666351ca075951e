package pages

import (
	"zerotosite/models"
	"zerotosite/templates/partials"
)

// LandingViewModel holds the data for the landing page
type LandingViewModel struct {
	Site    *models.SiteContent
	SEO     *models.SEO
	Contact partials.ContactFormView
	// PreviewBaseURL replaces portfolio stock images with captured screenshots when set
	PreviewBaseURL  string
	Nonce           string
	CSSURL          string
	JSURL           string
	FaviconURL      string
	StructuredData  interface{}
	TurnstileScript bool
	Year            int
}
