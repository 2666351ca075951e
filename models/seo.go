package models

// SEO is the head metadata of a page
type SEO struct {
	Title       string
	Description string
	Keywords    string
	Author      string
	Canonical   string
	ThemeColor  string
	NoIndex     bool
	Social      SocialCard
}

// SocialCard is what Open Graph and Twitter previews show. Empty title and
// description fall back to the page's own.
type SocialCard struct {
	SiteName    string
	Title       string
	Description string
	Image       string
	ImageAlt    string
	Type        string // og:type
	Card        string // twitter:card
	Locale      string
}

// NewSEO returns page metadata with a large-image website card
func NewSEO(title, description string) *SEO {
	return &SEO{
		Title:       title,
		Description: description,
		Social: SocialCard{
			Type:   "website",
			Card:   "summary_large_image",
			Locale: "en_US",
		},
	}
}

func (s *SEO) SocialTitle() string {
	if s.Social.Title != "" {
		return s.Social.Title
	}
	return s.Title
}

func (s *SEO) SocialDescription() string {
	if s.Social.Description != "" {
		return s.Social.Description
	}
	return s.Description
}
