package models

import (
	"regexp"
	"strings"
)

// SiteContent is the copy rendered on the landing page
type SiteContent struct {
	Brand       Brand           `yaml:"brand"`
	Hero        Hero            `yaml:"hero"`
	Features    []Feature       `yaml:"features"`
	Credibility []string        `yaml:"credibility"`
	Services    []Service       `yaml:"services"`
	Steps       []ProcessStep   `yaml:"steps"`
	Portfolio   []PortfolioItem `yaml:"portfolio"`
	Pricing     Pricing         `yaml:"pricing"`
	FAQs        []FAQ           `yaml:"faqs"`
	Contact     ContactCopy     `yaml:"contact"`
}

type Brand struct {
	Name    string `yaml:"name"`
	Logo    string `yaml:"logo"`
	Tagline string `yaml:"tagline"`
}

type Hero struct {
	Headline   string `yaml:"headline"`
	Highlight  string `yaml:"highlight"`
	Lead       string `yaml:"lead"`
	Image      string `yaml:"image"`
	BadgeLabel string `yaml:"badge_label"`
	BadgeValue string `yaml:"badge_value"`
}

type Feature struct {
	Title string `yaml:"title"`
	Desc  string `yaml:"desc"`
}

type Service struct {
	Title string `yaml:"title"`
	Desc  string `yaml:"desc"`
}

type ProcessStep struct {
	N     int    `yaml:"n"`
	Title string `yaml:"title"`
	Desc  string `yaml:"desc"`
}

type PortfolioItem struct {
	Name        string   `yaml:"name"`
	Tag         string   `yaml:"tag"`
	URL         string   `yaml:"url"`
	Image       string   `yaml:"image"`
	Featured    bool     `yaml:"featured"`
	Description string   `yaml:"description"`
	Highlights  []string `yaml:"highlights"`
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// Slug returns a file-name safe identifier derived from the project name
func (p PortfolioItem) Slug() string {
	return strings.Trim(slugStrip.ReplaceAllString(strings.ToLower(p.Name), "-"), "-")
}

// IsExternal reports whether the project link leaves the site
func (p PortfolioItem) IsExternal() bool {
	return strings.HasPrefix(p.URL, "http")
}

type Pricing struct {
	Intro  string      `yaml:"intro"`
	Plans  []PricePlan `yaml:"plans"`
	AddOns []AddOn     `yaml:"addons"`
}

type PricePlan struct {
	Title    string   `yaml:"title"`
	Price    string   `yaml:"price"`
	Features []string `yaml:"features"`
	Popular  bool     `yaml:"popular"`
}

type AddOn struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

type FAQ struct {
	Q string `yaml:"q"`
	A string `yaml:"a"`
}

// ContactCopy holds the fixed texts around the contact form
type ContactCopy struct {
	Heading        string `yaml:"heading"`
	Lead           string `yaml:"lead"`
	SuccessMessage string `yaml:"success_message"`
	ErrorMessage   string `yaml:"error_message"`
	SubmitLabel    string `yaml:"submit_label"`
	SubmittingText string `yaml:"submitting_label"`
	WebsiteOK      string `yaml:"website_ok"`
}
