// Package content holds the landing page copy, embedded at build time.
package content

import (
	_ "embed"
	"fmt"

	"zerotosite/models"

	"gopkg.in/yaml.v3"
)

//go:embed site.yaml
var siteYAML []byte

// Load parses the embedded site copy
func Load() (*models.SiteContent, error) {
	return Parse(siteYAML)
}

// Parse decodes site copy from YAML and checks the sections the page cannot render without
func Parse(data []byte) (*models.SiteContent, error) {
	var site models.SiteContent
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("failed to parse site content: %w", err)
	}
	if site.Brand.Name == "" {
		return nil, fmt.Errorf("site content: brand name is required")
	}
	if site.Contact.SuccessMessage == "" || site.Contact.ErrorMessage == "" {
		return nil, fmt.Errorf("site content: contact success and error messages are required")
	}
	return &site, nil
}
