package handlers

import (
	"encoding/xml"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

type SitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float32 `xml:"priority,omitempty"`
}

type SitemapURLSet struct {
	XMLName string       `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

func (h *Site) siteURL() string {
	if h.cfg.AppURL == "" {
		return defaultSiteURL
	}
	return h.cfg.AppURL
}

// Sitemap generates the XML sitemap. The landing page is the only public page.
func (h *Site) Sitemap(c echo.Context) error {
	urlSet := SitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []SitemapURL{
			{Loc: h.siteURL() + "/", ChangeFreq: "weekly", Priority: 1.0},
		},
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationXML)
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		return err
	}

	encoder := xml.NewEncoder(c.Response().Writer)
	encoder.Indent("", "  ")
	return encoder.Encode(urlSet)
}

// Robots serves robots.txt. Non-production environments are kept out of indexes.
func (h *Site) Robots(c echo.Context) error {
	if !h.cfg.IsProduction() {
		return c.String(http.StatusOK, "User-agent: *\nDisallow: /\n")
	}
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /contact\n\nSitemap: %s/sitemap.xml\n", h.siteURL())
	return c.String(http.StatusOK, body)
}
