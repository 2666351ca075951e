package handlers

import (
	"time"

	"zerotosite/middleware"
	"zerotosite/templates/pages"

	"github.com/labstack/echo/v4"
)

// Landing renders the marketing page with the visitor's current form state.
// A page view alone never creates a form.
func (h *Site) Landing(c echo.Context) error {
	vm := pages.LandingViewModel{
		Site:            h.content,
		SEO:             GetSEO("landing", h.cfg.AppURL),
		Contact:         h.contactView(c, visitorSnapshot(c)),
		PreviewBaseURL:  h.cfg.PreviewBaseURL,
		Nonce:           middleware.GetNonce(c.Request().Context()),
		CSSURL:          middleware.AssetURL(middleware.AssetCSS),
		JSURL:           middleware.AssetURL(middleware.AssetAppJS),
		FaviconURL:      middleware.AssetURL(middleware.AssetFavicon),
		StructuredData:  organizationSchema(h.content.Brand.Name, h.cfg.AppURL, h.content.Brand.Logo),
		TurnstileScript: h.cfg.TurnstileEnabled(),
		Year:            time.Now().Year(),
	}
	return render(c, pages.Landing(vm))
}
