package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// CORS allows the configured origins to call the page and contact endpoints,
// including the headers htmx and the CSRF check send.
func CORS(origins []string) echo.MiddlewareFunc {
	return echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: origins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{
			echo.HeaderContentType,
			CSRFHeader,
			"HX-Request",
			"HX-Target",
			"HX-Trigger",
			"HX-Current-URL",
		},
	})
}
