package middleware

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
)

type contextKey string

const NonceKey contextKey = "csp_nonce"

// GenerateNonce creates a random nonce string
func GenerateNonce() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

// BuildCSP returns the Content-Security-Policy for the landing page. Images
// may come from imageHosts over https; portfolio previews are framed from any
// https origin.
func BuildCSP(nonce string, imageHosts []string) string {
	imgSrc := []string{"'self'", "data:"}
	for _, host := range imageHosts {
		imgSrc = append(imgSrc, "https://"+host)
	}

	return fmt.Sprintf("default-src 'self'; "+
		"script-src 'self' 'nonce-%s' https://unpkg.com https://challenges.cloudflare.com; "+
		"style-src 'self' 'unsafe-inline' https://fonts.googleapis.com; "+
		"img-src %s; "+
		"font-src 'self' https://fonts.gstatic.com; "+
		"connect-src 'self' https://challenges.cloudflare.com; "+
		"frame-src https: https://challenges.cloudflare.com; "+
		"form-action 'self'", nonce, strings.Join(imgSrc, " "))
}

// CSPNonce middleware generates a nonce for each request and adds it to the context
func CSPNonce(imageHosts []string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			nonce, err := GenerateNonce()
			if err != nil {
				c.Logger().Errorf("Failed to generate nonce: %v", err)
				nonce = "fallback-nonce-value" // Should rarely happen, but prevents crash
			}

			// Add to Echo context (for handlers)
			c.Set(string(NonceKey), nonce)

			// Add to Request context (for components)
			ctx := context.WithValue(c.Request().Context(), NonceKey, nonce)
			c.SetRequest(c.Request().WithContext(ctx))

			c.Response().Header().Set("Content-Security-Policy", BuildCSP(nonce, imageHosts))

			return next(c)
		}
	}
}

// GetNonce retrieves the nonce from the context
func GetNonce(ctx context.Context) string {
	if val, ok := ctx.Value(NonceKey).(string); ok {
		return val
	}
	return ""
}
