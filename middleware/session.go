package middleware

import (
	"net/http"
	"time"

	"zerotosite/services/contact"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// VisitorCookieName identifies a visitor's contact form between requests
	VisitorCookieName = "zts_visitor"
	visitorIDKey      = "visitor_id"
	visitorStoreKey   = "visitor_store"
	contactFormKey    = "contact_form"
)

// VisitorSession identifies the visitor, issuing a visitor cookie on first
// contact. The visitor's form is only created once a handler asks for it
// through GetContactForm.
func VisitorSession(store *contact.Store, ttl time.Duration, secure bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			visitorID := ""
			if cookie, err := c.Cookie(VisitorCookieName); err == nil {
				if id, err := uuid.Parse(cookie.Value); err == nil {
					visitorID = id.String()
				}
			}

			if visitorID == "" {
				visitorID = uuid.NewString()
			}

			// refresh expiry on every request
			c.SetCookie(&http.Cookie{
				Name:     VisitorCookieName,
				Value:    visitorID,
				Path:     "/",
				Expires:  time.Now().Add(ttl),
				HttpOnly: true,
				Secure:   secure,
				SameSite: http.SameSiteLaxMode,
			})

			c.Set(visitorIDKey, visitorID)
			c.Set(visitorStoreKey, store)
			return next(c)
		}
	}
}

// GetContactForm returns the visitor's contact form, creating it on first
// use. It returns nil outside VisitorSession.
func GetContactForm(c echo.Context) *contact.Form {
	if form, ok := c.Get(contactFormKey).(*contact.Form); ok {
		return form
	}
	store, id, ok := visitor(c)
	if !ok {
		return nil
	}
	form := store.Get(id)
	c.Set(contactFormKey, form)
	return form
}

// PeekContactForm returns the visitor's contact form if one exists
func PeekContactForm(c echo.Context) *contact.Form {
	if form, ok := c.Get(contactFormKey).(*contact.Form); ok {
		return form
	}
	store, id, ok := visitor(c)
	if !ok {
		return nil
	}
	form, found := store.Lookup(id)
	if !found {
		return nil
	}
	c.Set(contactFormKey, form)
	return form
}

func visitor(c echo.Context) (*contact.Store, string, bool) {
	store, _ := c.Get(visitorStoreKey).(*contact.Store)
	id, _ := c.Get(visitorIDKey).(string)
	return store, id, store != nil && id != ""
}

// SetContactForm attaches a form to the context
func SetContactForm(c echo.Context, form *contact.Form) {
	c.Set(contactFormKey, form)
}
