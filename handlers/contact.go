package handlers

import (
	"context"
	"errors"
	"net/http"

	"zerotosite/middleware"
	"zerotosite/models"
	"zerotosite/services/contact"
	"zerotosite/templates/pages"
	"zerotosite/templates/partials"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// contactView maps a form snapshot onto the fragment view
func (h *Site) contactView(c echo.Context, snap contact.Snapshot) partials.ContactFormView {
	view := partials.ContactFormView{
		Copy:         h.content.Contact,
		Values:       snap.Data,
		WebsiteError: snap.WebsiteError(),
		Status:       snap.Status,
		Submitting:   snap.Submitting,
		CSRFToken:    middleware.GetCSRFToken(c),
	}
	if h.cfg.TurnstileEnabled() {
		view.TurnstileSiteKey = h.cfg.TurnstileSiteKey
	}
	return view
}

func (h *Site) visitorForm(c echo.Context) (*contact.Form, error) {
	form := middleware.GetContactForm(c)
	if form == nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "visitor session missing")
	}
	return form, nil
}

// visitorSnapshot returns the visitor's form state, or an empty idle form
// when the visitor has not used the contact form yet
func visitorSnapshot(c echo.Context) contact.Snapshot {
	if form := middleware.PeekContactForm(c); form != nil {
		return form.Snapshot()
	}
	return contact.Snapshot{Status: models.SubmitStatusIdle}
}

// sessionExpired answers requests for a form that was swept while the page was open
func sessionExpired(c echo.Context) error {
	if isHTMX(c) {
		c.Response().Header().Set("HX-Redirect", "/#contact")
		return c.NoContent(http.StatusOK)
	}
	return redirectToContact(c)
}

// ContactSubmit applies the posted values and runs one submission
func (h *Site) ContactSubmit(c echo.Context) error {
	form, err := h.visitorForm(c)
	if err != nil {
		return err
	}

	if form.Snapshot().Submitting {
		return h.respondSubmit(c, form, http.StatusConflict)
	}

	for _, field := range models.ContactFields {
		if err := form.SetField(field, c.FormValue(field)); err != nil {
			if errors.Is(err, contact.ErrFormClosed) {
				return sessionExpired(c)
			}
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}

	// Validate Turnstile CAPTCHA (if configured)
	if h.cfg.TurnstileEnabled() {
		token := c.FormValue("cf-turnstile-response")
		if token == "" {
			if isHTMX(c) {
				return c.HTML(http.StatusBadRequest, `<div class="banner banner-error" role="alert">Please complete the CAPTCHA</div>`)
			}
			return echo.NewHTTPError(http.StatusBadRequest, "Please complete the CAPTCHA")
		}

		valid, err := h.verifyTurnstile(c.Request().Context(), token, h.cfg.TurnstileSecretKey, c.RealIP())
		if err != nil || !valid {
			h.logger.Warn("turnstile verification failed", zap.Error(err), zap.String("ip", c.RealIP()))
			if isHTMX(c) {
				return c.HTML(http.StatusBadRequest, `<div class="banner banner-error" role="alert">CAPTCHA verification failed</div>`)
			}
			return echo.NewHTTPError(http.StatusBadRequest, "CAPTCHA verification failed")
		}
	}

	// The webhook call outlives a visitor who navigates away mid-send
	_, err = h.workflow.Submit(context.WithoutCancel(c.Request().Context()), form)
	switch {
	case err == nil:
		return h.respondSubmit(c, form, http.StatusOK)
	case errors.Is(err, contact.ErrFormClosed):
		return sessionExpired(c)
	case errors.Is(err, contact.ErrSubmissionInFlight):
		return h.respondSubmit(c, form, http.StatusConflict)
	case errors.Is(err, contact.ErrInvalidWebsite):
		return h.respondSubmit(c, form, http.StatusUnprocessableEntity)
	default:
		// Delivery failures are shown through the error banner
		return h.respondSubmit(c, form, http.StatusOK)
	}
}

func (h *Site) respondSubmit(c echo.Context, form *contact.Form, status int) error {
	if !isHTMX(c) {
		return redirectToContact(c)
	}
	view := h.contactView(c, form.Snapshot())
	if status == http.StatusOK {
		return render(c, pages.ContactFormFragment(view))
	}
	return renderStatus(c, status, pages.ContactFormFragment(view))
}

// ContactField applies a live edit of one or more fields and returns the
// website feedback and status banner as out-of-band swaps
func (h *Site) ContactField(c echo.Context) error {
	form, err := h.visitorForm(c)
	if err != nil {
		return err
	}

	params, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}

	applied := 0
	for _, field := range models.ContactFields {
		if _, ok := params[field]; !ok {
			continue
		}
		if err := form.SetField(field, params.Get(field)); err != nil {
			if errors.Is(err, contact.ErrFormClosed) {
				return sessionExpired(c)
			}
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		applied++
	}
	if applied == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "no contact form field given")
	}

	return render(c, pages.ContactFieldUpdate(h.contactView(c, form.Snapshot())))
}

// ContactStatus returns the status banner, polled while a success banner is up
func (h *Site) ContactStatus(c echo.Context) error {
	return render(c, pages.ContactStatus(h.contactView(c, visitorSnapshot(c))))
}
