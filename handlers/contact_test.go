package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"zerotosite/middleware"
	"zerotosite/models"
	"zerotosite/services/contact"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactSubmit(t *testing.T) {
	t.Run("SuccessHTMX", func(t *testing.T) {
		sender := &recordingSender{}
		h := setupSite(t, sender)
		form := newForm(t)

		c, rec := postForm("/contact", validValues(), true, form)
		require.NoError(t, h.ContactSubmit(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, 1, sender.count())
		assert.Equal(t, "N/A", sender.payloads[0].Website)
		assert.Equal(t, "Ann's Bakery", sender.payloads[0].BusinessName)

		doc := parseHTML(t, rec)
		assert.Equal(t, h.content.Contact.SuccessMessage, doc.Find(".banner-success").Text())
		assert.Equal(t, "", doc.Find(`input[name="name"]`).AttrOr("value", "x"))

		snap := form.Snapshot()
		assert.Equal(t, models.SubmitStatusSuccess, snap.Status)
		assert.Equal(t, models.ContactFormData{}, snap.Data)
	})

	t.Run("RedirectWithoutHTMX", func(t *testing.T) {
		sender := &recordingSender{}
		h := setupSite(t, sender)
		form := newForm(t)

		c, rec := postForm("/contact", validValues(), false, form)
		require.NoError(t, h.ContactSubmit(c))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/#contact", rec.Header().Get("Location"))
		assert.Equal(t, 1, sender.count())
	})

	t.Run("InvalidWebsite", func(t *testing.T) {
		sender := &recordingSender{}
		h := setupSite(t, sender)
		form := newForm(t)

		values := validValues()
		values.Set(models.FieldWebsite, "not a url")
		c, rec := postForm("/contact", values, true, form)
		require.NoError(t, h.ContactSubmit(c))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, 0, sender.count())

		doc := parseHTML(t, rec)
		assert.Equal(t, contact.InvalidWebsiteMessage, doc.Find(".field-error").Text())
		assert.Equal(t, "not a url", doc.Find(`input[name="website"]`).AttrOr("value", ""))
		assert.Equal(t, 0, doc.Find(".banner").Length())
	})

	t.Run("DeliveryFailure", func(t *testing.T) {
		sender := &recordingSender{err: errors.New("connection refused")}
		h := setupSite(t, sender)
		form := newForm(t)

		c, rec := postForm("/contact", validValues(), true, form)
		require.NoError(t, h.ContactSubmit(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		doc := parseHTML(t, rec)
		assert.Equal(t, h.content.Contact.ErrorMessage, doc.Find(".banner-error").Text())
		assert.Equal(t, "Ann", doc.Find(`input[name="name"]`).AttrOr("value", ""))
		assert.Equal(t, models.SubmitStatusError, form.Snapshot().Status)
	})

	t.Run("InFlight", func(t *testing.T) {
		blocking := &blockingSender{started: make(chan struct{}), release: make(chan struct{})}
		h := setupSite(t, blocking)
		form := newForm(t)
		for field, v := range validValues() {
			require.NoError(t, form.SetField(field, v[0]))
		}

		done := make(chan struct{})
		go func() {
			defer close(done)
			h.workflow.Submit(context.Background(), form)
		}()
		<-blocking.started

		values := validValues()
		values.Set(models.FieldName, "Someone Else")
		c, rec := postForm("/contact", values, true, form)
		require.NoError(t, h.ContactSubmit(c))

		assert.Equal(t, http.StatusConflict, rec.Code)
		doc := parseHTML(t, rec)
		button := doc.Find(`button[type="submit"]`)
		assert.Equal(t, h.content.Contact.SubmittingText, button.Text())
		_, disabled := button.Attr("disabled")
		assert.True(t, disabled)

		close(blocking.release)
		<-done
		assert.Equal(t, models.SubmitStatusSuccess, form.Snapshot().Status)
	})

	t.Run("ClientDisconnectDuringSend", func(t *testing.T) {
		sender := &cancellableSender{started: make(chan struct{}), delay: 200 * time.Millisecond}
		h := setupSite(t, sender)
		form := newForm(t)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		c, rec := postForm("/contact", validValues(), false, form)
		c.SetRequest(c.Request().WithContext(ctx))

		done := make(chan error, 1)
		go func() { done <- h.ContactSubmit(c) }()
		<-sender.started
		cancel()

		require.NoError(t, <-done)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		snap := form.Snapshot()
		assert.Equal(t, models.SubmitStatusSuccess, snap.Status)
		assert.Equal(t, models.ContactFormData{}, snap.Data)
	})

	t.Run("TurnstileRejected", func(t *testing.T) {
		sender := &recordingSender{}
		h := setupSite(t, sender)
		h.cfg.TurnstileSiteKey = "site"
		h.cfg.TurnstileSecretKey = "secret"
		h.verifyTurnstile = func(ctx context.Context, token, secretKey, ip string) (bool, error) {
			return false, nil
		}
		form := newForm(t)

		values := validValues()
		values.Set("cf-turnstile-response", "bad-token")
		c, rec := postForm("/contact", values, true, form)
		require.NoError(t, h.ContactSubmit(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, 0, sender.count())
	})

	t.Run("TurnstileAccepted", func(t *testing.T) {
		sender := &recordingSender{}
		h := setupSite(t, sender)
		h.cfg.TurnstileSiteKey = "site"
		h.cfg.TurnstileSecretKey = "secret"
		h.verifyTurnstile = func(ctx context.Context, token, secretKey, ip string) (bool, error) {
			return token == "good-token" && secretKey == "secret", nil
		}
		form := newForm(t)

		values := validValues()
		values.Set("cf-turnstile-response", "good-token")
		c, rec := postForm("/contact", values, true, form)
		require.NoError(t, h.ContactSubmit(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, sender.count())
	})

	t.Run("ClosedForm", func(t *testing.T) {
		h := setupSite(t, &recordingSender{})
		form := newForm(t)
		form.Close()

		c, rec := postForm("/contact", validValues(), true, form)
		require.NoError(t, h.ContactSubmit(c))
		assert.Equal(t, "/#contact", rec.Header().Get("HX-Redirect"))
	})
}

func TestContactField(t *testing.T) {
	t.Run("InvalidWebsite", func(t *testing.T) {
		h := setupSite(t, &recordingSender{})
		form := newForm(t)

		c, rec := postForm("/contact/field", url.Values{models.FieldWebsite: {"bad url"}}, true, form)
		require.NoError(t, h.ContactField(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		doc := parseHTML(t, rec)
		feedback := doc.Find("#website-feedback")
		assert.Equal(t, "true", feedback.AttrOr("hx-swap-oob", ""))
		assert.Equal(t, contact.InvalidWebsiteMessage, feedback.Find(".field-error").Text())
		assert.Equal(t, "bad url", form.Snapshot().Data.Website)
	})

	t.Run("ValidWebsite", func(t *testing.T) {
		h := setupSite(t, &recordingSender{})
		form := newForm(t)
		require.NoError(t, form.SetField(models.FieldWebsite, "bad url"))

		c, rec := postForm("/contact/field", url.Values{models.FieldWebsite: {"example.com"}}, true, form)
		require.NoError(t, h.ContactField(c))

		doc := parseHTML(t, rec)
		assert.Equal(t, h.content.Contact.WebsiteOK, doc.Find("#website-feedback .field-ok").Text())
		assert.Equal(t, "", form.Snapshot().WebsiteError())
	})

	t.Run("EditClearsBanner", func(t *testing.T) {
		h := setupSite(t, &recordingSender{err: errors.New("down")})
		form := newForm(t)
		for field, v := range validValues() {
			require.NoError(t, form.SetField(field, v[0]))
		}
		h.workflow.Submit(context.Background(), form)
		require.Equal(t, models.SubmitStatusError, form.Snapshot().Status)

		c, rec := postForm("/contact/field", url.Values{models.FieldMessage: {"Need a bigger site"}}, true, form)
		require.NoError(t, h.ContactField(c))

		doc := parseHTML(t, rec)
		assert.Equal(t, 0, doc.Find("#contact-status .banner").Length())
		assert.Equal(t, models.SubmitStatusIdle, form.Snapshot().Status)
	})

	t.Run("NoField", func(t *testing.T) {
		h := setupSite(t, &recordingSender{})
		form := newForm(t)

		c, _ := postForm("/contact/field", url.Values{"other": {"x"}}, true, form)
		err := h.ContactField(c)
		require.Error(t, err)
	})
}

func TestContactStatus(t *testing.T) {
	h := setupSite(t, &recordingSender{})
	form := newForm(t)
	for field, v := range validValues() {
		require.NoError(t, form.SetField(field, v[0]))
	}
	_, err := h.workflow.Submit(context.Background(), form)
	require.NoError(t, err)

	_, c, rec := setupEcho(http.MethodGet, "/contact/status", nil)
	c.Request().Header.Set("HX-Request", "true")
	middleware.SetContactForm(c, form)
	require.NoError(t, h.ContactStatus(c))

	doc := parseHTML(t, rec)
	status := doc.Find("#contact-status")
	assert.Equal(t, "/contact/status", status.AttrOr("hx-get", ""))
	assert.Equal(t, h.content.Contact.SuccessMessage, status.Find(".banner-success").Text())
}

func TestContactStatusWithoutForm(t *testing.T) {
	h := setupSite(t, &recordingSender{})
	store := contact.NewStore(time.Hour, time.Hour)
	defer store.Close()

	_, c, rec := setupEcho(http.MethodGet, "/contact/status", nil)
	c.Request().Header.Set("HX-Request", "true")
	handler := middleware.VisitorSession(store, time.Hour, false)(h.ContactStatus)
	require.NoError(t, handler(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, store.Len())
	status := parseHTML(t, rec).Find("#contact-status")
	assert.Equal(t, 1, status.Length())
	assert.Equal(t, "", status.AttrOr("hx-get", ""))
}

func TestContactSubmitCreatesVisitorForm(t *testing.T) {
	sender := &recordingSender{}
	h := setupSite(t, sender)
	store := contact.NewStore(time.Hour, time.Hour)
	defer store.Close()

	_, c, rec := setupEcho(http.MethodPost, "/contact", strings.NewReader(validValues().Encode()))
	c.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	handler := middleware.VisitorSession(store, time.Hour, false)(h.ContactSubmit)
	require.NoError(t, handler(c))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, 1, sender.count())
}
