package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"zerotosite/config"
	"zerotosite/content"
	"zerotosite/middleware"
	"zerotosite/models"
	"zerotosite/services/contact"

	"github.com/PuerkitoBio/goquery"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// recordingSender captures payloads and returns err for every send
type recordingSender struct {
	mu       sync.Mutex
	payloads []models.WebhookPayload
	err      error
}

func (s *recordingSender) Send(ctx context.Context, payload models.WebhookPayload) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payloads = append(s.payloads, payload)
	return s.err
}

func (s *recordingSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.payloads)
}

// blockingSender holds every send until release is closed
type blockingSender struct {
	started chan struct{}
	release chan struct{}
}

func (s *blockingSender) Send(ctx context.Context, payload models.WebhookPayload) error {
	close(s.started)
	<-s.release
	return nil
}

// cancellableSender fails with the context error if its context is cancelled
// before delay elapses
type cancellableSender struct {
	started chan struct{}
	delay   time.Duration
}

func (s *cancellableSender) Send(ctx context.Context, payload models.WebhookPayload) error {
	close(s.started)
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(s.delay):
		return nil
	}
}

func testConfig() *config.Config {
	return &config.Config{
		Environment:       "test",
		AppURL:            "https://example.test",
		SuccessResetDelay: time.Hour,
	}
}

func setupSite(t *testing.T, sender contact.Sender) *Site {
	t.Helper()
	site, err := content.Load()
	require.NoError(t, err)
	return NewSite(testConfig(), site, contact.NewWorkflow(sender), nil)
}

func newForm(t *testing.T) *contact.Form {
	t.Helper()
	form := contact.NewForm(time.Hour)
	t.Cleanup(form.Close)
	return form
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return e, c, rec
}

// postForm builds a form-encoded request bound to form
func postForm(path string, values url.Values, htmx bool, form *contact.Form) (echo.Context, *httptest.ResponseRecorder) {
	_, c, rec := setupEcho(http.MethodPost, path, strings.NewReader(values.Encode()))
	c.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	if htmx {
		c.Request().Header.Set("HX-Request", "true")
	}
	middleware.SetContactForm(c, form)
	return c, rec
}

func validValues() url.Values {
	return url.Values{
		models.FieldName:         {"Ann"},
		models.FieldEmail:        {"ann@example.com"},
		models.FieldBusinessName: {"Ann's Bakery"},
		models.FieldWebsite:      {""},
		models.FieldMessage:      {"Need a site"},
	}
}

func parseHTML(t *testing.T, rec *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rec.Body.String()))
	require.NoError(t, err)
	return doc
}
