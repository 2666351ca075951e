package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"zerotosite/models"
)

// PlaceholderWebhookURL is used when no webhook endpoint is configured.
// Requests against it fail at the transport level.
const PlaceholderWebhookURL = "YOUR_GOOGLE_APPS_SCRIPT_URL_HERE"

// ResponseMode controls how the webhook response is interpreted
type ResponseMode string

const (
	// ResponseModeOpaque ignores the response: any request that reaches the
	// endpoint counts as delivered, whatever its status code.
	ResponseModeOpaque ResponseMode = "opaque"
	// ResponseModeStrict treats a non-2xx status as a failed delivery.
	ResponseModeStrict ResponseMode = "strict"
)

// ParseResponseMode maps a configuration string to a ResponseMode. Unknown
// values report false and yield ResponseModeOpaque.
func ParseResponseMode(s string) (ResponseMode, bool) {
	switch ResponseMode(strings.ToLower(strings.TrimSpace(s))) {
	case ResponseModeOpaque, "":
		return ResponseModeOpaque, true
	case ResponseModeStrict:
		return ResponseModeStrict, true
	}
	return ResponseModeOpaque, false
}

// StatusError is returned in strict mode when the webhook answers with a non-2xx status
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("webhook responded with status %d", e.StatusCode)
}

// WebhookClient posts contact payloads to the configured endpoint
type WebhookClient struct {
	url    string
	mode   ResponseMode
	client *http.Client
}

// WebhookOption configures a WebhookClient
type WebhookOption func(*WebhookClient)

// WithResponseMode sets how responses are interpreted
func WithResponseMode(mode ResponseMode) WebhookOption {
	return func(c *WebhookClient) {
		c.mode = mode
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(client *http.Client) WebhookOption {
	return func(c *WebhookClient) {
		if client != nil {
			c.client = client
		}
	}
}

// WithTimeout sets the request timeout of the default HTTP client
func WithTimeout(timeout time.Duration) WebhookOption {
	return func(c *WebhookClient) {
		if timeout > 0 {
			c.client = &http.Client{Timeout: timeout}
		}
	}
}

// NewWebhookClient creates a client for the given endpoint. An empty url
// falls back to PlaceholderWebhookURL.
func NewWebhookClient(url string, opts ...WebhookOption) *WebhookClient {
	if strings.TrimSpace(url) == "" {
		url = PlaceholderWebhookURL
	}
	c := &WebhookClient{
		url:    url,
		mode:   ResponseModeOpaque,
		client: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL returns the destination endpoint
func (c *WebhookClient) URL() string {
	return c.url
}

// Mode returns the response interpretation mode
func (c *WebhookClient) Mode() ResponseMode {
	return c.mode
}

// Send issues exactly one POST with the payload as JSON. Only transport
// failures are reported in opaque mode.
func (c *WebhookClient) Send(ctx context.Context, payload models.WebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to deliver webhook: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if c.mode == ResponseModeStrict && (resp.StatusCode < 200 || resp.StatusCode > 299) {
		return &StatusError{StatusCode: resp.StatusCode}
	}
	return nil
}
