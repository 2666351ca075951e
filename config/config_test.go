package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("CONTACT_WEBHOOK_URL", "")
		t.Setenv("SUCCESS_RESET_DELAY", "")
		t.Setenv("IMAGE_HOSTS", "")
		t.Setenv("WEBHOOK_RESPONSE_MODE", "")
		t.Setenv("WEBHOOK_TIMEOUT", "")
		t.Setenv("APP_URL", "")
		t.Setenv("ALLOWED_ORIGINS", "")

		cfg := Load()
		assert.Empty(t, cfg.ContactWebhookURL)
		assert.Equal(t, []string{"http://localhost:8080"}, cfg.AllowedOrigins)
		assert.Equal(t, "opaque", cfg.WebhookResponseMode)
		assert.Equal(t, 5*time.Second, cfg.SuccessResetDelay)
		assert.Equal(t, 15*time.Second, cfg.WebhookTimeout)
		assert.Contains(t, cfg.ImageHosts, "images.unsplash.com")
		assert.Len(t, cfg.ImageHosts, 4)
	})

	t.Run("Overrides", func(t *testing.T) {
		t.Setenv("CONTACT_WEBHOOK_URL", "https://script.google.com/macros/s/abc/exec")
		t.Setenv("WEBHOOK_RESPONSE_MODE", "strict")
		t.Setenv("SUCCESS_RESET_DELAY", "250ms")
		t.Setenv("APP_URL", "https://zerotosite.app/")
		t.Setenv("ENVIRONMENT", "production")
		t.Setenv("ALLOWED_ORIGINS", "https://zerotosite.app, https://www.zerotosite.app")

		cfg := Load()
		assert.Equal(t, "https://script.google.com/macros/s/abc/exec", cfg.ContactWebhookURL)
		assert.Equal(t, "strict", cfg.WebhookResponseMode)
		assert.Equal(t, 250*time.Millisecond, cfg.SuccessResetDelay)
		assert.Equal(t, "https://zerotosite.app", cfg.AppURL)
		assert.True(t, cfg.IsProduction())
		assert.Equal(t, []string{"https://zerotosite.app", "https://www.zerotosite.app"}, cfg.AllowedOrigins)
	})
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("TEST_BOOL", "yes")
	assert.True(t, getEnvBool("TEST_BOOL", false))

	t.Setenv("TEST_BOOL", "off")
	assert.False(t, getEnvBool("TEST_BOOL", true))

	t.Setenv("TEST_BOOL", "maybe")
	assert.True(t, getEnvBool("TEST_BOOL", true))
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("TEST_DURATION", "3s")
	assert.Equal(t, 3*time.Second, getEnvDuration("TEST_DURATION", time.Second))

	t.Setenv("TEST_DURATION", "soon")
	assert.Equal(t, time.Second, getEnvDuration("TEST_DURATION", time.Second))

	t.Setenv("TEST_DURATION", "-1s")
	assert.Equal(t, time.Second, getEnvDuration("TEST_DURATION", time.Second))
}

func TestGetEnvList(t *testing.T) {
	t.Setenv("TEST_LIST", " a.com, ,b.com ")
	assert.Equal(t, []string{"a.com", "b.com"}, getEnvList("TEST_LIST", ""))
}

func TestTurnstileEnabled(t *testing.T) {
	cfg := &Config{TurnstileSiteKey: "site"}
	assert.False(t, cfg.TurnstileEnabled())
	cfg.TurnstileSecretKey = "secret"
	assert.True(t, cfg.TurnstileEnabled())
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("production")
	require.NoError(t, err)
	assert.NotNil(t, logger)

	logger, err = NewLogger("development")
	require.NoError(t, err)
	assert.NotNil(t, logger)
}
