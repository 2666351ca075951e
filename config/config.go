package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	Environment string
	AppURL      string
	// Contact webhook; empty falls back to the placeholder endpoint
	ContactWebhookURL   string
	WebhookResponseMode string // opaque or strict
	WebhookTimeout      time.Duration
	SuccessResetDelay   time.Duration
	VisitorSessionTTL   time.Duration
	SweepSchedule       string // cron spec for dropping idle visitor forms
	// Email (Resend)
	ResendAPIKey    string
	EmailFrom       string
	EmailFromName   string
	LeadNotifyEmail string
	EmailTestMode   bool // When true, emails are logged instead of sent
	// Other
	AllowedOrigins []string
	ImageHosts     []string
	// Cloudflare Turnstile
	TurnstileSiteKey   string
	TurnstileSecretKey string
	// Portfolio previews
	PreviewBaseURL string
	PreviewDir     string
	ChromePath     string
	// Cloudflare R2 Storage
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicURL       string
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	webhookURL := getEnv("CONTACT_WEBHOOK_URL", "")
	if webhookURL == "" {
		log.Println("[WARNING] CONTACT_WEBHOOK_URL is not set. Contact form submissions will fail.")
	}

	appURL := strings.TrimRight(getEnv("APP_URL", "http://localhost:8080"), "/")

	return &Config{
		ServerPort:          getEnv("SERVER_PORT", "8080"),
		Environment:         getEnv("ENVIRONMENT", "development"),
		AppURL:              appURL,
		ContactWebhookURL:   webhookURL,
		WebhookResponseMode: getEnv("WEBHOOK_RESPONSE_MODE", "opaque"),
		WebhookTimeout:      getEnvDuration("WEBHOOK_TIMEOUT", 15*time.Second),
		SuccessResetDelay:   getEnvDuration("SUCCESS_RESET_DELAY", 5*time.Second),
		VisitorSessionTTL:   getEnvDuration("VISITOR_SESSION_TTL", 2*time.Hour),
		SweepSchedule:       getEnv("SWEEP_SCHEDULE", "@every 10m"),
		ResendAPIKey:        getEnv("RESEND_API_KEY", ""),
		EmailFrom:           getEnv("EMAIL_FROM", "noreply@zerotosite.app"),
		EmailFromName:       getEnv("EMAIL_FROM_NAME", "ZeroToSite"),
		LeadNotifyEmail:     getEnv("LEAD_NOTIFY_EMAIL", ""),
		EmailTestMode:       getEnvBool("EMAIL_TEST_MODE", true), // Default true for safety
		AllowedOrigins:      getEnvList("ALLOWED_ORIGINS", appURL),
		ImageHosts:          getEnvList("IMAGE_HOSTS", "images.unsplash.com,image.thum.io,screenshot.rocks,mini.s-shot.ru"),
		TurnstileSiteKey:    getEnv("TURNSTILE_SITE_KEY", ""),
		TurnstileSecretKey:  getEnv("TURNSTILE_SECRET_KEY", ""),
		PreviewBaseURL:      strings.TrimRight(getEnv("PREVIEW_BASE_URL", ""), "/"),
		PreviewDir:          getEnv("PREVIEW_DIR", "static/previews"),
		ChromePath:          getEnv("CHROME_PATH", ""),
		R2AccountID:         getEnv("R2_ACCOUNT_ID", ""),
		R2AccessKeyID:       getEnv("R2_ACCESS_KEY_ID", ""),
		R2SecretAccessKey:   getEnv("R2_SECRET_ACCESS_KEY", ""),
		R2BucketName:        getEnv("R2_BUCKET_NAME", ""),
		R2PublicURL:         getEnv("R2_PUBLIC_URL", ""),
	}
}

// IsProduction reports whether the server runs with production settings
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// TurnstileEnabled reports whether contact submissions must pass a Turnstile check
func (c *Config) TurnstileEnabled() bool {
	return c.TurnstileSiteKey != "" && c.TurnstileSecretKey != ""
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		if defaultValue != "" {
			log.Printf("Using default value for %s: %s", key, defaultValue)
		}
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		log.Printf("[WARNING] Invalid duration for %s: %q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}

func getEnvList(key, defaultValue string) []string {
	var out []string
	for _, item := range strings.Split(getEnv(key, defaultValue), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
