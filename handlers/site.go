package handlers

import (
	"context"

	"zerotosite/config"
	"zerotosite/models"
	"zerotosite/services"
	"zerotosite/services/contact"

	"go.uber.org/zap"
)

// TurnstileVerifier checks a Turnstile token
type TurnstileVerifier func(ctx context.Context, token, secretKey, ip string) (bool, error)

// Site serves the landing page and the contact form endpoints
type Site struct {
	cfg             *config.Config
	content         *models.SiteContent
	workflow        *contact.Workflow
	logger          *zap.Logger
	verifyTurnstile TurnstileVerifier
}

// NewSite wires the handlers to their dependencies
func NewSite(cfg *config.Config, content *models.SiteContent, workflow *contact.Workflow, logger *zap.Logger) *Site {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Site{
		cfg:             cfg,
		content:         content,
		workflow:        workflow,
		logger:          logger,
		verifyTurnstile: services.VerifyTurnstileToken,
	}
}
