package contact

import (
	"context"
	"errors"
	"time"

	"zerotosite/models"

	"go.uber.org/zap"
)

// TimestampLayout is the ISO-8601 UTC layout used for payload timestamps
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Sender delivers a payload to the webhook endpoint
type Sender interface {
	Send(ctx context.Context, payload models.WebhookPayload) error
}

// LeadNotifier is told about every payload that was delivered successfully
type LeadNotifier interface {
	NotifyLead(payload models.WebhookPayload)
}

// Workflow runs one submission attempt for a Form
type Workflow struct {
	sender   Sender
	notifier LeadNotifier
	logger   *zap.Logger
	now      func() time.Time
}

// WorkflowOption configures a Workflow
type WorkflowOption func(*Workflow)

// WithLogger sets the workflow logger
func WithLogger(logger *zap.Logger) WorkflowOption {
	return func(w *Workflow) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithNotifier registers a notifier for delivered leads
func WithNotifier(n LeadNotifier) WorkflowOption {
	return func(w *Workflow) {
		w.notifier = n
	}
}

// WithClock overrides the time source used for payload timestamps
func WithClock(now func() time.Time) WorkflowOption {
	return func(w *Workflow) {
		if now != nil {
			w.now = now
		}
	}
}

// NewWorkflow creates a submission workflow that delivers through sender
func NewWorkflow(sender Sender, opts ...WorkflowOption) *Workflow {
	w := &Workflow{
		sender: sender,
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// BuildPayload packages form values for the webhook. An empty website is sent as "N/A".
func BuildPayload(data models.ContactFormData, at time.Time) models.WebhookPayload {
	website := data.Website
	if website == "" {
		website = "N/A"
	}
	return models.WebhookPayload{
		Name:         data.Name,
		Email:        data.Email,
		BusinessName: data.BusinessName,
		Website:      website,
		Message:      data.Message,
		Timestamp:    at.UTC().Format(TimestampLayout),
	}
}

// Submit validates the form, delivers its values and records the outcome.
//
// ErrInvalidWebsite and ErrSubmissionInFlight are returned without any
// request being made. A delivery failure leaves the form values in place,
// sets the error status and is returned wrapped. On success the form is
// cleared and shows the success status until the revert timer fires.
func (w *Workflow) Submit(ctx context.Context, form *Form) (models.SubmitStatus, error) {
	data, err := form.beginSubmit()
	if err != nil {
		if errors.Is(err, ErrSubmissionInFlight) {
			w.logger.Debug("ignoring submit while another is in flight")
		}
		return form.Snapshot().Status, err
	}

	payload := BuildPayload(data, w.now())
	sendErr := w.sender.Send(ctx, payload)
	status := form.finishSubmit(sendErr)

	if sendErr != nil {
		w.logger.Warn("contact form submission failed",
			zap.String("business", payload.BusinessName),
			zap.Error(sendErr),
		)
		return status, sendErr
	}

	w.logger.Info("contact form submitted",
		zap.String("business", payload.BusinessName),
		zap.String("website", payload.Website),
	)
	if w.notifier != nil {
		w.notifier.NotifyLead(payload)
	}
	return status, nil
}
