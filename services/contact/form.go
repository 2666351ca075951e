package contact

import (
	"errors"
	"sync"
	"time"

	"zerotosite/models"
)

// DefaultSuccessResetDelay is how long a success banner stays up
const DefaultSuccessResetDelay = 5 * time.Second

var (
	// ErrUnknownField is returned by SetField for names outside the contact form
	ErrUnknownField = errors.New("unknown contact form field")
	// ErrInvalidWebsite is returned when a submit is rejected by the website check
	ErrInvalidWebsite = errors.New("website is not a valid URL")
	// ErrSubmissionInFlight is returned when a submit arrives while another is pending
	ErrSubmissionInFlight = errors.New("submission already in flight")
	// ErrFormClosed is returned after the form has been closed
	ErrFormClosed = errors.New("contact form closed")
)

// Snapshot is a read-only copy of a Form's state
type Snapshot struct {
	Data       models.ContactFormData
	Errors     models.FieldErrors
	Status     models.SubmitStatus
	Submitting bool
}

// WebsiteError returns the website validation message, if any
func (s Snapshot) WebsiteError() string {
	return s.Errors[models.FieldWebsite]
}

// Form holds one visitor's contact form: field values, field errors, the
// in-flight flag and the outcome status. It is safe for concurrent use.
type Form struct {
	mu         sync.Mutex
	data       models.ContactFormData
	errors     models.FieldErrors
	status     models.SubmitStatus
	submitting bool
	closed     bool

	resetDelay time.Duration
	resetTimer *time.Timer
	// timerGen is bumped whenever the revert timer is cancelled so a timer
	// that already fired but has not taken the lock yet becomes a no-op.
	timerGen uint64
}

// NewForm returns an empty idle form. A non-positive resetDelay uses
// DefaultSuccessResetDelay.
func NewForm(resetDelay time.Duration) *Form {
	if resetDelay <= 0 {
		resetDelay = DefaultSuccessResetDelay
	}
	return &Form{
		errors:     models.FieldErrors{},
		status:     models.SubmitStatusIdle,
		resetDelay: resetDelay,
	}
}

// SetField overwrites a field. Editing the website re-runs URL validation, and
// any edit clears a success or error banner.
func (f *Form) SetField(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return ErrFormClosed
	}
	if !f.data.Set(name, value) {
		return ErrUnknownField
	}

	if name == models.FieldWebsite {
		if IsValidURL(value) {
			delete(f.errors, models.FieldWebsite)
		} else {
			f.errors[models.FieldWebsite] = InvalidWebsiteMessage
		}
	}

	if f.status != models.SubmitStatusIdle {
		f.status = models.SubmitStatusIdle
		f.cancelResetLocked()
	}
	return nil
}

// Reset clears every field and all field errors
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resetLocked()
}

func (f *Form) resetLocked() {
	f.data = models.ContactFormData{}
	f.errors = models.FieldErrors{}
}

// Snapshot returns a copy of the current state
func (f *Form) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Snapshot{
		Data:       f.data,
		Errors:     f.errors.Clone(),
		Status:     f.status,
		Submitting: f.submitting,
	}
}

// Close cancels the pending revert timer. A closed form rejects edits and submits.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	f.cancelResetLocked()
}

// beginSubmit validates the website, then takes the in-flight guard. It
// returns the values to send.
func (f *Form) beginSubmit() (models.ContactFormData, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return models.ContactFormData{}, ErrFormClosed
	}
	if !IsValidURL(f.data.Website) {
		f.errors = models.FieldErrors{models.FieldWebsite: InvalidWebsiteMessage}
		return models.ContactFormData{}, ErrInvalidWebsite
	}
	if f.submitting {
		return models.ContactFormData{}, ErrSubmissionInFlight
	}

	f.submitting = true
	f.status = models.SubmitStatusIdle
	f.cancelResetLocked()
	return f.data, nil
}

// finishSubmit records the outcome of the request started by beginSubmit
func (f *Form) finishSubmit(sendErr error) models.SubmitStatus {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.submitting = false
	if f.closed {
		return f.status
	}

	if sendErr != nil {
		f.status = models.SubmitStatusError
		return f.status
	}

	f.resetLocked()
	f.status = models.SubmitStatusSuccess
	f.scheduleResetLocked()
	return f.status
}

func (f *Form) scheduleResetLocked() {
	f.cancelResetLocked()
	gen := f.timerGen
	f.resetTimer = time.AfterFunc(f.resetDelay, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.timerGen != gen || f.closed {
			return
		}
		f.resetTimer = nil
		if f.status == models.SubmitStatusSuccess {
			f.status = models.SubmitStatusIdle
		}
	})
}

func (f *Form) cancelResetLocked() {
	f.timerGen++
	if f.resetTimer != nil {
		f.resetTimer.Stop()
		f.resetTimer = nil
	}
}
