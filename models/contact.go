package models

// Contact form field names as posted by the browser
const (
	FieldName         = "name"
	FieldEmail        = "email"
	FieldBusinessName = "businessName"
	FieldWebsite      = "website"
	FieldMessage      = "message"
)

// ContactFields lists the form fields in display order
var ContactFields = []string{FieldName, FieldEmail, FieldBusinessName, FieldWebsite, FieldMessage}

// ContactFormData holds the current values of the contact form
type ContactFormData struct {
	Name         string `json:"name" form:"name"`
	Email        string `json:"email" form:"email"`
	BusinessName string `json:"businessName" form:"businessName"`
	Website      string `json:"website" form:"website"`
	Message      string `json:"message" form:"message"`
}

// Get returns the value of the named field
func (d ContactFormData) Get(field string) (string, bool) {
	switch field {
	case FieldName:
		return d.Name, true
	case FieldEmail:
		return d.Email, true
	case FieldBusinessName:
		return d.BusinessName, true
	case FieldWebsite:
		return d.Website, true
	case FieldMessage:
		return d.Message, true
	}
	return "", false
}

// Set overwrites the named field. It reports false for unknown fields.
func (d *ContactFormData) Set(field, value string) bool {
	switch field {
	case FieldName:
		d.Name = value
	case FieldEmail:
		d.Email = value
	case FieldBusinessName:
		d.BusinessName = value
	case FieldWebsite:
		d.Website = value
	case FieldMessage:
		d.Message = value
	default:
		return false
	}
	return true
}

// FieldErrors maps a field name to a human readable validation message
type FieldErrors map[string]string

// Clone returns an independent copy
func (e FieldErrors) Clone() FieldErrors {
	out := make(FieldErrors, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// SubmitStatus is the outcome banner state of the contact form
type SubmitStatus string

const (
	SubmitStatusIdle    SubmitStatus = "idle"
	SubmitStatusSuccess SubmitStatus = "success"
	SubmitStatusError   SubmitStatus = "error"
)

// WebhookPayload is the JSON body delivered to the contact webhook
type WebhookPayload struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	BusinessName string `json:"businessName"`
	Website      string `json:"website"`
	Message      string `json:"message"`
	Timestamp    string `json:"timestamp"`
}
