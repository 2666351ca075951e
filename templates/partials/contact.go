package partials

import (
	"zerotosite/models"
	"zerotosite/templates/components"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Element ids targeted by htmx swaps
const (
	ContactFormID   = "contact-form"
	StatusBannerID  = "contact-status"
	WebsiteFeedback = "website-feedback"
)

// ContactFormView is everything the contact form fragment renders
type ContactFormView struct {
	Copy             models.ContactCopy
	Values           models.ContactFormData
	WebsiteError     string
	Status           models.SubmitStatus
	Submitting       bool
	CSRFToken        string
	TurnstileSiteKey string
}

const inputClass = "contact-input"

// ContactForm renders the full form. With htmx it posts in place and swaps
// itself; without it the browser posts and follows the redirect back.
func ContactForm(v ContactFormView) g.Node {
	return Form(
		ID(ContactFormID),
		Class("contact-form"),
		Method("post"),
		Action("/contact"),
		g.Attr("hx-post", "/contact"),
		g.Attr("hx-target", "this"),
		g.Attr("hx-swap", "outerHTML"),
		g.Attr("hx-disabled-elt", "find button[type='submit']"),
		g.If(v.CSRFToken != "", g.Attr("hx-headers", components.JSON(map[string]string{"X-CSRF-Token": v.CSRFToken}))),

		g.If(v.CSRFToken != "", Input(Type("hidden"), Name("_csrf"), Value(v.CSRFToken))),

		Div(
			Class("contact-grid"),
			textField(models.FieldName, "text", "Name", v.Values.Name, true, ""),
			textField(models.FieldEmail, "email", "Email", v.Values.Email, true, ""),
			textField(models.FieldBusinessName, "text", "Business name", v.Values.BusinessName, true, "span-2"),
			Div(
				Class("span-2"),
				Input(
					Type("text"),
					Name(models.FieldWebsite),
					ID("contact-"+models.FieldWebsite),
					Value(v.Values.Website),
					Placeholder("Website (optional) - e.g., example.com"),
					Class(classIf(inputClass, v.WebsiteError != "", "is-invalid")),
					g.If(v.WebsiteError != "", Aria("invalid", "true")),
					Aria("describedby", WebsiteFeedback),
					liveEdit(models.FieldWebsite),
				),
				WebsiteFeedbackNode(v.Values.Website, v.WebsiteError, v.Copy.WebsiteOK, false),
			),
			Textarea(
				Name(models.FieldMessage),
				ID("contact-"+models.FieldMessage),
				Required(),
				g.Attr("rows", "3"),
				Class(inputClass+" span-2"),
				Placeholder("What do you want on the site?"),
				liveEdit(models.FieldMessage),
				g.Text(v.Values.Message),
			),
		),

		g.If(v.TurnstileSiteKey != "", Div(
			Class("cf-turnstile"),
			g.Attr("data-sitekey", v.TurnstileSiteKey),
		)),

		StatusBanner(v.Status, v.Copy, false),

		SubmitButton(v.Copy, v.Submitting),
	)
}

func textField(name, inputType, placeholder, value string, required bool, extraClass string) g.Node {
	class := inputClass
	if extraClass != "" {
		class += " " + extraClass
	}
	return Input(
		Type(inputType),
		Name(name),
		ID("contact-"+name),
		Value(value),
		Placeholder(placeholder),
		Class(class),
		g.If(required, Required()),
		liveEdit(name),
	)
}

// liveEdit posts just this field to the server as the visitor types. The
// response carries only out-of-band swaps.
func liveEdit(name string) g.Node {
	return g.Group([]g.Node{
		g.Attr("hx-post", "/contact/field"),
		g.Attr("hx-trigger", "input changed delay:300ms"),
		g.Attr("hx-params", name),
		g.Attr("hx-swap", "none"),
	})
}

// SubmitButton is disabled and relabelled while a submission is in flight
func SubmitButton(text models.ContactCopy, submitting bool) g.Node {
	label := text.SubmitLabel
	if submitting {
		label = text.SubmittingText
	}
	return Button(
		Type("submit"),
		Class("btn btn-dark btn-block"),
		g.Attr("data-submitting-label", text.SubmittingText),
		g.If(submitting, Disabled()),
		g.Text(label),
	)
}

// WebsiteFeedbackNode shows the website validation message, or a
// confirmation when a non-empty value passed validation.
func WebsiteFeedbackNode(website, websiteError, okText string, oob bool) g.Node {
	var body g.Node
	switch {
	case websiteError != "":
		body = Div(
			Class("field-feedback field-error"),
			Role("alert"),
			Span(g.Text(websiteError)),
		)
	case website != "":
		body = Div(
			Class("field-feedback field-ok"),
			Span(g.Text(okText)),
		)
	}

	return Div(
		ID(WebsiteFeedback),
		g.If(oob, g.Attr("hx-swap-oob", "true")),
		g.If(body != nil, body),
	)
}

// StatusBanner shows the outcome of the last submission. A success banner
// polls until the server has reverted it to idle.
func StatusBanner(status models.SubmitStatus, text models.ContactCopy, oob bool) g.Node {
	var banner g.Node
	switch status {
	case models.SubmitStatusSuccess:
		banner = Div(Class("banner banner-success"), Role("status"), g.Text(text.SuccessMessage))
	case models.SubmitStatusError:
		banner = Div(Class("banner banner-error"), Role("alert"), g.Text(text.ErrorMessage))
	}

	polling := status == models.SubmitStatusSuccess
	return Div(
		ID(StatusBannerID),
		Aria("live", "polite"),
		g.If(oob, g.Attr("hx-swap-oob", "true")),
		g.If(polling, g.Group([]g.Node{
			g.Attr("hx-get", "/contact/status"),
			g.Attr("hx-trigger", "every 1s"),
			g.Attr("hx-swap", "outerHTML"),
		})),
		g.If(banner != nil, banner),
	)
}

// FieldUpdate is the response to a live edit: website feedback and banner as
// out-of-band swaps.
func FieldUpdate(v ContactFormView) g.Node {
	return g.Group([]g.Node{
		WebsiteFeedbackNode(v.Values.Website, v.WebsiteError, v.Copy.WebsiteOK, true),
		StatusBanner(v.Status, v.Copy, true),
	})
}
