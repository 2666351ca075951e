package pages

import (
	"zerotosite/services"
	"zerotosite/templates/components"
	"zerotosite/templates/layouts"
	"zerotosite/templates/partials"

	"github.com/a-h/templ"
	. "maragu.dev/gomponents/html"
)

// Landing renders the full marketing page
func Landing(vm LandingViewModel) templ.Component {
	site := vm.Site

	cards := make([]components.PortfolioCard, 0, len(site.Portfolio))
	for _, item := range site.Portfolio {
		cards = append(cards, components.PortfolioCard{
			Item:     item,
			ImageURL: services.PreviewImageURL(vm.PreviewBaseURL, item),
		})
	}

	return Component(layouts.Document(
		layouts.DocumentProps{
			SEO:             vm.SEO,
			Nonce:           vm.Nonce,
			CSSURL:          vm.CSSURL,
			JSURL:           vm.JSURL,
			Favicon:         vm.FaviconURL,
			StructuredData:  vm.StructuredData,
			TurnstileScript: vm.TurnstileScript,
		},
		components.SiteHeader(site.Brand),
		Main(
			components.HeroSection(site.Hero, site.Features),
			components.CredibilityBar(site.Credibility),
			components.ServicesSection(site.Services),
			components.ProcessSection(site.Steps),
			components.PortfolioSection(cards),
			components.PricingSection(site.Pricing),
			components.FAQSection(site.FAQs),
			components.ContactSection(site.Contact, partials.ContactForm(vm.Contact)),
		),
		components.SiteFooter(site.Brand, vm.Year),
	))
}

// ContactFormFragment is the htmx response to a full submit
func ContactFormFragment(v partials.ContactFormView) templ.Component {
	return Component(partials.ContactForm(v))
}

// ContactFieldUpdate is the htmx response to a live field edit
func ContactFieldUpdate(v partials.ContactFormView) templ.Component {
	return Component(partials.FieldUpdate(v))
}

// ContactStatus is the polled status banner
func ContactStatus(v partials.ContactFormView) templ.Component {
	return Component(partials.StatusBanner(v.Status, v.Copy, false))
}
