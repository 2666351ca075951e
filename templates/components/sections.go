package components

import (
	"strconv"

	"zerotosite/models"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// navLinks are the in-page anchors shown in the header
var navLinks = []struct{ Href, Label string }{
	{"#work", "Work"},
	{"#services", "Services"},
	{"#process", "Process"},
	{"#pricing", "Pricing"},
}

func SiteHeader(brand models.Brand) g.Node {
	return Header(
		Class("site-header"),
		Div(
			Class("container header-inner"),
			A(
				Href("#"),
				Class("brand"),
				Img(Src(brand.Logo), Alt(brand.Name+" logo"), Width("48"), Height("48")),
				Span(g.Text(brand.Name)),
			),
			Nav(
				Class("site-nav"),
				Aria("label", "Main"),
				g.Map(navLinks, func(l struct{ Href, Label string }) g.Node {
					return A(Href(l.Href), Class("nav-link"), g.Text(l.Label))
				}),
				A(Href("#contact"), Class("btn btn-primary btn-sm"), g.Text("Get a Site")),
			),
		),
	)
}

func HeroSection(hero models.Hero, features []models.Feature) g.Node {
	return Section(
		ID("top"),
		Class("hero"),
		Div(
			Class("container hero-grid"),
			Div(
				H1(
					Class("hero-title"),
					g.Text(hero.Headline+" "),
					Span(Class("gradient-text"), g.Text(hero.Highlight)),
				),
				P(Class("hero-lead"), g.Text(hero.Lead)),
				Div(
					Class("hero-actions"),
					A(Href("#contact"), Class("btn btn-primary"), g.Text("Get a Free Mockup")),
					A(Href("#work"), Class("btn btn-outline"), g.Text("See Examples")),
				),
				Ul(
					Class("feature-grid"),
					g.Map(features, func(f models.Feature) g.Node {
						return Li(
							Class("feature-card"),
							Div(Class("feature-title"), g.Text(f.Title)),
							Div(Class("feature-desc"), g.Text(f.Desc)),
						)
					}),
				),
			),
			Div(
				Class("hero-media"),
				Div(
					Class("hero-frame"),
					Img(Src(hero.Image), Alt("Website design preview"), Width("740"), Height("520")),
				),
				g.If(hero.BadgeValue != "", Div(
					Class("hero-badge"),
					Div(Class("badge-label"), g.Text(hero.BadgeLabel)),
					Div(Class("badge-value"), g.Text(hero.BadgeValue)),
				)),
			),
		),
	)
}

func CredibilityBar(items []string) g.Node {
	return Section(
		Class("credibility"),
		Div(
			Class("container credibility-inner"),
			g.Map(items, func(text string) g.Node {
				return Span(Class("credibility-item"), g.Text(text))
			}),
		),
	)
}

func ServicesSection(services []models.Service) g.Node {
	return Section(
		ID("services"),
		Class("container section"),
		Div(
			Class("card-grid cols-3"),
			g.Map(services, func(s models.Service) g.Node {
				return Div(
					Class("card service-card"),
					H3(g.Text(s.Title)),
					P(g.Text(s.Desc)),
				)
			}),
		),
	)
}

func ProcessSection(steps []models.ProcessStep) g.Node {
	return Section(
		ID("process"),
		Class("container section-tight"),
		Div(
			Class("panel"),
			H2(Class("section-title"), g.Textf("Simple %d‑step process", len(steps))),
			Ol(
				Class("card-grid cols-3 steps"),
				g.Map(steps, func(s models.ProcessStep) g.Node {
					return Li(
						Class("card step-card"),
						Div(Class("step-number"), g.Text(strconv.Itoa(s.N))),
						H3(g.Text(s.Title)),
						P(g.Text(s.Desc)),
					)
				}),
			),
		),
	)
}

// PortfolioCard pairs a project with the image shown for it
type PortfolioCard struct {
	Item     models.PortfolioItem
	ImageURL string
}

func PortfolioSection(cards []PortfolioCard) g.Node {
	var featured, rest []PortfolioCard
	for _, card := range cards {
		if card.Item.Featured {
			featured = append(featured, card)
		} else {
			rest = append(rest, card)
		}
	}

	return Section(
		ID("work"),
		Class("container section"),
		Div(
			Class("section-head"),
			H2(Class("section-title"), g.Text("Recent Work")),
		),
		g.Map(featured, featuredCard),
		Div(
			Class("card-grid cols-3 portfolio-grid"),
			g.Map(rest, portfolioCard),
		),
	)
}

func projectLink(item models.PortfolioItem, children ...g.Node) g.Node {
	return A(
		Href(item.URL),
		g.If(item.IsExternal(), g.Group([]g.Node{Target("_blank"), Rel("noopener noreferrer")})),
		g.Group(children),
	)
}

func featuredCard(card PortfolioCard) g.Node {
	item := card.Item
	highlights := item.Highlights
	if len(highlights) > 4 {
		highlights = highlights[:4]
	}

	return Article(
		Class("portfolio-featured"),
		Div(
			Class("portfolio-featured-media"),
			Img(Src(card.ImageURL), Alt(item.Name), g.Attr("loading", "lazy")),
		),
		Div(
			Class("portfolio-featured-body"),
			Span(Class("tag"), g.Text(item.Tag)),
			H3(g.Text(item.Name)),
			g.If(item.Description != "", P(g.Text(item.Description))),
			g.If(len(highlights) > 0, Ul(
				Class("highlights"),
				g.Map(highlights, func(h string) g.Node {
					return Li(g.Text(h))
				}),
			)),
			projectLink(item, Class("btn btn-primary"), g.Text("Visit Site")),
		),
	)
}

func portfolioCard(card PortfolioCard) g.Node {
	item := card.Item
	return Article(
		Class("card portfolio-card"),
		Img(Src(card.ImageURL), Alt(item.Name), g.Attr("loading", "lazy")),
		Div(
			Class("portfolio-card-body"),
			Span(Class("tag"), g.Text(item.Tag)),
			H3(g.Text(item.Name)),
			projectLink(item, Class("host-label"), g.Text(HostLabel(item.URL))),
		),
	)
}

func PricingSection(pricing models.Pricing) g.Node {
	return Section(
		ID("pricing"),
		Class("container section"),
		H2(Class("section-title"), g.Text("Pricing")),
		g.If(pricing.Intro != "", P(Class("section-lead"), g.Text(pricing.Intro))),
		Div(
			Class("card-grid cols-3"),
			g.Map(pricing.Plans, func(plan models.PricePlan) g.Node {
				class := "card price-card"
				if plan.Popular {
					class += " is-popular"
				}
				return Div(
					Class(class),
					g.If(plan.Popular, Span(Class("popular-badge"), g.Text("Most popular"))),
					H3(g.Text(plan.Title)),
					Div(Class("price"), g.Text(plan.Price)),
					Ul(g.Map(plan.Features, func(f string) g.Node {
						return Li(g.Text(f))
					})),
					A(Href("#contact"), Class("btn btn-primary btn-block"), g.Text("Choose "+plan.Title)),
				)
			}),
			Div(
				Class("card addons-card"),
				H3(g.Text("Add-ons")),
				Ul(g.Map(pricing.AddOns, func(a models.AddOn) g.Node {
					return Li(g.Text(a.Label+" "), Strong(g.Text(a.Value)))
				})),
			),
		),
	)
}

func FAQSection(faqs []models.FAQ) g.Node {
	return Section(
		ID("faq"),
		Class("container section"),
		H2(Class("section-title"), g.Text("FAQs")),
		Div(
			Class("card-grid cols-3"),
			g.Map(faqs, func(f models.FAQ) g.Node {
				return Div(
					Class("card faq-card"),
					Div(Class("faq-question"), g.Text(f.Q)),
					Div(Class("faq-answer"), g.Text(f.A)),
				)
			}),
		),
	)
}

// ContactSection wraps the contact form fragment with the call to action
func ContactSection(text models.ContactCopy, form g.Node) g.Node {
	return Section(
		ID("contact"),
		Class("container section-tight"),
		Div(
			Class("cta-panel"),
			Div(
				H2(Class("section-title"), g.Text(text.Heading)),
				P(Class("cta-lead"), g.Text(text.Lead)),
			),
			form,
		),
	)
}

func SiteFooter(brand models.Brand, year int) g.Node {
	return Footer(
		Class("site-footer"),
		Div(
			Class("container footer-inner"),
			Div(
				Class("brand"),
				Img(Src(brand.Logo), Alt(brand.Name+" logo"), Width("24"), Height("24")),
				Span(g.Textf("© %d %s", year, brand.Name)),
			),
			Nav(
				Class("footer-nav"),
				A(Href("#pricing"), g.Text("Pricing")),
				A(Href("#work"), g.Text("Portfolio")),
				A(Href("#contact"), g.Text("Contact")),
			),
		),
	)
}
