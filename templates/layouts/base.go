package layouts

import (
	"zerotosite/models"
	"zerotosite/templates/components"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// DocumentProps configures the document shell
type DocumentProps struct {
	SEO    *models.SEO
	Nonce  string
	CSSURL string
	JSURL  string
	// Favicon may be empty
	Favicon string
	// StructuredData is rendered as JSON-LD when set
	StructuredData interface{}
	// TurnstileScript loads the Cloudflare widget
	TurnstileScript bool
}

// Document renders the HTML document around body
func Document(p DocumentProps, body ...g.Node) g.Node {
	seo := p.SEO
	if seo == nil {
		seo = models.NewSEO("", "")
	}

	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Text(seo.Title)),
				seoMeta(seo),
				g.If(p.Favicon != "", Link(Rel("icon"), Type("image/png"), Href(p.Favicon))),
				Link(Rel("stylesheet"), Href(p.CSSURL)),
				g.If(p.StructuredData != nil, components.JSONLD(p.Nonce, p.StructuredData)),
			),
			Body(
				g.Group(body),
				script(p.Nonce, htmxSrc),
				script(p.Nonce, p.JSURL),
				g.If(p.TurnstileScript, Script(
					Src("https://challenges.cloudflare.com/turnstile/v0/api.js"),
					Async(),
					Defer(),
					g.If(p.Nonce != "", g.Attr("nonce", p.Nonce)),
				)),
			),
		),
	)
}

func script(nonce, src string) g.Node {
	return Script(
		Src(src),
		Defer(),
		g.If(nonce != "", g.Attr("nonce", nonce)),
	)
}

func property(name, value string) g.Node {
	if value == "" {
		return nil
	}
	return Meta(g.Attr("property", name), Content(value))
}

func named(name, value string) g.Node {
	if value == "" {
		return nil
	}
	return Meta(Name(name), Content(value))
}

func seoMeta(seo *models.SEO) g.Node {
	robots := "index, follow"
	if seo.NoIndex {
		robots = "noindex, nofollow"
	}

	return g.Group([]g.Node{
		named("description", seo.Description),
		named("keywords", seo.Keywords),
		named("author", seo.Author),
		named("robots", robots),
		named("theme-color", seo.ThemeColor),
		g.If(seo.Canonical != "", Link(Rel("canonical"), Href(seo.Canonical))),

		property("og:type", seo.Social.Type),
		property("og:site_name", seo.Social.SiteName),
		property("og:locale", seo.Social.Locale),
		property("og:url", seo.Canonical),
		property("og:title", seo.SocialTitle()),
		property("og:description", seo.SocialDescription()),
		property("og:image", seo.Social.Image),
		property("og:image:alt", seo.Social.ImageAlt),

		named("twitter:card", seo.Social.Card),
		named("twitter:title", seo.SocialTitle()),
		named("twitter:description", seo.SocialDescription()),
		named("twitter:image", seo.Social.Image),
	})
}
