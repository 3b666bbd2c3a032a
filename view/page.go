// Package view renders the landing page. Every function here is a pure
// function of its arguments; the only state it reflects is the filter and
// project list passed in through PageData.
package view

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/rpupo63/studio-landing/models"
)

const (
	StylesheetPath = "/static/css/landing.css"
	htmxScriptURL  = "https://unpkg.com/htmx.org@2.0.4"
)

// CatalogState is the read side of a project catalog.
type CatalogState interface {
	ActiveFilter() models.Filter
	VisibleProjects() []models.Project
}

// PageData is everything the landing page is rendered from.
type PageData struct {
	Site     models.Site
	Filter   models.Filter
	Projects []models.Project
	// Static renders links for a pre-built site instead of the live server:
	// filter controls navigate to /work/<filter>/ and no HTMX is loaded.
	Static bool
}

// NewPageData snapshots the catalog's derived state for rendering.
func NewPageData(site models.Site, catalog CatalogState) PageData {
	return PageData{
		Site:     site,
		Filter:   catalog.ActiveFilter(),
		Projects: catalog.VisibleProjects(),
	}
}

// LandingPage returns the full document as a templ component.
func LandingPage(d PageData) templ.Component {
	return Component(Page(d))
}

// WorkFragment returns only the #work section, the HTMX swap target.
func WorkFragment(d PageData) templ.Component {
	return Component(WorkSection(d))
}

func Page(d PageData) g.Node {
	return document(d.Site, d.Site.Name+" | "+d.Site.HeroLabel, d.Static,
		h.Div(h.Class("landing-page"),
			NavBar(d.Site),
			HeroSection(d.Site),
			h.Main(
				WorkSection(d),
				ProcessSection(d.Site),
				CTASection(d.Site),
			),
			SiteFooter(d.Site),
		),
	)
}

func document(site models.Site, title string, static bool, body ...g.Node) g.Node {
	return h.Doctype(
		h.HTML(h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.Meta(h.Name("description"), h.Content(site.Tagline)),
				h.TitleEl(g.Text(title)),
				h.Link(h.Rel("stylesheet"), h.Href(StylesheetPath)),
				g.If(!static, h.Script(h.Src(htmxScriptURL), h.Defer())),
			),
			h.Body(body...),
		),
	)
}

func NavBar(site models.Site) g.Node {
	return h.Nav(h.Class("nav"), h.Aria("label", "Main navigation"),
		h.Div(h.Class("nav-container"),
			h.A(h.Href("/"), h.Class("nav-logo"), h.Aria("label", "Home"),
				h.Span(h.Class("logo-text"), g.Text(site.Name)),
			),
			h.Ul(h.Class("nav-links"),
				h.Li(h.A(h.Href("#work"), g.Text("Work"))),
				h.Li(h.A(h.Href("#process"), g.Text("Process"))),
				h.Li(h.A(h.Href("#about"), g.Text("About"))),
				h.Li(h.A(h.Href("#contact"), h.Class("nav-cta"), g.Text("Let's talk"))),
			),
		),
	)
}

func HeroSection(site models.Site) g.Node {
	return h.Header(h.Class("hero"),
		h.Div(h.Class("hero-container"),
			h.Div(h.Class("hero-content"),
				h.P(h.Class("hero-label"), g.Text(site.HeroLabel)),
				h.H1(h.Class("hero-title"),
					g.Text(site.HeroTitle+" "),
					h.Span(h.Class("hero-title-highlight"), g.Text(site.HeroHighlight)),
					g.Text(" "+site.HeroTitleSuffix),
				),
				h.P(h.Class("hero-description"), g.Text(site.HeroDescription)),
				h.Div(h.Class("hero-stats"),
					g.Map(site.Stats, func(s models.Stat) g.Node {
						return h.Div(h.Class("stat"),
							h.Span(h.Class("stat-number"), g.Text(s.Number)),
							h.Span(h.Class("stat-label"), g.Text(s.Label)),
						)
					}),
				),
			),
			h.Div(h.Class("hero-visual"),
				h.Div(h.Class("hero-image-stack"),
					h.Div(h.Class("hero-image-card hero-image-card-1"), h.Aria("hidden", "true")),
					h.Div(h.Class("hero-image-card hero-image-card-2"), h.Aria("hidden", "true")),
					h.Div(h.Class("hero-image-card hero-image-card-3"), h.Aria("hidden", "true")),
				),
			),
		),
	)
}

func ProcessSection(site models.Site) g.Node {
	return h.Section(h.ID("process"), h.Class("process-section"),
		h.Div(h.Class("process-container"),
			h.H2(h.Class("section-title"), g.Text("Our Process")),
			h.Div(h.Class("process-grid"),
				g.Map(site.Process, func(step models.ProcessStep) g.Node {
					return h.Div(h.Class("process-step"),
						h.Span(h.Class("process-number"), h.Aria("hidden", "true"), g.Text(step.Number)),
						h.H3(h.Class("process-step-title"), g.Text(step.Title)),
						h.P(h.Class("process-step-description"), g.Text(step.Description)),
					)
				}),
			),
		),
	)
}

func CTASection(site models.Site) g.Node {
	return h.Section(h.Class("cta-section"),
		h.Div(h.Class("cta-container"),
			h.H2(h.Class("cta-title"), g.Text(site.CTATitle)),
			h.P(h.Class("cta-description"), g.Text(site.CTADescription)),
			h.A(h.Href(site.MailtoHref()), h.Class("cta-button"), g.Text(site.CTAButton)),
		),
	)
}

func SiteFooter(site models.Site) g.Node {
	return h.Footer(h.Class("footer"),
		h.Div(h.Class("footer-container"),
			h.Div(h.Class("footer-grid"),
				h.Div(h.ID("about"), h.Class("footer-col"),
					h.Span(h.Class("footer-logo"), g.Text(site.Name)),
					h.P(h.Class("footer-tagline"), g.Text(site.Tagline)),
				),
				h.Div(h.Class("footer-col"),
					h.H4(h.Class("footer-heading"), g.Text("Connect")),
					h.Ul(h.Class("footer-links"),
						g.Map(site.Social, func(l models.Link) g.Node {
							return h.Li(h.A(h.Href(l.Href), g.Text(l.Label)))
						}),
					),
				),
				h.Div(h.ID("contact"), h.Class("footer-col"),
					h.H4(h.Class("footer-heading"), g.Text("Contact")),
					h.Ul(h.Class("footer-links"),
						h.Li(h.A(h.Href(site.MailtoHref()), g.Text(site.ContactEmail))),
						g.If(site.ContactPhone != "",
							h.Li(h.A(h.Href(site.PhoneHref()), g.Text(site.ContactPhone))),
						),
					),
				),
			),
			h.Div(h.Class("footer-bottom"),
				h.P(h.Class("footer-copyright"), g.Text(site.CopyrightLine())),
			),
		),
	)
}
