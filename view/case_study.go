package view

import (
	"strconv"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/rpupo63/studio-landing/models"
)

// CaseStudyPage renders the detail page a gallery card links to.
func CaseStudyPage(site models.Site, p models.Project, static bool) templ.Component {
	backHref := "/?filter=" + models.FilterFor(p.Category).String() + "#work"
	if static {
		backHref = StaticFilterPath(models.FilterFor(p.Category)) + "#work"
	}
	return Component(document(site, p.Title+" | "+site.Name, true,
		h.Div(h.Class("landing-page case-study"),
			NavBar(site),
			h.Main(
				h.Article(h.Class("case-study-container"), h.Data("project-id", strconv.Itoa(p.ID)),
					h.P(h.Class("hero-label"), g.Text(p.Category.String()+" · "+p.Year)),
					h.H1(h.Class("case-study-title"), g.Text(p.Title)),
					h.P(h.Class("case-study-description"), g.Text(p.Description)),
					h.Img(h.Class("case-study-image"), h.Src(p.Image), h.Alt(p.Title+" interface preview")),
					h.A(h.Href(backHref), h.Class("project-cta"),
						g.Text("Back to selected work"),
					),
				),
				CTASection(site),
			),
			SiteFooter(site),
		),
	))
}

// ErrorPage renders a minimal page for 4xx/5xx responses on HTML routes.
func ErrorPage(site models.Site, status int, message string) templ.Component {
	heading := strconv.Itoa(status)
	return Component(document(site, heading+" | "+site.Name, true,
		h.Div(h.Class("landing-page error-page"),
			NavBar(site),
			h.Main(
				h.Section(h.Class("cta-section"),
					h.Div(h.Class("cta-container"),
						h.H1(h.Class("cta-title"), g.Text(heading)),
						h.P(h.Class("cta-description"), g.Text(message)),
						h.A(h.Href("/"), h.Class("cta-button"),
							g.Text("Back to home "),
							ArrowIcon(IconProps{Class: "cta-arrow", Width: 20, Height: 20}),
						),
					),
				),
			),
			SiteFooter(site),
		),
	))
}
