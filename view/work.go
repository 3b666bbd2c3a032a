package view

import (
	"strconv"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"

	"github.com/rpupo63/studio-landing/models"
)

const (
	workSectionID = "work"
	fragmentPath  = "/fragments/work"
)

// ProjectPath is the case study URL for a project.
func ProjectPath(id int) string {
	return "/projects/" + strconv.Itoa(id)
}

// WorkSection renders the gallery with its filter controls.
func WorkSection(d PageData) g.Node {
	return h.Section(h.ID(workSectionID), h.Class("work-section"),
		h.Div(h.Class("work-container"),
			h.Div(h.Class("section-header"),
				h.H2(h.Class("section-title"), g.Text("Selected Work")),
				FilterControls(d.Filter, d.Static),
			),
			h.Div(h.Class("project-grid"),
				g.Map(d.Projects, ProjectCard),
			),
			g.If(len(d.Projects) == 0,
				h.P(h.Class("project-empty"), g.Text("No projects in this category yet.")),
			),
		),
	)
}

// FilterControls renders one button per filter. Exactly one button, the
// active one, has aria-pressed="true".
func FilterControls(active models.Filter, static bool) g.Node {
	return h.Form(h.Class("work-filters"),
		g.Attr("role", "group"),
		h.Aria("label", "Filter projects by category"),
		h.Method("get"),
		h.Action("/"),
		g.Map(models.Filters(), func(f models.Filter) g.Node {
			return filterButton(f, f == active, static)
		}),
	)
}

func filterButton(f models.Filter, pressed, static bool) g.Node {
	return h.Button(
		c.Classes{"filter-btn": true, "is-active": pressed},
		h.Type("submit"),
		h.Name("filter"),
		h.Value(f.String()),
		h.Aria("pressed", strconv.FormatBool(pressed)),
		g.If(static, g.Attr("formaction", StaticFilterPath(f))),
		g.If(!static, g.Group([]g.Node{
			g.Attr("hx-get", FragmentPath(f)),
			g.Attr("hx-target", "#"+workSectionID),
			g.Attr("hx-swap", "outerHTML"),
			g.Attr("hx-push-url", FilterPath(f)),
		})),
		g.Text(f.Label()),
	)
}

// FilterPath is the live-server URL of the landing page under f.
func FilterPath(f models.Filter) string {
	if f == models.FilterAll {
		return "/"
	}
	return "/?filter=" + f.String()
}

// FragmentPath is the URL of the gallery fragment under f.
func FragmentPath(f models.Filter) string {
	return fragmentPath + "?filter=" + f.String()
}

// StaticFilterPath is the exported page for f.
func StaticFilterPath(f models.Filter) string {
	if f == models.FilterAll {
		return "/"
	}
	return "/work/" + f.String() + "/"
}

// ProjectCard renders one gallery entry linking to its case study.
func ProjectCard(p models.Project) g.Node {
	return h.Article(h.Class("project-card"), h.Data("category", p.Category.String()),
		h.A(h.Href(ProjectPath(p.ID)), h.Class("project-link"),
			h.Div(h.Class("project-image"),
				h.Img(
					h.Src(p.Image),
					h.Alt(p.Title+" interface preview"),
					g.Attr("loading", "lazy"),
				),
				h.Span(h.Class("project-year"), h.Aria("hidden", "true"), g.Text(p.Year)),
			),
			h.Div(h.Class("project-content"),
				h.H3(h.Class("project-title"), g.Text(p.Title)),
				h.P(h.Class("project-description"), g.Text(p.Description)),
				h.Span(h.Class("project-cta"),
					g.Text("View case study"),
					ArrowIcon(IconProps{}),
				),
			),
		),
	)
}
