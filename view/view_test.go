package view

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/rpupo63/studio-landing/models"
)

type fakeCatalog struct {
	filter   models.Filter
	projects []models.Project
}

func (f fakeCatalog) ActiveFilter() models.Filter { return f.filter }
func (f fakeCatalog) VisibleProjects() []models.Project { return f.projects }

func testProjects() []models.Project {
	return []models.Project{
		{ID: 1, Title: "Urban Transit App", Category: models.CategoryMobile, Description: "Real-time navigation for city commuters", Image: "/assets/project-transit.jpg", Year: "2025"},
		{ID: 3, Title: "Health Tracker", Category: models.CategoryMobile, Description: "Personal wellness monitoring", Image: "/assets/project-health.jpg", Year: "2024"},
	}
}

func renderNode(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func renderComponent(t *testing.T, c templ.Component) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, c.Render(context.Background(), &b))
	return b.String()
}

func TestFilterControlsMarkExactlyOneActive(t *testing.T) {
	for _, active := range models.Filters() {
		out := renderNode(t, FilterControls(active, false))

		assert.Equal(t, 1, strings.Count(out, `aria-pressed="true"`), active.String())
		assert.Equal(t, 3, strings.Count(out, `aria-pressed="false"`), active.String())
		assert.Contains(t, out, `value="`+active.String()+`" aria-pressed="true"`)
		assert.Equal(t, 1, strings.Count(out, "is-active"))
	}
}

func TestFilterControlsLabelsAndValues(t *testing.T) {
	out := renderNode(t, FilterControls(models.FilterAll, false))

	for _, want := range []string{">All</button>", ">Mobile</button>", ">Web</button>", ">Systems</button>"} {
		assert.Contains(t, out, want)
	}
	assert.Contains(t, out, `role="group"`)
	assert.Contains(t, out, `aria-label="Filter projects by category"`)
	assert.Contains(t, out, `hx-get="/fragments/work?filter=system"`)
	assert.Contains(t, out, `hx-push-url="/?filter=web"`)
	assert.Contains(t, out, `hx-push-url="/"`)
	assert.NotContains(t, out, "formaction")
}

func TestFilterControlsStaticLinks(t *testing.T) {
	out := renderNode(t, FilterControls(models.FilterWeb, true))

	assert.Contains(t, out, `formaction="/work/mobile/"`)
	assert.Contains(t, out, `formaction="/"`)
	assert.NotContains(t, out, "hx-get")
}

func TestWorkSectionRendersVisibleProjectsInOrder(t *testing.T) {
	d := NewPageData(models.DefaultSite(), fakeCatalog{filter: models.FilterMobile, projects: testProjects()})
	out := renderNode(t, WorkSection(d))

	first := strings.Index(out, `href="/projects/1"`)
	second := strings.Index(out, `href="/projects/3"`)
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	assert.Less(t, first, second)
	assert.Equal(t, 2, strings.Count(out, `<article class="project-card"`))
	assert.Contains(t, out, `alt="Urban Transit App interface preview"`)
	assert.Contains(t, out, `loading="lazy"`)
	assert.Contains(t, out, `data-category="mobile"`)
	assert.Contains(t, out, "View case study")
	assert.NotContains(t, out, "project-empty")
}

func TestWorkSectionEmptyGallery(t *testing.T) {
	d := PageData{Site: models.DefaultSite(), Filter: models.FilterSystem, Projects: []models.Project{}}
	out := renderNode(t, WorkSection(d))

	assert.NotContains(t, out, "<article")
	assert.Contains(t, out, `<div class="project-grid"></div>`)
	assert.Contains(t, out, "No projects in this category yet.")
}

func TestPageContainsNavigationAndContact(t *testing.T) {
	d := NewPageData(models.DefaultSite(), fakeCatalog{projects: testProjects()})
	out := renderComponent(t, LandingPage(d))

	assert.True(t, strings.HasPrefix(out, "<!doctype html>"))
	for _, anchor := range []string{`href="#work"`, `href="#process"`, `href="#about"`, `href="#contact"`} {
		assert.Contains(t, out, anchor)
	}
	for _, id := range []string{`id="work"`, `id="process"`, `id="about"`, `id="contact"`} {
		assert.Contains(t, out, id)
	}
	assert.Contains(t, out, `href="mailto:hello@studio.com"`)
	assert.Contains(t, out, `href="tel:+15555551234"`)
	assert.Contains(t, out, "Discover")
	assert.Contains(t, out, "Deliver")
	assert.Contains(t, out, "50+")
	assert.Contains(t, out, htmxScriptURL)
	assert.Contains(t, out, StylesheetPath)
}

func TestStaticPageSkipsHTMX(t *testing.T) {
	d := NewPageData(models.DefaultSite(), fakeCatalog{projects: testProjects()})
	d.Static = true
	out := renderComponent(t, LandingPage(d))

	assert.NotContains(t, out, htmxScriptURL)
	assert.NotContains(t, out, "hx-get")
}

func TestPageEscapesContent(t *testing.T) {
	site := models.DefaultSite()
	site.Name = "<Studio & Co>"
	projects := []models.Project{{ID: 9, Title: `<script>alert("x")</script>`, Category: models.CategoryWeb}}
	out := renderComponent(t, LandingPage(PageData{Site: site, Projects: projects}))

	assert.NotContains(t, out, `<script>alert`)
	assert.Contains(t, out, "&lt;Studio &amp; Co&gt;")
}

func TestArrowIconDefaults(t *testing.T) {
	out := renderNode(t, ArrowIcon(IconProps{}))

	assert.Contains(t, out, `class="project-arrow"`)
	assert.Contains(t, out, `width="16"`)
	assert.Contains(t, out, `height="16"`)
	assert.Contains(t, out, `viewBox="0 0 16 16"`)
	assert.Contains(t, out, `aria-hidden="true"`)
	assert.Contains(t, out, `d="M3 8h10m0 0L8 3m5 5-5 5"`)
	assert.Contains(t, out, `stroke-linecap="round"`)
}

func TestArrowIconOverrides(t *testing.T) {
	out := renderNode(t, ArrowIcon(IconProps{Class: "cta-arrow", Width: 24, Height: 20}))

	assert.Contains(t, out, `class="cta-arrow"`)
	assert.Contains(t, out, `width="24"`)
	assert.Contains(t, out, `height="20"`)
}

func TestCaseStudyPage(t *testing.T) {
	p := testProjects()[1]
	out := renderComponent(t, CaseStudyPage(models.DefaultSite(), p, false))

	assert.Contains(t, out, "<title>Health Tracker | Studio</title>")
	assert.Contains(t, out, `data-project-id="3"`)
	assert.Contains(t, out, `href="/?filter=mobile#work"`)

	static := renderComponent(t, CaseStudyPage(models.DefaultSite(), p, true))
	assert.Contains(t, static, `href="/work/mobile/#work"`)
}

func TestErrorPage(t *testing.T) {
	out := renderComponent(t, ErrorPage(models.DefaultSite(), 404, "project not found"))

	assert.Contains(t, out, "<h1 class=\"cta-title\">404</h1>")
	assert.Contains(t, out, "project not found")
	assert.Contains(t, out, `class="cta-arrow"`)
}

func TestComponentHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var b strings.Builder
	err := Component(ArrowIcon(IconProps{})).Render(ctx, &b)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, b.String())
}
