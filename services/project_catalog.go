package services

import (
	"slices"
	"strconv"

	"github.com/rpupo63/studio-landing/errs"
	"github.com/rpupo63/studio-landing/models"
)

// ProjectCatalog holds the project list of a single page view together with
// the gallery filter currently selected on it. It is not safe for concurrent
// use; each page view owns its own catalog over a shared read-only list.
type ProjectCatalog struct {
	projects []models.Project
	active   models.Filter
}

// NewProjectCatalog creates a catalog showing every project.
func NewProjectCatalog(projects []models.Project) *ProjectCatalog {
	return &ProjectCatalog{projects: slices.Clone(projects)}
}

// SetFilter selects the gallery filter. A value outside the enumeration
// leaves the selection unchanged and returns errs.ErrInvalidFilter.
func (c *ProjectCatalog) SetFilter(f models.Filter) error {
	if !f.Valid() {
		return errs.NewInvalidFilterError(strconv.Itoa(int(f)))
	}
	c.active = f
	return nil
}

func (c *ProjectCatalog) ActiveFilter() models.Filter {
	return c.active
}

// VisibleProjects derives the gallery contents from the active filter. The
// result keeps catalog order and is never nil.
func (c *ProjectCatalog) VisibleProjects() []models.Project {
	visible := make([]models.Project, 0, len(c.projects))
	for _, p := range c.projects {
		if c.active.Matches(p) {
			visible = append(visible, p)
		}
	}
	return visible
}
