package database

import (
	"slices"

	"github.com/rpupo63/studio-landing/errs"
	"github.com/rpupo63/studio-landing/models"
)

type ProjectRepo struct {
	projects []models.Project
}

func NewProjectRepo(projects []models.Project) *ProjectRepo {
	return &ProjectRepo{projects: slices.Clone(projects)}
}

// FindAll returns every project in catalog order. The returned slice is a
// copy and may be modified by the caller.
func (r *ProjectRepo) FindAll() []models.Project {
	return slices.Clone(r.projects)
}

// Count returns the number of projects in the catalog
func (r *ProjectRepo) Count() int {
	return len(r.projects)
}

// FindByID returns a project by its ID
func (r *ProjectRepo) FindByID(id int) (models.Project, error) {
	for _, p := range r.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Project{}, errs.NewNotFoundError("project not found")
}
