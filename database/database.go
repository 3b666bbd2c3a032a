package database

import (
	"github.com/rpupo63/studio-landing/models"
)

type Database struct {
	projectRepo *ProjectRepo
}

// New initializes a new Database over a validated, read-only project list.
// The list is copied; later changes to projects are not observed.
func New(projects []models.Project) (Database, error) {
	if err := ValidateProjects(projects); err != nil {
		return Database{}, err
	}
	return Database{
		projectRepo: NewProjectRepo(projects),
	}, nil
}

// Open loads the catalog at path (or the built-in projects when path is
// empty) and wraps it in a Database.
func Open(path string) (Database, error) {
	projects, err := LoadProjects(path)
	if err != nil {
		return Database{}, err
	}
	return New(projects)
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}
