package database

import (
	"errors"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rpupo63/studio-landing/errs"
	"github.com/rpupo63/studio-landing/models"
)

// DefaultProjects returns the built-in catalog shipped with the site.
func DefaultProjects() []models.Project {
	return []models.Project{
		{
			ID:          1,
			Title:       "Urban Transit App",
			Category:    models.CategoryMobile,
			Description: "Real-time navigation for city commuters",
			Image:       "/assets/project-transit.jpg",
			Year:        "2025",
		},
		{
			ID:          2,
			Title:       "Financial Dashboard",
			Category:    models.CategoryWeb,
			Description: "Enterprise analytics platform",
			Image:       "/assets/project-finance.jpg",
			Year:        "2024",
		},
		{
			ID:          3,
			Title:       "Health Tracker",
			Category:    models.CategoryMobile,
			Description: "Personal wellness monitoring",
			Image:       "/assets/project-health.jpg",
			Year:        "2024",
		},
		{
			ID:          4,
			Title:       "Design System",
			Category:    models.CategorySystem,
			Description: "Component library for enterprise software",
			Image:       "/assets/project-system.jpg",
			Year:        "2025",
		},
	}
}

// LoadProjects reads a catalog file. JSON files are accepted as well since
// JSON is a subset of YAML. An empty path yields DefaultProjects.
func LoadProjects(path string) ([]models.Project, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultProjects(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errs.NewCatalogLoadError(path, err)
	}
	defer f.Close()

	projects, err := DecodeProjects(f)
	if err != nil {
		return nil, errs.NewCatalogLoadError(path, err)
	}
	return projects, nil
}

// DecodeProjects decodes a `projects:` document. Unknown keys are rejected so
// a misspelled field does not silently produce an empty value.
func DecodeProjects(r io.Reader) ([]models.Project, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var list models.ProjectList
	if err := dec.Decode(&list); err != nil {
		if errors.Is(err, io.EOF) {
			return []models.Project{}, nil
		}
		return nil, err
	}
	if list.Projects == nil {
		return []models.Project{}, nil
	}
	return list.Projects, nil
}

// ValidateProjects enforces the catalog invariants: positive unique ids,
// a non-empty title and a known category on every record.
func ValidateProjects(projects []models.Project) error {
	seen := make(map[int]struct{}, len(projects))
	for i, p := range projects {
		if p.ID <= 0 {
			return errs.NewInvalidProjectError(i, "id", "id must be a positive integer")
		}
		if strings.TrimSpace(p.Title) == "" {
			return errs.NewInvalidProjectError(i, "title", "title is required")
		}
		if !p.Category.Valid() {
			return errs.NewInvalidProjectError(i, "category", "category must be one of "+categoryList())
		}
		if _, dup := seen[p.ID]; dup {
			return errs.NewDuplicateProjectIDError(p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}

func categoryList() string {
	names := make([]string, 0, len(models.Categories()))
	for _, c := range models.Categories() {
		names = append(names, c.String())
	}
	return strings.Join(names, ", ")
}
