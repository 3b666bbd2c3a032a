package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/studio-landing/database"
	"github.com/rpupo63/studio-landing/errs"
	"github.com/rpupo63/studio-landing/models"
	"github.com/rpupo63/studio-landing/services"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
	}
}

// getProjects lists the projects visible under the optional filter query
// parameter, in catalog order.
// @Router /api/projects [get]
func (h projectHandler) getProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		catalog, err := catalogForRequest(r, h.projectRepo)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		visible := catalog.VisibleProjects()
		h.responder.WriteJSON(w, ProjectCollection{
			Filter:   catalog.ActiveFilter(),
			Projects: visible,
			Total:    len(visible),
		})
	}
}

// getProject retrieves a specific project by ID
// @Router /api/projects/{projectID} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project, err := findProject(r, h.projectRepo)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// catalogForRequest builds the page view's catalog and applies the filter
// selected by the request.
func catalogForRequest(r *http.Request, repo *database.ProjectRepo) (*services.ProjectCatalog, error) {
	filter, err := models.ParseFilter(r.URL.Query().Get("filter"))
	if err != nil {
		return nil, err
	}

	catalog := services.NewProjectCatalog(repo.FindAll())
	if err := catalog.SetFilter(filter); err != nil {
		return nil, err
	}
	return catalog, nil
}

func findProject(r *http.Request, repo *database.ProjectRepo) (models.Project, error) {
	projectIDStr := chi.URLParam(r, "projectID")
	if projectIDStr == "" {
		return models.Project{}, errs.NewBadRequestError("missing projectID")
	}

	projectID, err := strconv.Atoi(projectIDStr)
	if err != nil || projectID <= 0 {
		return models.Project{}, errs.NewInvalidFieldError("projectID", "must be a positive integer")
	}

	return repo.FindByID(projectID)
}
