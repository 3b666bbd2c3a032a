package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/studio-landing/database"
	"github.com/rpupo63/studio-landing/errs"
	"github.com/rpupo63/studio-landing/models"
	"github.com/rpupo63/studio-landing/view"
)

type pageHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
	site        models.Site
}

func newPageHandler(projectRepo *database.ProjectRepo, site models.Site) pageHandler {
	logger := log.With().Str("handlerName", "pageHandler").Logger()

	return pageHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
		site:        site,
	}
}

// landing renders the full page. Each request is a fresh page view: the
// filter query parameter is the selection intent applied to its catalog.
func (h pageHandler) landing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		catalog, err := catalogForRequest(r, h.projectRepo)
		if err != nil {
			h.responder.WriteErrorPage(w, r, h.site, err)
			return
		}

		h.responder.WriteHTML(w, r, http.StatusOK, view.LandingPage(view.NewPageData(h.site, catalog)))
	}
}

// workFragment re-renders only the gallery section for HTMX swaps.
func (h pageHandler) workFragment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "HX-Request")

		catalog, err := catalogForRequest(r, h.projectRepo)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteHTML(w, r, http.StatusOK, view.WorkFragment(view.NewPageData(h.site, catalog)))
	}
}

// caseStudy renders the detail page linked from each gallery card.
func (h pageHandler) caseStudy() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project, err := findProject(r, h.projectRepo)
		if err != nil {
			h.responder.WriteErrorPage(w, r, h.site, err)
			return
		}

		h.responder.WriteHTML(w, r, http.StatusOK, view.CaseStudyPage(h.site, project, false))
	}
}

func (h pageHandler) notFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteErrorPage(w, r, h.site, errs.NewNotFoundError("page not found"))
	}
}
