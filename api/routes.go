package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rpupo63/studio-landing/static"
)

// setupRoutes mounts the HTML pages, the gallery fragment, the read-only
// JSON API and static files.
func setupRoutes(r chi.Router, handlers *routeHandlers, cfg router) {
	// HTML pages
	r.Get("/", handlers.pageHandler.landing())
	r.Get("/fragments/work", handlers.pageHandler.workFragment())
	r.Get("/projects/{projectID}", handlers.pageHandler.caseStudy())

	// JSON API
	r.Route("/api", func(r chi.Router) {
		if len(cfg.origins) > 0 {
			r.Use(CORSCheckMiddleware(cfg.origins))
			r.Use(corsMiddleware(cfg.origins))
		}
		r.Get("/projects", handlers.projectHandler.getProjects())
		r.Get("/projects/{projectID}", handlers.projectHandler.getProject())
	})

	r.Get("/healthz", handlers.healthHandler.health())

	// Static files
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static.FS))))
	if cfg.assetsDir != "" {
		r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.Dir(cfg.assetsDir))))
	}

	r.NotFound(handlers.pageHandler.notFound())
}
