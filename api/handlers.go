package api

import (
	"time"

	"github.com/rpupo63/studio-landing/database"
	"github.com/rpupo63/studio-landing/models"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, site models.Site, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		pageHandler:    newPageHandler(database.ProjectRepo(), site),
		projectHandler: newProjectHandler(database.ProjectRepo()),
		healthHandler:  newHealthHandler(database.ProjectRepo(), startupTime),
	}
}
