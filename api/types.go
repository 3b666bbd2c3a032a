package api

import "github.com/rpupo63/studio-landing/models"

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	pageHandler    pageHandler
	projectHandler projectHandler
	healthHandler  healthHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error"`
	Status  string `json:"status"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
	Cause   string `json:"cause,omitempty"`
}

// ProjectCollection is the body of GET /api/projects
type ProjectCollection struct {
	Filter   models.Filter    `json:"filter"`
	Projects []models.Project `json:"projects"`
	Total    int              `json:"total"`
}
