package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/rpupo63/studio-landing/database"
)

type healthHandler struct {
	responder   Responder
	projectRepo *database.ProjectRepo
	startupTime time.Time
}

func newHealthHandler(projectRepo *database.ProjectRepo, startupTime time.Time) healthHandler {
	logger := log.With().Str("handlerName", "healthHandler").Logger()
	return healthHandler{
		responder:   NewResponder(logger),
		projectRepo: projectRepo,
		startupTime: startupTime,
	}
}

type healthResponse struct {
	Status   string `json:"status"`
	Uptime   string `json:"uptime"`
	Projects int    `json:"projects"`
}

func (h healthHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, healthResponse{
			Status:   "ok",
			Uptime:   time.Since(h.startupTime).Round(time.Second).String(),
			Projects: h.projectRepo.Count(),
		})
	}
}
