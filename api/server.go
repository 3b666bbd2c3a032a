package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/studio-landing/config"
	"github.com/rpupo63/studio-landing/database"
	"github.com/rpupo63/studio-landing/models"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(cfg config.Config, database database.Database) Server {
	// Capture startup time
	startupTime := time.Now()

	router := newRouter(database,
		withSite(cfg.Site()),
		withOrigins(cfg.Origins()),
		withAssetsDir(cfg.AssetsDir),
		withStartupTime(startupTime),
	)

	server := &http.Server{
		Addr:         cfg.Address(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout(),  // Timeout for reading the entire request
		WriteTimeout: cfg.WriteTimeout(), // Timeout for writing the response
		IdleTimeout:  cfg.IdleTimeout(),  // Timeout for idle connections
	}

	return Server{server, startupTime}
}

type router struct {
	site        models.Site
	origins     []string
	assetsDir   string
	startupTime time.Time
}

func withSite(site models.Site) func(*router) {
	return func(r *router) {
		r.site = site
	}
}

func withOrigins(origins []string) func(*router) {
	return func(r *router) {
		r.origins = origins
	}
}

func withAssetsDir(dir string) func(*router) {
	return func(r *router) {
		r.assetsDir = dir
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func newRouter(database database.Database, opts ...func(*router)) *chi.Mux {
	router := router{site: models.DefaultSite(), startupTime: time.Now()}
	for _, opt := range opts {
		opt(&router)
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(RequestIDMiddleware)
	chiRouter.Use(LogInternalServerErrors)
	chiRouter.Use(HTTPLoggingMiddleware)

	handlers := initializeHandlers(database, router.site, router.startupTime)

	setupRoutes(chiRouter, handlers, router)

	return chiRouter
}

// Start binds the listen address and serves until shutdown. A bind or
// serve failure is sent on errChannel; a graceful shutdown sends nothing.
func (s Server) Start(errChannel chan<- error) {
	listener, err := net.Listen("tcp", s.Addr)
	if err != nil {
		errChannel <- err
		return
	}

	log.Info().Msgf("Server started on: %s", listener.Addr())
	if err := s.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		errChannel <- err
	}
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
