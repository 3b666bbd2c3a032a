package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rpupo63/studio-landing/api"
	"github.com/rpupo63/studio-landing/config"
	"github.com/rpupo63/studio-landing/database"
	"github.com/rpupo63/studio-landing/services"
	"github.com/rpupo63/studio-landing/static"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg config.Config

	root := &cobra.Command{
		Use:           "studio",
		Short:         "Serve or export the studio landing page",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load environment variables from .env file
			if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
				fmt.Fprintf(os.Stderr, "Warning: Error loading .env file: %v\n", err)
			}

			var err error
			cfg, err = config.New()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
				return err
			}
			setupLogger(cfg)
			return nil
		},
	}

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), cfg)
		},
	}

	var outDir string
	export := &cobra.Command{
		Use:   "export",
		Short: "Write the landing page and case studies as static HTML",
		RunE: func(cmd *cobra.Command, args []string) error {
			if outDir == "" {
				outDir = cfg.ExportDir
			}
			return runExport(cmd.Context(), cfg, outDir)
		},
	}
	export.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default $EXPORT_DIR)")

	root.RunE = serve.RunE
	root.AddCommand(serve, export)
	return root
}

func setupLogger(cfg config.Config) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	if cfg.LogFormat == "json" {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
		return
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})
}

// runServer serves until ctx is cancelled or an interrupt arrives. A
// listener failure is returned as an error.
func runServer(ctx context.Context, cfg config.Config) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info().Msg("Initializing app...")

	db, err := database.Open(cfg.CatalogPath)
	if err != nil {
		log.Error().Err(err).Str("path", cfg.CatalogPath).Msg("Error loading project catalog")
		return err
	}
	log.Info().Int("projects", db.ProjectRepo().Count()).Msg("Project catalog loaded")

	errChannel := make(chan error, 1)

	server := api.NewServer(cfg, db)
	go server.Start(errChannel)

	select {
	case err := <-errChannel:
		log.Error().Err(err).Str("addr", server.Addr).Msg("Server failed")
		return err
	case <-ctx.Done():
		log.Info().Msg("Closing server: interrupt received")
	}

	server.ShutdownGracefully(30 * time.Second)
	return nil
}

func runExport(ctx context.Context, cfg config.Config, dir string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(cfg.CatalogPath)
	if err != nil {
		log.Error().Err(err).Str("path", cfg.CatalogPath).Msg("Error loading project catalog")
		return err
	}

	exporter := services.NewExporter(cfg.Site(), db.ProjectRepo().FindAll(), static.FS)
	if err := exporter.Export(ctx, dir); err != nil {
		log.Error().Err(err).Str("dir", dir).Msg("Export failed")
		return err
	}
	return nil
}
