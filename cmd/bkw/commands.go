package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nyashahama/bkw-backend/internal/config"
	"github.com/nyashahama/bkw-backend/internal/database"
	"github.com/nyashahama/bkw-backend/internal/handler"
	"github.com/nyashahama/bkw-backend/internal/logger"
	"github.com/nyashahama/bkw-backend/internal/repository"
	"github.com/nyashahama/bkw-backend/internal/router"
	"github.com/nyashahama/bkw-backend/internal/server"
	"github.com/nyashahama/bkw-backend/internal/service"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const (
	shutdownTimeout  = 30 * time.Second
	provisionTimeout = time.Minute
)

func newRootCmd() *cobra.Command {
	serve := newServeCmd()

	root := &cobra.Command{
		Use:           "bkw",
		Short:         "Wedding planning marketplace API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}
	root.AddCommand(serve, newMigrateCmd())

	return root
}

func newServeCmd() *cobra.Command {
	var skipProvision bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Provision the schema and serve the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), skipProvision)
		},
	}
	cmd.Flags().BoolVar(&skipProvision, "skip-provision", false, "do not create the database or run migrations on start")

	return cmd
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the database if needed and apply migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, loggerService, log := bootstrap()
			defer loggerService.Shutdown()

			ctx, cancel := context.WithTimeout(cmd.Context(), provisionTimeout)
			defer cancel()

			if err := database.EnsureDatabase(ctx, &log, cfg.Database); err != nil {
				log.Warn().Err(err).Msg("could not create database, trying migrations anyway")
			}
			return database.Migrate(ctx, &log, cfg)
		},
	}
}

func bootstrap() (*config.Config, *logger.LoggerService, zerolog.Logger) {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	return cfg, loggerService, log
}

func serve(ctx context.Context, skipProvision bool) error {
	cfg, loggerService, log := bootstrap()
	defer loggerService.Shutdown()

	if !skipProvision {
		provisionCtx, cancel := context.WithTimeout(ctx, provisionTimeout)
		database.Provision(provisionCtx, &log, cfg)
		cancel()
	}

	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize server")
		return err
	}

	repos := repository.NewRepositories(srv)
	services := service.NewServices(srv, repos)
	handlers := handler.NewHandlers(srv, services)
	r := router.NewRouter(srv, handlers)

	srv.SetupHTTPServer(r)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			log.Error().Err(err).Msg("server stopped unexpectedly")
			return err
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		return err
	}

	log.Info().Msg("server exited properly")
	return nil
}
