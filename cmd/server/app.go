package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/finstart-api/internal/api"
	"github.com/phrazzld/finstart-api/internal/config"
	"github.com/phrazzld/finstart-api/internal/domain/simulation"
	"github.com/phrazzld/finstart-api/internal/generation"
	"github.com/phrazzld/finstart-api/internal/service"
)

// application holds the wired HTTP surface and its configuration.
type application struct {
	config *config.Config
	logger *slog.Logger
	router http.Handler
}

// handlers groups the HTTP handlers mounted by newRouter.
type handlers struct {
	catalog    *api.CatalogHandler
	lessons    *api.LessonHandler
	progress   *api.ProgressHandler
	simulation *api.SimulationHandler
}

// newApplication builds stores, services and handlers on an open database.
func newApplication(ctx context.Context, cfg *config.Config, log *slog.Logger, db *sql.DB) (*application, error) {
	st, err := newStores(db, cfg.Database.Driver, log)
	if err != nil {
		return nil, err
	}

	generator, err := newGenerator(ctx, cfg.LLM, log)
	if err != nil {
		return nil, err
	}
	return newApplicationWith(cfg, log, st, generator)
}

func newApplicationWith(
	cfg *config.Config,
	log *slog.Logger,
	st stores,
	generator generation.Generator,
) (*application, error) {
	prompts, err := generation.NewPromptBuilder(cfg.LLM.PromptTemplatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load prompt template: %w", err)
	}

	lessonService, err := service.NewLessonService(st.lessons, generator, prompts, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create lesson service: %w", err)
	}
	progressService, err := service.NewProgressService(st.progress, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create progress service: %w", err)
	}
	simulationService, err := service.NewSimulationService(
		simulation.NewDefaultEngine(), st.history, progressService, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create simulation service: %w", err)
	}

	h := handlers{
		catalog:    api.NewCatalogHandler(),
		lessons:    api.NewLessonHandler(lessonService),
		progress:   api.NewProgressHandler(progressService),
		simulation: api.NewSimulationHandler(simulationService),
	}

	return &application{
		config: cfg,
		logger: log,
		router: newRouter(cfg.Server, log, h),
	}, nil
}

// Run serves HTTP until ctx is cancelled.
func (a *application) Run(ctx context.Context) error {
	return serve(ctx, a.config.Server, a.router, a.logger)
}
