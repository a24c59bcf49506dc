package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/finstart-api/internal/domain"
	"github.com/phrazzld/finstart-api/internal/domain/simulation"
	"github.com/phrazzld/finstart-api/internal/platform/logger"
	"github.com/phrazzld/finstart-api/internal/store"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// SimulationService runs financial calculators on behalf of a user.
type SimulationService interface {
	// Calculate decodes inputs for kind, runs the calculator and logs the
	// invocation to the simulation history. Invalid kinds and inputs are
	// logged with empty outputs and reported as simulation.ErrInvalidKind or
	// simulation.ErrInvalidInput.
	Calculate(ctx context.Context, userID, kind string, inputs json.RawMessage) (simulation.Result, error)
}

type simulationServiceImpl struct {
	engine   simulation.Engine
	history  store.SimulationHistoryStore
	progress ProgressService
	logger   *slog.Logger
	tracer   trace.Tracer
	now      func() time.Time
}

// NewSimulationService creates a new SimulationService.
// A successful calculation also marks its kind completed through progress.
func NewSimulationService(
	engine simulation.Engine,
	history store.SimulationHistoryStore,
	progress ProgressService,
	logger *slog.Logger,
) (SimulationService, error) {
	if engine == nil {
		return nil, &ServiceError{Service: "simulation", Operation: "create_service", Message: "engine cannot be nil"}
	}
	if history == nil {
		return nil, &ServiceError{Service: "simulation", Operation: "create_service", Message: "history store cannot be nil"}
	}
	if progress == nil {
		return nil, &ServiceError{Service: "simulation", Operation: "create_service", Message: "progress service cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &simulationServiceImpl{
		engine:   engine,
		history:  history,
		progress: progress,
		logger:   logger.With(slog.String("component", "simulation_service")),
		tracer:   defaultTracer(),
		now:      func() time.Time { return time.Now().UTC() },
	}, nil
}

// Calculate implements SimulationService.Calculate
func (s *simulationServiceImpl) Calculate(
	ctx context.Context,
	userID, kind string,
	inputs json.RawMessage,
) (result simulation.Result, err error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if userID == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, domain.ErrEmptyUserID)
	}
	if kind == "" {
		return nil, fmt.Errorf("%w: simulation_type is required", ErrInvalidRequest)
	}

	ctx, span := startSpan(ctx, s.tracer, "SimulationService.Calculate",
		attribute.String("simulation.type", kind))
	defer func() { endSpan(span, err) }()

	result, calcErr := s.run(kind, inputs)

	outputs := json.RawMessage(`{}`)
	if calcErr == nil {
		encoded, mErr := json.Marshal(result)
		if mErr != nil {
			return nil, newServiceError("simulation", "calculate", "failed to encode result", mErr)
		}
		outputs = encoded
	}

	record, err := domain.NewSimulationRecord(userID, kind, inputs, outputs, s.now())
	if err != nil {
		return nil, newServiceError("simulation", "calculate", "failed to build history record", err)
	}
	if err = s.history.Append(ctx, record); err != nil {
		return nil, newServiceError("simulation", "calculate", "failed to append simulation history", err)
	}

	if calcErr != nil {
		log.Debug("simulation rejected",
			slog.String("simulation_type", kind),
			slog.String("error", calcErr.Error()))
		return nil, calcErr
	}

	if err = s.progress.CompleteSimulation(ctx, userID, kind); err != nil {
		return nil, err
	}

	log.Info("simulation calculated",
		slog.String("simulation_type", kind),
		slog.String("record_id", record.ID.String()))
	return result, nil
}

func (s *simulationServiceImpl) run(kind string, inputs json.RawMessage) (simulation.Result, error) {
	input, err := simulation.DecodeInput(kind, inputs)
	if err != nil {
		return nil, err
	}

	result, err := s.engine.Calculate(input)
	if err != nil {
		if errors.Is(err, simulation.ErrInvalidKind) || errors.Is(err, simulation.ErrInvalidInput) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", simulation.ErrInvalidInput, err)
	}
	return result, nil
}
