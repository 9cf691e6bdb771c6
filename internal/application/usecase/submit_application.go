package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/casaflow/underwriting-service/internal/application/dto"
	"github.com/casaflow/underwriting-service/internal/domain/model"
	"github.com/casaflow/underwriting-service/internal/domain/port"
)

// SubmitApplicationUseCase registers a new application so the decision
// pipeline can pick it up later.
type SubmitApplicationUseCase struct {
	appRepo   port.ApplicationRepository
	publisher port.EventPublisher
	logger    *slog.Logger
}

// NewSubmitApplicationUseCase wires dependencies.
func NewSubmitApplicationUseCase(
	appRepo port.ApplicationRepository,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *SubmitApplicationUseCase {
	return &SubmitApplicationUseCase{
		appRepo:   appRepo,
		publisher: publisher,
		logger:    logger,
	}
}

// Execute creates and persists a new application and publishes its events.
func (uc *SubmitApplicationUseCase) Execute(
	ctx context.Context,
	req dto.SubmitApplicationRequest,
) (dto.ApplicationResponse, error) {
	now := time.Now().UTC()

	// 1. Create the application aggregate.
	app, err := model.NewApplication(req.ToProfile(), now)
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("create application: %w", err)
	}

	// 2. Persist.
	if err := uc.appRepo.Save(ctx, app); err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("save application: %w", err)
	}

	// 3. Publish domain events.
	if err := uc.publisher.Publish(ctx, app.DomainEvents()...); err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("publish events: %w", err)
	}

	uc.logger.Info("application submitted",
		"application_id", app.ID(),
		"applicant", app.Profile().FullName(),
	)

	return dto.FromApplication(app), nil
}
