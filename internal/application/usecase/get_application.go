package usecase

import (
	"context"
	"fmt"

	"github.com/casaflow/underwriting-service/internal/application/dto"
	"github.com/casaflow/underwriting-service/internal/domain/port"
)

// GetApplicationUseCase retrieves an application by ID.
type GetApplicationUseCase struct {
	appRepo port.ApplicationRepository
}

// NewGetApplicationUseCase wires dependencies.
func NewGetApplicationUseCase(appRepo port.ApplicationRepository) *GetApplicationUseCase {
	return &GetApplicationUseCase{appRepo: appRepo}
}

// Execute returns an application response for the given ID.
func (uc *GetApplicationUseCase) Execute(
	ctx context.Context,
	req dto.GetApplicationRequest,
) (dto.ApplicationResponse, error) {
	app, err := uc.appRepo.FindByID(ctx, req.ApplicationID)
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("find application: %w", err)
	}
	return dto.FromApplication(app), nil
}

// GetAnalysisReportUseCase retrieves the analysis report persisted for an
// application by the decision pipeline.
type GetAnalysisReportUseCase struct {
	reportRepo port.AnalysisReportRepository
}

// NewGetAnalysisReportUseCase wires dependencies.
func NewGetAnalysisReportUseCase(reportRepo port.AnalysisReportRepository) *GetAnalysisReportUseCase {
	return &GetAnalysisReportUseCase{reportRepo: reportRepo}
}

// Execute returns the report recorded for the given application.
func (uc *GetAnalysisReportUseCase) Execute(
	ctx context.Context,
	req dto.GetAnalysisReportRequest,
) (dto.AnalysisReportResponse, error) {
	report, err := uc.reportRepo.FindByApplicationID(ctx, req.ApplicationID)
	if err != nil {
		return dto.AnalysisReportResponse{}, fmt.Errorf("find analysis report: %w", err)
	}
	return dto.FromAnalysisReport(report), nil
}
