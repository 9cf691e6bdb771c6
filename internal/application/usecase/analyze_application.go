package usecase

import (
	"context"

	"github.com/casaflow/underwriting-service/internal/application/dto"
	"github.com/casaflow/underwriting-service/internal/domain/service"
)

// AnalyzeApplicationUseCase runs the self-contained rule engine over an
// applicant snapshot. Nothing is persisted; the same input always yields the
// same analysis.
type AnalyzeApplicationUseCase struct {
	analyzer *service.Analyzer
}

// NewAnalyzeApplicationUseCase wires dependencies.
func NewAnalyzeApplicationUseCase(analyzer *service.Analyzer) *AnalyzeApplicationUseCase {
	return &AnalyzeApplicationUseCase{analyzer: analyzer}
}

// Execute evaluates the applicant snapshot and returns the completed analysis.
func (uc *AnalyzeApplicationUseCase) Execute(
	ctx context.Context,
	req dto.AnalyzeApplicationRequest,
) (dto.AnalysisResponse, error) {
	analysis := uc.analyzer.Analyze(req.ToProfile())
	return dto.AnalysisResponse{Analysis: analysis}, nil
}
