package usecase

import (
	"context"
	"time"

	"github.com/casaflow/underwriting-service/internal/application/dto"
	"github.com/casaflow/underwriting-service/internal/domain/service"
)

// GenerateReportUseCase builds a detailed assessment report for an applicant
// snapshot: the full analysis wrapped with a summary projection stamped with
// the report date.
type GenerateReportUseCase struct {
	analyzer *service.Analyzer
}

// NewGenerateReportUseCase wires dependencies.
func NewGenerateReportUseCase(analyzer *service.Analyzer) *GenerateReportUseCase {
	return &GenerateReportUseCase{analyzer: analyzer}
}

// Execute evaluates the applicant snapshot and returns the detailed report.
func (uc *GenerateReportUseCase) Execute(
	ctx context.Context,
	req dto.GenerateReportRequest,
) (dto.AssessmentReportResponse, error) {
	report := uc.analyzer.DetailedReport(req.ToProfile(), time.Now().UTC())
	return dto.AssessmentReportResponse{DetailedAssessment: report}, nil
}
