package grpc

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/casaflow/underwriting-service/internal/application/dto"
	"github.com/casaflow/underwriting-service/internal/application/usecase"
	"github.com/casaflow/underwriting-service/internal/domain/port"
)

// UnderwritingHandler implements the gRPC underwriting service handler.
type UnderwritingHandler struct {
	UnimplementedUnderwritingServiceServer

	submitApplication *usecase.SubmitApplicationUseCase
	analyze           *usecase.AnalyzeApplicationUseCase
	generateReport    *usecase.GenerateReportUseCase
	process           *usecase.ProcessApplicationUseCase
	getApplication    *usecase.GetApplicationUseCase
	getReport         *usecase.GetAnalysisReportUseCase
}

// NewUnderwritingHandler creates a new gRPC underwriting handler.
func NewUnderwritingHandler(
	submitApplication *usecase.SubmitApplicationUseCase,
	analyze *usecase.AnalyzeApplicationUseCase,
	generateReport *usecase.GenerateReportUseCase,
	process *usecase.ProcessApplicationUseCase,
	getApplication *usecase.GetApplicationUseCase,
	getReport *usecase.GetAnalysisReportUseCase,
) *UnderwritingHandler {
	return &UnderwritingHandler{
		submitApplication: submitApplication,
		analyze:           analyze,
		generateReport:    generateReport,
		process:           process,
		getApplication:    getApplication,
		getReport:         getReport,
	}
}

// SubmitApplicationRequest represents the gRPC request for submitting an
// application. The applicant snapshot travels in its wire shape; absent
// numeric fields decode to zero and an absent cibil_score stays unverifiable.
type SubmitApplicationRequest struct {
	dto.Applicant
}

// SubmitApplicationResponse represents the gRPC response for a submitted
// application.
type SubmitApplicationResponse struct {
	dto.ApplicationResponse
}

// AnalyzeApplicationRequest represents the gRPC request for a stateless
// rule-engine analysis.
type AnalyzeApplicationRequest struct {
	dto.Applicant
}

// AnalyzeApplicationResponse represents the gRPC response for an analysis.
type AnalyzeApplicationResponse struct {
	dto.AnalysisResponse
}

// GenerateAssessmentReportRequest represents the gRPC request for a detailed
// assessment report.
type GenerateAssessmentReportRequest struct {
	dto.Applicant
}

// GenerateAssessmentReportResponse represents the gRPC response for a
// detailed assessment report.
type GenerateAssessmentReportResponse struct {
	dto.AssessmentReportResponse
}

// ProcessApplicationRequest represents the gRPC request for running the
// decision pipeline over a stored application.
type ProcessApplicationRequest struct {
	ApplicationID string `json:"application_id"`
}

// ProcessApplicationResponse represents the gRPC response of the decision
// pipeline. Pipeline failures are reported in-band as {success:false, error}.
type ProcessApplicationResponse struct {
	dto.ProcessApplicationResponse
}

// GetApplicationRequest represents the gRPC request for retrieving an
// application.
type GetApplicationRequest struct {
	ApplicationID string `json:"application_id"`
}

// GetApplicationResponse represents the gRPC response for an application.
type GetApplicationResponse struct {
	dto.ApplicationResponse
}

// GetAnalysisReportRequest represents the gRPC request for retrieving the
// analysis report persisted for an application.
type GetAnalysisReportRequest struct {
	ApplicationID string `json:"application_id"`
}

// GetAnalysisReportResponse represents the gRPC response for an analysis
// report.
type GetAnalysisReportResponse struct {
	dto.AnalysisReportResponse
}

// SubmitApplication handles the gRPC SubmitApplication request.
func (h *UnderwritingHandler) SubmitApplication(ctx context.Context, req *SubmitApplicationRequest) (*SubmitApplicationResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.submitApplication.Execute(ctx, dto.SubmitApplicationRequest{Applicant: req.Applicant})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &SubmitApplicationResponse{ApplicationResponse: result}, nil
}

// AnalyzeApplication handles the gRPC AnalyzeApplication request.
func (h *UnderwritingHandler) AnalyzeApplication(ctx context.Context, req *AnalyzeApplicationRequest) (*AnalyzeApplicationResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.analyze.Execute(ctx, dto.AnalyzeApplicationRequest{Applicant: req.Applicant})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &AnalyzeApplicationResponse{AnalysisResponse: result}, nil
}

// GenerateAssessmentReport handles the gRPC GenerateAssessmentReport request.
func (h *UnderwritingHandler) GenerateAssessmentReport(ctx context.Context, req *GenerateAssessmentReportRequest) (*GenerateAssessmentReportResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.generateReport.Execute(ctx, dto.GenerateReportRequest{Applicant: req.Applicant})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &GenerateAssessmentReportResponse{AssessmentReportResponse: result}, nil
}

// ProcessApplication handles the gRPC ProcessApplication request. Pipeline
// errors surface in-band so callers always receive the structured
// {success, error} record rather than a bare transport failure.
func (h *UnderwritingHandler) ProcessApplication(ctx context.Context, req *ProcessApplicationRequest) (*ProcessApplicationResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	applicationID, err := uuid.Parse(req.ApplicationID)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("invalid application_id: %v", err))
	}

	result, err := h.process.Execute(ctx, dto.ProcessApplicationRequest{ApplicationID: applicationID})
	if err != nil {
		return &ProcessApplicationResponse{
			ProcessApplicationResponse: dto.ProcessApplicationResponse{
				Success: false,
				Error:   err.Error(),
			},
		}, nil
	}

	return &ProcessApplicationResponse{ProcessApplicationResponse: result}, nil
}

// GetApplication handles the gRPC GetApplication request.
func (h *UnderwritingHandler) GetApplication(ctx context.Context, req *GetApplicationRequest) (*GetApplicationResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	applicationID, err := uuid.Parse(req.ApplicationID)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("invalid application_id: %v", err))
	}

	result, err := h.getApplication.Execute(ctx, dto.GetApplicationRequest{ApplicationID: applicationID})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &GetApplicationResponse{ApplicationResponse: result}, nil
}

// GetAnalysisReport handles the gRPC GetAnalysisReport request.
func (h *UnderwritingHandler) GetAnalysisReport(ctx context.Context, req *GetAnalysisReportRequest) (*GetAnalysisReportResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	applicationID, err := uuid.Parse(req.ApplicationID)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("invalid application_id: %v", err))
	}

	result, err := h.getReport.Execute(ctx, dto.GetAnalysisReportRequest{ApplicationID: applicationID})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &GetAnalysisReportResponse{AnalysisReportResponse: result}, nil
}

// toStatusError maps domain errors to gRPC status codes.
func toStatusError(err error) error {
	switch {
	case errors.Is(err, port.ErrApplicationNotFound), errors.Is(err, port.ErrReportNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, port.ErrVersionConflict):
		return status.Error(codes.Aborted, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
