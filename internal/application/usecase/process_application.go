package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/casaflow/underwriting-service/internal/application/dto"
	"github.com/casaflow/underwriting-service/internal/domain/model"
	"github.com/casaflow/underwriting-service/internal/domain/port"
	"github.com/casaflow/underwriting-service/internal/domain/service"
)

// ProcessApplicationUseCase runs a stored application through the decision
// pipeline: external credit risk assessment, report generation, and the final
// decision, persisted atomically.
type ProcessApplicationUseCase struct {
	appRepo      port.ApplicationRepository
	reportRepo   port.AnalysisReportRepository
	tx           port.TxRunner
	publisher    port.EventPublisher
	creditClient port.CreditRiskClient
	assessor     service.PipelineAssessor
	logger       *slog.Logger
}

// NewProcessApplicationUseCase wires dependencies.
func NewProcessApplicationUseCase(
	appRepo port.ApplicationRepository,
	reportRepo port.AnalysisReportRepository,
	tx port.TxRunner,
	publisher port.EventPublisher,
	creditClient port.CreditRiskClient,
	logger *slog.Logger,
) *ProcessApplicationUseCase {
	return &ProcessApplicationUseCase{
		appRepo:      appRepo,
		reportRepo:   reportRepo,
		tx:           tx,
		publisher:    publisher,
		creditClient: creditClient,
		assessor:     service.PipelineAssessor{},
		logger:       logger,
	}
}

// Execute assesses, reports on, and decides the given application. The
// application and its report are written in one transaction; an error from
// any step before the commit leaves the store untouched.
func (uc *ProcessApplicationUseCase) Execute(
	ctx context.Context,
	req dto.ProcessApplicationRequest,
) (dto.ProcessApplicationResponse, error) {
	now := time.Now().UTC()

	// 1. Fetch the application.
	app, err := uc.appRepo.FindByID(ctx, req.ApplicationID)
	if err != nil {
		return dto.ProcessApplicationResponse{}, fmt.Errorf("find application: %w", err)
	}

	// 2. Assess credit risk. A failing collaborator degrades to a failed
	// result and routes the application to manual review instead of aborting.
	result, err := uc.creditClient.Assess(ctx, app)
	if err != nil {
		uc.logger.Warn("credit risk assessment failed",
			"application_id", app.ID(),
			"error", err,
		)
		result = model.FailedCreditRisk(err.Error())
	}

	// 3. Apply the assessment to the aggregate.
	if result.Success {
		app, err = app.ApplyRiskAssessment(result, now)
		if err != nil {
			return dto.ProcessApplicationResponse{}, fmt.Errorf("apply risk assessment: %w", err)
		}
	} else {
		app = app.FlagManualReview(now)
	}

	// 4. Derive the report content.
	reasons := uc.assessor.RejectionReasons(app, result)
	recommendations := uc.assessor.Recommendations(app, result)
	offers := uc.assessor.AlternativeOffers(app, reasons)
	explanation := uc.assessor.Explanation(result, reasons)
	healthScore := uc.assessor.HealthScore(result)

	// 5. Get or create the report and record the findings.
	report, err := uc.reportRepo.FindByApplicationID(ctx, app.ID())
	if errors.Is(err, port.ErrReportNotFound) {
		report = model.NewAnalysisReport(app.ID(), now)
	} else if err != nil {
		return dto.ProcessApplicationResponse{}, fmt.Errorf("load analysis report: %w", err)
	}
	report = report.
		WithFindings(reasons, recommendations, offers, now).
		WithAssessment(healthScore, explanation, now)

	// 6. Resolve and record the decision.
	decision := uc.assessor.ResolveDecision(result)
	app, err = app.RecordDecision(decision, report.ID().String(), now)
	if err != nil {
		return dto.ProcessApplicationResponse{}, fmt.Errorf("record decision: %w", err)
	}

	// 7. Persist application and report atomically.
	err = uc.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := uc.appRepo.Save(txCtx, app); err != nil {
			return fmt.Errorf("save application: %w", err)
		}
		if err := uc.reportRepo.Save(txCtx, report); err != nil {
			return fmt.Errorf("save analysis report: %w", err)
		}
		return nil
	})
	if err != nil {
		return dto.ProcessApplicationResponse{}, fmt.Errorf("persist decision: %w", err)
	}

	// 8. Publish domain events. The decision is already committed, so a
	// broker failure is logged rather than surfaced.
	if err := uc.publisher.Publish(ctx, app.DomainEvents()...); err != nil {
		uc.logger.Error("failed to publish domain events",
			"application_id", app.ID(),
			"error", err,
			"event_count", len(app.DomainEvents()),
		)
	}

	uc.logger.Info("application processed",
		"application_id", app.ID(),
		"decision", decision.String(),
		"report_id", report.ID(),
	)

	return dto.ProcessApplicationResponse{
		Success:       true,
		ApplicationID: app.ID(),
		Decision:      decision.String(),
		CreditRisk:    dto.FromCreditRisk(result),
		ReportID:      report.ID().String(),
	}, nil
}
