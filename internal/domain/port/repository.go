package port

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/casaflow/underwriting-service/internal/domain/event"
	"github.com/casaflow/underwriting-service/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Sentinel errors
// ---------------------------------------------------------------------------

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrReportNotFound      = errors.New("analysis report not found")
	ErrVersionConflict     = errors.New("optimistic locking conflict")
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// ApplicationRepository persists and retrieves loan applications.
type ApplicationRepository interface {
	Save(ctx context.Context, app model.Application) error
	FindByID(ctx context.Context, id uuid.UUID) (model.Application, error)
}

// AnalysisReportRepository persists and retrieves analysis reports.
type AnalysisReportRepository interface {
	Save(ctx context.Context, report model.AnalysisReport) error
	FindByApplicationID(ctx context.Context, applicationID uuid.UUID) (model.AnalysisReport, error)
}

// TxRunner executes a function inside a single database transaction.
// Repository calls made with the context passed to fn join that transaction.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}

// ---------------------------------------------------------------------------
// External service ports
// ---------------------------------------------------------------------------

// CreditRiskClient obtains a credit risk assessment for an application from
// an external scoring service.
type CreditRiskClient interface {
	Assess(ctx context.Context, app model.Application) (model.CreditRiskResult, error)
}

// AssessmentCache stores recent credit risk results keyed by application ID.
type AssessmentCache interface {
	Get(ctx context.Context, applicationID uuid.UUID) (model.CreditRiskResult, bool, error)
	Set(ctx context.Context, applicationID uuid.UUID, result model.CreditRiskResult, ttl time.Duration) error
}
