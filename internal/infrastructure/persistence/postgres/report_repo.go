package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/casaflow/underwriting-service/internal/domain/model"
	"github.com/casaflow/underwriting-service/internal/domain/port"
	pkgpostgres "github.com/casaflow/underwriting-service/pkg/postgres"
)

// Compile-time interface check.
var _ port.AnalysisReportRepository = (*AnalysisReportRepo)(nil)

// AnalysisReportRepo implements port.AnalysisReportRepository backed by
// PostgreSQL. Findings are stored as JSONB arrays so the report row mirrors
// the wire representation.
type AnalysisReportRepo struct {
	pool *pgxpool.Pool
}

// NewAnalysisReportRepo creates a new repository backed by PostgreSQL.
func NewAnalysisReportRepo(pool *pgxpool.Pool) *AnalysisReportRepo {
	return &AnalysisReportRepo{pool: pool}
}

// Save persists an analysis report (upsert by ID with optimistic locking).
func (r *AnalysisReportRepo) Save(ctx context.Context, report model.AnalysisReport) error {
	reasons, err := encodeReasons(report.RejectionReasons())
	if err != nil {
		return err
	}
	recommendations, err := encodeRecommendations(report.Recommendations())
	if err != nil {
		return err
	}
	offers, err := encodeOffers(report.AlternativeOffers())
	if err != nil {
		return err
	}

	query := `
		INSERT INTO analysis_reports (
			id, application_id,
			rejection_reasons, recommendations, alternative_offers,
			financial_health_score, generated_explanation,
			version, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		ON CONFLICT (id) DO UPDATE SET
			rejection_reasons      = EXCLUDED.rejection_reasons,
			recommendations        = EXCLUDED.recommendations,
			alternative_offers     = EXCLUDED.alternative_offers,
			financial_health_score = EXCLUDED.financial_health_score,
			generated_explanation  = EXCLUDED.generated_explanation,
			version                = analysis_reports.version + 1,
			updated_at             = EXCLUDED.updated_at
		WHERE analysis_reports.version = $8
	`
	tag, err := pkgpostgres.QuerierFromContext(ctx, r.pool).Exec(ctx, query,
		report.ID(), report.ApplicationID(),
		reasons, recommendations, offers,
		report.FinancialHealthScore(), report.GeneratedExplanation(),
		report.Version(), report.CreatedAt(), report.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save analysis report: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("analysis report %s: %w", report.ID(), port.ErrVersionConflict)
	}
	return nil
}

// FindByApplicationID retrieves the report for an application. Each
// application has at most one report.
func (r *AnalysisReportRepo) FindByApplicationID(ctx context.Context, applicationID uuid.UUID) (model.AnalysisReport, error) {
	query := `
		SELECT id, application_id,
		       rejection_reasons, recommendations, alternative_offers,
		       financial_health_score, generated_explanation,
		       version, created_at, updated_at
		FROM analysis_reports
		WHERE application_id = $1
	`
	row := pkgpostgres.QuerierFromContext(ctx, r.pool).QueryRow(ctx, query, applicationID)
	report, err := scanReport(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.AnalysisReport{}, fmt.Errorf("analysis report for application %s: %w", applicationID, port.ErrReportNotFound)
		}
		return model.AnalysisReport{}, err
	}
	return report, nil
}

// ---------------------------------------------------------------------------
// encode / scan helpers
// ---------------------------------------------------------------------------

// The JSONB columns always hold arrays. A report that has not been through
// the pipeline yet carries nil slices, which must not serialize as null.

func encodeReasons(reasons []model.RejectionReason) ([]byte, error) {
	if reasons == nil {
		reasons = make([]model.RejectionReason, 0)
	}
	raw, err := json.Marshal(reasons)
	if err != nil {
		return nil, fmt.Errorf("encode rejection reasons: %w", err)
	}
	return raw, nil
}

func encodeRecommendations(recommendations []model.Recommendation) ([]byte, error) {
	if recommendations == nil {
		recommendations = make([]model.Recommendation, 0)
	}
	raw, err := json.Marshal(recommendations)
	if err != nil {
		return nil, fmt.Errorf("encode recommendations: %w", err)
	}
	return raw, nil
}

func encodeOffers(offers []model.AlternativeOffer) ([]byte, error) {
	if offers == nil {
		offers = make([]model.AlternativeOffer, 0)
	}
	raw, err := json.Marshal(offers)
	if err != nil {
		return nil, fmt.Errorf("encode alternative offers: %w", err)
	}
	return raw, nil
}

func scanReport(s scannable) (model.AnalysisReport, error) {
	var (
		id, applicationID    uuid.UUID
		reasonsRaw, recsRaw  []byte
		offersRaw            []byte
		financialHealthScore int
		generatedExplanation string
		version              int
		createdAt, updatedAt time.Time
	)

	err := s.Scan(
		&id, &applicationID,
		&reasonsRaw, &recsRaw, &offersRaw,
		&financialHealthScore, &generatedExplanation,
		&version, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.AnalysisReport{}, err
		}
		return model.AnalysisReport{}, fmt.Errorf("scan analysis report: %w", err)
	}

	var reasons []model.RejectionReason
	if err := json.Unmarshal(reasonsRaw, &reasons); err != nil {
		return model.AnalysisReport{}, fmt.Errorf("decode rejection reasons: %w", err)
	}
	var recommendations []model.Recommendation
	if err := json.Unmarshal(recsRaw, &recommendations); err != nil {
		return model.AnalysisReport{}, fmt.Errorf("decode recommendations: %w", err)
	}
	var offers []model.AlternativeOffer
	if err := json.Unmarshal(offersRaw, &offers); err != nil {
		return model.AnalysisReport{}, fmt.Errorf("decode alternative offers: %w", err)
	}

	return model.ReconstructAnalysisReport(
		id, applicationID,
		reasons, recommendations, offers,
		financialHealthScore, generatedExplanation,
		version, createdAt, updatedAt,
	), nil
}
