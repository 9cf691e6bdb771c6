package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/casaflow/underwriting-service/internal/domain/model"
	"github.com/casaflow/underwriting-service/internal/domain/port"
	"github.com/casaflow/underwriting-service/internal/domain/valueobject"
	pkgpostgres "github.com/casaflow/underwriting-service/pkg/postgres"
)

// Compile-time interface check.
var _ port.ApplicationRepository = (*ApplicationRepo)(nil)

// ApplicationRepo implements port.ApplicationRepository backed by PostgreSQL.
// Queries resolve their Querier through the context so that calls made inside
// a TxManager transaction join it automatically.
type ApplicationRepo struct {
	pool *pgxpool.Pool
}

// NewApplicationRepo creates a new repository backed by PostgreSQL.
func NewApplicationRepo(pool *pgxpool.Pool) *ApplicationRepo {
	return &ApplicationRepo{pool: pool}
}

// Save persists a loan application (upsert by ID with optimistic locking).
// The applicant profile is fixed at submission, so the conflict branch only
// touches assessment fields, status and the version counter.
func (r *ApplicationRepo) Save(ctx context.Context, app model.Application) error {
	query := `
		INSERT INTO loan_applications (
			id, first_name, last_name, company_name,
			monthly_salary, existing_emi, loan_amount, property_valuation,
			cibil_score, is_non_agricultural, is_rented,
			credit_risk_score, banking_behavior, fraud_risk,
			status, version, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
		ON CONFLICT (id) DO UPDATE SET
			credit_risk_score = EXCLUDED.credit_risk_score,
			banking_behavior  = EXCLUDED.banking_behavior,
			fraud_risk        = EXCLUDED.fraud_risk,
			status            = EXCLUDED.status,
			version           = loan_applications.version + 1,
			updated_at        = EXCLUDED.updated_at
		WHERE loan_applications.version = $16
	`
	profile := app.Profile()
	tag, err := pkgpostgres.QuerierFromContext(ctx, r.pool).Exec(ctx, query,
		app.ID(), profile.FirstName, profile.LastName, profile.CompanyName,
		profile.MonthlySalary, profile.ExistingEMI, profile.LoanAmount, profile.PropertyValuation,
		profile.CibilScore, profile.IsNonAgricultural, profile.IsRented,
		app.CreditRiskScore(), app.BankingBehavior(), app.FraudRisk(),
		app.Status().String(), app.Version(), app.CreatedAt(), app.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save loan application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("loan application %s: %w", app.ID(), port.ErrVersionConflict)
	}
	return nil
}

// FindByID retrieves a single loan application.
func (r *ApplicationRepo) FindByID(ctx context.Context, id uuid.UUID) (model.Application, error) {
	query := `
		SELECT id, first_name, last_name, company_name,
		       monthly_salary, existing_emi, loan_amount, property_valuation,
		       cibil_score, is_non_agricultural, is_rented,
		       credit_risk_score, banking_behavior, fraud_risk,
		       status, version, created_at, updated_at
		FROM loan_applications
		WHERE id = $1
	`
	row := pkgpostgres.QuerierFromContext(ctx, r.pool).QueryRow(ctx, query, id)
	app, err := scanApplication(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Application{}, fmt.Errorf("loan application %s: %w", id, port.ErrApplicationNotFound)
		}
		return model.Application{}, err
	}
	return app, nil
}

// ---------------------------------------------------------------------------
// scan helpers
// ---------------------------------------------------------------------------

type scannable interface {
	Scan(dest ...any) error
}

func scanApplication(s scannable) (model.Application, error) {
	var (
		id                               uuid.UUID
		firstName, lastName, companyName string
		monthlySalary, existingEMI       decimal.Decimal
		loanAmount, propertyValuation    decimal.Decimal
		cibilScore                       *int
		isNonAgricultural, isRented      bool
		creditRiskScore                  *int
		bankingBehavior, fraudRisk       string
		statusStr                        string
		version                          int
		createdAt, updatedAt             time.Time
	)

	err := s.Scan(
		&id, &firstName, &lastName, &companyName,
		&monthlySalary, &existingEMI, &loanAmount, &propertyValuation,
		&cibilScore, &isNonAgricultural, &isRented,
		&creditRiskScore, &bankingBehavior, &fraudRisk,
		&statusStr, &version, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Application{}, err
		}
		return model.Application{}, fmt.Errorf("scan loan application: %w", err)
	}

	status, err := valueobject.ApplicationStatusFromString(statusStr)
	if err != nil {
		return model.Application{}, fmt.Errorf("parse status: %w", err)
	}

	profile := model.ApplicantProfile{
		FirstName:         firstName,
		LastName:          lastName,
		CompanyName:       companyName,
		MonthlySalary:     monthlySalary,
		ExistingEMI:       existingEMI,
		LoanAmount:        loanAmount,
		PropertyValuation: propertyValuation,
		CibilScore:        cibilScore,
		IsNonAgricultural: isNonAgricultural,
		IsRented:          isRented,
	}

	return model.ReconstructApplication(
		id, profile,
		creditRiskScore, bankingBehavior, fraudRisk,
		status, version, createdAt, updatedAt,
	), nil
}
