package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/casaflow/underwriting-service/internal/domain/event"
	"github.com/casaflow/underwriting-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Application aggregate root
// ---------------------------------------------------------------------------

// Application is an immutable aggregate. Every mutation returns a new copy.
type Application struct {
	id              uuid.UUID
	profile         ApplicantProfile
	creditRiskScore *int
	bankingBehavior string
	fraudRisk       string
	status          valueobject.ApplicationStatus
	version         int
	createdAt       time.Time
	updatedAt       time.Time
	domainEvents    []event.DomainEvent
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// NewApplication creates a brand-new application in SUBMITTED status.
func NewApplication(profile ApplicantProfile, now time.Time) (Application, error) {
	if profile.FirstName == "" || profile.LastName == "" {
		return Application{}, errors.New("applicant name is required")
	}
	if profile.LoanAmount.LessThanOrEqual(decimal.Zero) {
		return Application{}, errors.New("loan amount must be positive")
	}
	if profile.MonthlySalary.IsNegative() {
		return Application{}, errors.New("monthly salary must not be negative")
	}
	if profile.ExistingEMI.IsNegative() {
		return Application{}, errors.New("existing EMI must not be negative")
	}
	if profile.PropertyValuation.IsNegative() {
		return Application{}, errors.New("property valuation must not be negative")
	}

	id := uuid.New()
	app := Application{
		id:        id,
		profile:   profile,
		status:    valueobject.StatusSubmitted,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}

	submitted := event.NewApplicationSubmitted(id.String(), profile.FullName(), profile.LoanAmount)
	app.domainEvents = append(app.domainEvents, submitted)
	return app, nil
}

// ReconstructApplication rebuilds an aggregate from persistence without side-effects.
func ReconstructApplication(
	id uuid.UUID,
	profile ApplicantProfile,
	creditRiskScore *int,
	bankingBehavior, fraudRisk string,
	status valueobject.ApplicationStatus,
	version int,
	createdAt, updatedAt time.Time,
) Application {
	return Application{
		id:              id,
		profile:         profile,
		creditRiskScore: creditRiskScore,
		bankingBehavior: bankingBehavior,
		fraudRisk:       fraudRisk,
		status:          status,
		version:         version,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// ---------------------------------------------------------------------------
// State transitions (each returns a new copy)
// ---------------------------------------------------------------------------

// ApplyRiskAssessment records a successful external credit-risk result.
// Banking behavior and fraud risk are only defaulted when still unset.
func (a Application) ApplyRiskAssessment(result CreditRiskResult, now time.Time) (Application, error) {
	if !result.Success {
		return a, errors.New("cannot apply a failed credit risk result")
	}
	score := result.RiskScore
	next := a
	next.creditRiskScore = &score
	if next.bankingBehavior == "" {
		next.bankingBehavior = result.CategoryOrDefault()
	}
	if next.fraudRisk == "" {
		next.fraudRisk = FraudRiskLow
	}
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewApplicationAssessed(
		a.id.String(), true, &score, result.RiskLevel.String(), result.RiskCategory,
	))
	return next, nil
}

// FlagManualReview forces the application into MANUAL_REVIEW after a failed
// credit-risk assessment and clears any stale score.
func (a Application) FlagManualReview(now time.Time) Application {
	next := a
	next.status = valueobject.StatusManualReview
	next.creditRiskScore = nil
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewApplicationAssessed(
		a.id.String(), false, nil, "", "",
	))
	return next
}

// RecordDecision applies the final underwriting decision and emits
// ApplicationDecided. Terminal states may only be re-decided to themselves.
func (a Application) RecordDecision(decision valueobject.ApplicationStatus, reportID string, now time.Time) (Application, error) {
	if !a.status.CanTransitionTo(decision) {
		return a, valueobject.ErrInvalidStatusTransition
	}
	next := a
	next.status = decision
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewApplicationDecided(
		a.id.String(), decision.String(), a.creditRiskScore, reportID,
	))
	return next, nil
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (a Application) ID() uuid.UUID                            { return a.id }
func (a Application) Profile() ApplicantProfile                { return a.profile }
func (a Application) CreditRiskScore() *int                    { return a.creditRiskScore }
func (a Application) BankingBehavior() string                  { return a.bankingBehavior }
func (a Application) FraudRisk() string                        { return a.fraudRisk }
func (a Application) Status() valueobject.ApplicationStatus    { return a.status }
func (a Application) Version() int                             { return a.version }
func (a Application) CreatedAt() time.Time                     { return a.createdAt }
func (a Application) UpdatedAt() time.Time                     { return a.updatedAt }
func (a Application) DomainEvents() []event.DomainEvent        { return a.domainEvents }

// ClearEvents returns a copy with an empty event list (call after publishing).
func (a Application) ClearEvents() Application {
	next := a
	next.domainEvents = nil
	return next
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func copyEvents(src []event.DomainEvent) []event.DomainEvent {
	if len(src) == 0 {
		return nil
	}
	dst := make([]event.DomainEvent, len(src))
	copy(dst, src)
	return dst
}
