package model_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casaflow/underwriting-service/internal/domain/event"
	"github.com/casaflow/underwriting-service/internal/domain/model"
	"github.com/casaflow/underwriting-service/internal/domain/valueobject"
)

func validProfile() model.ApplicantProfile {
	cibil := 780
	return model.ApplicantProfile{
		FirstName:         "Asha",
		LastName:          "Verma",
		CompanyName:       "Acme Industries",
		MonthlySalary:     decimal.NewFromInt(90000),
		ExistingEMI:       decimal.NewFromInt(5000),
		LoanAmount:        decimal.NewFromInt(1200000),
		PropertyValuation: decimal.NewFromInt(2000000),
		CibilScore:        &cibil,
		IsNonAgricultural: true,
		IsRented:          false,
	}
}

func newSubmittedApplication(t *testing.T) model.Application {
	t.Helper()
	app, err := model.NewApplication(validProfile(), time.Now().UTC())
	require.NoError(t, err)
	return app
}

func TestNewApplication_Valid(t *testing.T) {
	app := newSubmittedApplication(t)

	assert.NotEqual(t, uuid.Nil, app.ID())
	assert.True(t, valueobject.StatusSubmitted.Equal(app.Status()))
	assert.Nil(t, app.CreditRiskScore())
	assert.Equal(t, 1, app.Version())
	assert.False(t, app.CreatedAt().IsZero())

	events := app.DomainEvents()
	require.Len(t, events, 1)
	submitted, ok := events[0].(event.ApplicationSubmitted)
	require.True(t, ok)
	assert.Equal(t, app.ID().String(), submitted.AggregateID())
	assert.Equal(t, "Asha Verma", submitted.ApplicantName)
	assert.True(t, decimal.NewFromInt(1200000).Equal(submitted.LoanAmount))
}

func TestNewApplication_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*model.ApplicantProfile)
		wantErr string
	}{
		{
			name:    "missing first name",
			mutate:  func(p *model.ApplicantProfile) { p.FirstName = "" },
			wantErr: "applicant name is required",
		},
		{
			name:    "missing last name",
			mutate:  func(p *model.ApplicantProfile) { p.LastName = "" },
			wantErr: "applicant name is required",
		},
		{
			name:    "zero loan amount",
			mutate:  func(p *model.ApplicantProfile) { p.LoanAmount = decimal.Zero },
			wantErr: "loan amount must be positive",
		},
		{
			name:    "negative salary",
			mutate:  func(p *model.ApplicantProfile) { p.MonthlySalary = decimal.NewFromInt(-1) },
			wantErr: "monthly salary must not be negative",
		},
		{
			name:    "negative existing EMI",
			mutate:  func(p *model.ApplicantProfile) { p.ExistingEMI = decimal.NewFromInt(-500) },
			wantErr: "existing EMI must not be negative",
		},
		{
			name:    "negative valuation",
			mutate:  func(p *model.ApplicantProfile) { p.PropertyValuation = decimal.NewFromInt(-1) },
			wantErr: "property valuation must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := validProfile()
			tt.mutate(&profile)
			_, err := model.NewApplication(profile, time.Now().UTC())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestApplyRiskAssessment_Success(t *testing.T) {
	app := newSubmittedApplication(t)

	result := model.CreditRiskResult{
		Success:      true,
		RiskScore:    72,
		RiskLevel:    valueobject.RiskLevelMedium,
		RiskCategory: model.RiskCategoryGood,
	}
	assessed, err := app.ApplyRiskAssessment(result, time.Now().UTC())
	require.NoError(t, err)

	require.NotNil(t, assessed.CreditRiskScore())
	assert.Equal(t, 72, *assessed.CreditRiskScore())
	assert.Equal(t, model.RiskCategoryGood, assessed.BankingBehavior())
	assert.Equal(t, model.FraudRiskLow, assessed.FraudRisk())
	assert.True(t, valueobject.StatusSubmitted.Equal(assessed.Status()))

	// Original copy is untouched.
	assert.Nil(t, app.CreditRiskScore())
	assert.Empty(t, app.BankingBehavior())

	events := assessed.DomainEvents()
	require.Len(t, events, 2)
	evt, ok := events[1].(event.ApplicationAssessed)
	require.True(t, ok)
	assert.True(t, evt.Success)
	require.NotNil(t, evt.RiskScore)
	assert.Equal(t, 72, *evt.RiskScore)
	assert.Equal(t, "MEDIUM", evt.RiskLevel)
	assert.Equal(t, "GOOD", evt.RiskCategory)
}

func TestApplyRiskAssessment_KeepsExistingBehavior(t *testing.T) {
	now := time.Now().UTC()
	app := model.ReconstructApplication(
		uuid.New(), validProfile(), nil, model.RiskCategoryExcellent, model.FraudRiskMedium,
		valueobject.StatusSubmitted, 3, now, now,
	)

	result := model.CreditRiskResult{
		Success:      true,
		RiskScore:    55,
		RiskLevel:    valueobject.RiskLevelMedium,
		RiskCategory: model.RiskCategoryFair,
	}
	assessed, err := app.ApplyRiskAssessment(result, now)
	require.NoError(t, err)

	assert.Equal(t, model.RiskCategoryExcellent, assessed.BankingBehavior())
	assert.Equal(t, model.FraudRiskMedium, assessed.FraudRisk())
}

func TestApplyRiskAssessment_DefaultsCategoryToFair(t *testing.T) {
	app := newSubmittedApplication(t)

	result := model.CreditRiskResult{
		Success:   true,
		RiskScore: 40,
		RiskLevel: valueobject.RiskLevelHigh,
	}
	assessed, err := app.ApplyRiskAssessment(result, time.Now().UTC())
	require.NoError(t, err)

	assert.Equal(t, model.RiskCategoryFair, assessed.BankingBehavior())
}

func TestApplyRiskAssessment_RejectsFailedResult(t *testing.T) {
	app := newSubmittedApplication(t)

	_, err := app.ApplyRiskAssessment(model.FailedCreditRisk("bureau timeout"), time.Now().UTC())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed credit risk result")
}

func TestFlagManualReview(t *testing.T) {
	app := newSubmittedApplication(t)
	score := 64
	now := time.Now().UTC()
	app = model.ReconstructApplication(
		app.ID(), app.Profile(), &score, model.RiskCategoryGood, model.FraudRiskLow,
		valueobject.StatusSubmitted, 2, now, now,
	)

	flagged := app.FlagManualReview(now)

	assert.True(t, valueobject.StatusManualReview.Equal(flagged.Status()))
	assert.Nil(t, flagged.CreditRiskScore())

	events := flagged.DomainEvents()
	require.Len(t, events, 1)
	evt, ok := events[0].(event.ApplicationAssessed)
	require.True(t, ok)
	assert.False(t, evt.Success)
	assert.Nil(t, evt.RiskScore)
}

func TestRecordDecision(t *testing.T) {
	app := newSubmittedApplication(t)

	decided, err := app.RecordDecision(valueobject.StatusApproved, "report-1", time.Now().UTC())
	require.NoError(t, err)
	assert.True(t, valueobject.StatusApproved.Equal(decided.Status()))

	events := decided.DomainEvents()
	require.Len(t, events, 2)
	evt, ok := events[1].(event.ApplicationDecided)
	require.True(t, ok)
	assert.Equal(t, "APPROVED", evt.Decision)
	assert.Equal(t, "report-1", evt.ReportID)
}

func TestRecordDecision_TerminalStatusRejectsChange(t *testing.T) {
	app := newSubmittedApplication(t)

	approved, err := app.RecordDecision(valueobject.StatusApproved, "report-1", time.Now().UTC())
	require.NoError(t, err)

	_, err = approved.RecordDecision(valueobject.StatusRejected, "report-1", time.Now().UTC())
	require.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)

	// Re-deciding to the same terminal status is allowed (idempotent reprocessing).
	again, err := approved.RecordDecision(valueobject.StatusApproved, "report-1", time.Now().UTC())
	require.NoError(t, err)
	assert.True(t, valueobject.StatusApproved.Equal(again.Status()))
}

func TestRecordDecision_ReviewStatesMayBeRedecided(t *testing.T) {
	app := newSubmittedApplication(t)

	underReview, err := app.RecordDecision(valueobject.StatusUnderReview, "report-1", time.Now().UTC())
	require.NoError(t, err)

	approved, err := underReview.RecordDecision(valueobject.StatusApproved, "report-2", time.Now().UTC())
	require.NoError(t, err)
	assert.True(t, valueobject.StatusApproved.Equal(approved.Status()))
}

func TestClearEvents(t *testing.T) {
	app := newSubmittedApplication(t)
	require.Len(t, app.DomainEvents(), 1)

	cleared := app.ClearEvents()
	assert.Empty(t, cleared.DomainEvents())
	assert.Len(t, app.DomainEvents(), 1)
}
