package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/casaflow/underwriting-service/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// Applicant carries the applicant snapshot shared by submission and analysis
// requests. Absent numeric fields decode to zero; an absent cibil_score stays
// nil and is treated as unverifiable downstream.
type Applicant struct {
	FirstName         string          `json:"first_name"`
	LastName          string          `json:"last_name"`
	CompanyName       string          `json:"company_name"`
	MonthlySalary     decimal.Decimal `json:"monthly_salary"`
	ExistingEMI       decimal.Decimal `json:"existing_emi"`
	LoanAmount        decimal.Decimal `json:"loan_amount"`
	PropertyValuation decimal.Decimal `json:"property_valuation"`
	CibilScore        *int            `json:"cibil_score,omitempty"`
	IsNonAgricultural bool            `json:"is_non_agricultural"`
	IsRented          bool            `json:"is_rented"`
}

// ToProfile maps the wire payload onto the rule-engine input snapshot.
func (a Applicant) ToProfile() model.ApplicantProfile {
	return model.ApplicantProfile{
		FirstName:         a.FirstName,
		LastName:          a.LastName,
		CompanyName:       a.CompanyName,
		MonthlySalary:     a.MonthlySalary,
		ExistingEMI:       a.ExistingEMI,
		LoanAmount:        a.LoanAmount,
		PropertyValuation: a.PropertyValuation,
		CibilScore:        a.CibilScore,
		IsNonAgricultural: a.IsNonAgricultural,
		IsRented:          a.IsRented,
	}
}

// SubmitApplicationRequest carries the data needed to submit a new application.
type SubmitApplicationRequest struct {
	Applicant
}

// AnalyzeApplicationRequest carries an applicant snapshot for stateless rule
// evaluation; nothing is persisted.
type AnalyzeApplicationRequest struct {
	Applicant
}

// GenerateReportRequest carries an applicant snapshot for a detailed
// assessment report.
type GenerateReportRequest struct {
	Applicant
}

// ProcessApplicationRequest identifies a stored application to run through
// the decision pipeline.
type ProcessApplicationRequest struct {
	ApplicationID uuid.UUID `json:"application_id"`
}

// GetApplicationRequest identifies an application to retrieve.
type GetApplicationRequest struct {
	ApplicationID uuid.UUID `json:"application_id"`
}

// GetAnalysisReportRequest identifies the application whose report to retrieve.
type GetAnalysisReportRequest struct {
	ApplicationID uuid.UUID `json:"application_id"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// AnalysisResponse is the external representation of a completed rule-engine
// analysis. The embedded analysis already carries its wire shape.
type AnalysisResponse struct {
	model.Analysis
}

// AssessmentReportResponse is the external representation of a detailed
// assessment built for reporting.
type AssessmentReportResponse struct {
	model.DetailedAssessment
}

// ApplicationResponse is the external representation of a stored application.
type ApplicationResponse struct {
	ID                uuid.UUID       `json:"id"`
	FirstName         string          `json:"first_name"`
	LastName          string          `json:"last_name"`
	CompanyName       string          `json:"company_name"`
	MonthlySalary     decimal.Decimal `json:"monthly_salary"`
	ExistingEMI       decimal.Decimal `json:"existing_emi"`
	LoanAmount        decimal.Decimal `json:"loan_amount"`
	PropertyValuation decimal.Decimal `json:"property_valuation"`
	CibilScore        *int            `json:"cibil_score,omitempty"`
	IsNonAgricultural bool            `json:"is_non_agricultural"`
	IsRented          bool            `json:"is_rented"`
	CreditRiskScore   *int            `json:"credit_risk_score,omitempty"`
	BankingBehavior   string          `json:"banking_behavior,omitempty"`
	FraudRisk         string          `json:"fraud_risk,omitempty"`
	Status            string          `json:"status"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// AnalysisReportResponse is the external representation of a persisted
// analysis report.
type AnalysisReportResponse struct {
	ID                   uuid.UUID                `json:"id"`
	ApplicationID        uuid.UUID                `json:"application_id"`
	RejectionReasons     []model.RejectionReason  `json:"rejection_reasons"`
	Recommendations      []model.Recommendation   `json:"recommendations"`
	AlternativeOffers    []model.AlternativeOffer `json:"alternative_offers"`
	FinancialHealthScore int                      `json:"financial_health_score"`
	GeneratedExplanation string                   `json:"generated_explanation"`
	CreatedAt            time.Time                `json:"created_at"`
	UpdatedAt            time.Time                `json:"updated_at"`
}

// CreditRiskSummary is the assessment outcome nested in a pipeline response.
// A failed assessment still produces a summary so callers can tell "the
// collaborator failed" apart from "no assessment was attempted".
type CreditRiskSummary struct {
	Success  bool   `json:"success"`
	Score    int    `json:"score,omitempty"`
	Level    string `json:"level,omitempty"`
	Category string `json:"category,omitempty"`
	Error    string `json:"error,omitempty"`
}

// ProcessApplicationResponse reports the outcome of the decision pipeline.
// Error is set by the transport layer when the pipeline fails.
type ProcessApplicationResponse struct {
	Success       bool               `json:"success"`
	ApplicationID uuid.UUID          `json:"application_id,omitzero"`
	Decision      string             `json:"decision,omitempty"`
	CreditRisk    *CreditRiskSummary `json:"credit_risk,omitempty"`
	ReportID      string             `json:"ai_report_id,omitempty"`
	Error         string             `json:"error,omitempty"`
}

// ---------------------------------------------------------------------------
// Mappers
// ---------------------------------------------------------------------------

// FromCreditRisk maps an assessment outcome to its pipeline summary.
func FromCreditRisk(result model.CreditRiskResult) *CreditRiskSummary {
	summary := &CreditRiskSummary{Success: result.Success}
	if result.Success {
		summary.Score = result.RiskScore
		summary.Level = result.RiskLevel.String()
		summary.Category = result.RiskCategory
	} else {
		summary.Error = result.Detail
	}
	return summary
}

// FromApplication maps the application aggregate to its response DTO.
func FromApplication(app model.Application) ApplicationResponse {
	profile := app.Profile()
	return ApplicationResponse{
		ID:                app.ID(),
		FirstName:         profile.FirstName,
		LastName:          profile.LastName,
		CompanyName:       profile.CompanyName,
		MonthlySalary:     profile.MonthlySalary,
		ExistingEMI:       profile.ExistingEMI,
		LoanAmount:        profile.LoanAmount,
		PropertyValuation: profile.PropertyValuation,
		CibilScore:        profile.CibilScore,
		IsNonAgricultural: profile.IsNonAgricultural,
		IsRented:          profile.IsRented,
		CreditRiskScore:   app.CreditRiskScore(),
		BankingBehavior:   app.BankingBehavior(),
		FraudRisk:         app.FraudRisk(),
		Status:            app.Status().String(),
		CreatedAt:         app.CreatedAt(),
		UpdatedAt:         app.UpdatedAt(),
	}
}

// FromAnalysisReport maps the report aggregate to its response DTO.
func FromAnalysisReport(report model.AnalysisReport) AnalysisReportResponse {
	return AnalysisReportResponse{
		ID:                   report.ID(),
		ApplicationID:        report.ApplicationID(),
		RejectionReasons:     report.RejectionReasons(),
		Recommendations:      report.Recommendations(),
		AlternativeOffers:    report.AlternativeOffers(),
		FinancialHealthScore: report.FinancialHealthScore(),
		GeneratedExplanation: report.GeneratedExplanation(),
		CreatedAt:            report.CreatedAt(),
		UpdatedAt:            report.UpdatedAt(),
	}
}
