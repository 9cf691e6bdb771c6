package event

import (
	"github.com/shopspring/decimal"

	"github.com/casaflow/underwriting-service/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// ---------------------------------------------------------------------------
// Application Events
// ---------------------------------------------------------------------------

// ApplicationSubmitted is raised when a new application enters the system.
type ApplicationSubmitted struct {
	events.BaseEvent
	ApplicantName string          `json:"applicant_name"`
	LoanAmount    decimal.Decimal `json:"loan_amount"`
}

func NewApplicationSubmitted(applicationID, applicantName string, loanAmount decimal.Decimal) ApplicationSubmitted {
	return ApplicationSubmitted{
		BaseEvent:     events.NewBaseEvent("underwriting.application.submitted", applicationID, "Application"),
		ApplicantName: applicantName,
		LoanAmount:    loanAmount,
	}
}

// ApplicationAssessed is raised when the external credit-risk assessment
// completes, whether it succeeded or not.
type ApplicationAssessed struct {
	events.BaseEvent
	Success      bool   `json:"success"`
	RiskScore    *int   `json:"risk_score,omitempty"`
	RiskLevel    string `json:"risk_level,omitempty"`
	RiskCategory string `json:"risk_category,omitempty"`
}

func NewApplicationAssessed(applicationID string, success bool, riskScore *int, riskLevel, riskCategory string) ApplicationAssessed {
	return ApplicationAssessed{
		BaseEvent:    events.NewBaseEvent("underwriting.application.assessed", applicationID, "Application"),
		Success:      success,
		RiskScore:    riskScore,
		RiskLevel:    riskLevel,
		RiskCategory: riskCategory,
	}
}

// ApplicationDecided is raised with the pipeline's final decision.
type ApplicationDecided struct {
	events.BaseEvent
	Decision        string `json:"decision"`
	CreditRiskScore *int   `json:"credit_risk_score,omitempty"`
	ReportID        string `json:"report_id,omitempty"`
}

func NewApplicationDecided(applicationID, decision string, creditRiskScore *int, reportID string) ApplicationDecided {
	return ApplicationDecided{
		BaseEvent:       events.NewBaseEvent("underwriting.application.decided", applicationID, "Application"),
		Decision:        decision,
		CreditRiskScore: creditRiskScore,
		ReportID:        reportID,
	}
}
