package model

import "github.com/casaflow/underwriting-service/internal/domain/valueobject"

// Risk categories reported by the credit-risk service. The category doubles
// as the application's banking_behavior classification.
const (
	RiskCategoryExcellent = "EXCELLENT"
	RiskCategoryGood      = "GOOD"
	RiskCategoryFair      = "FAIR"
	RiskCategoryPoor      = "POOR"
)

// Fraud risk classifications carried on the application.
const (
	FraudRiskLow    = "LOW"
	FraudRiskMedium = "MEDIUM"
	FraudRiskHigh   = "HIGH"
)

// CreditRiskResult is the outcome of an external credit-risk assessment.
// It is trusted input; the engine never recomputes it.
type CreditRiskResult struct {
	Success      bool                  `json:"success"`
	RiskScore    int                   `json:"risk_score"`
	RiskLevel    valueobject.RiskLevel `json:"risk_level"`
	RiskCategory string                `json:"risk_category"`
	Detail       string                `json:"detail,omitempty"`
}

// FailedCreditRisk builds the result used when the assessment service could
// not produce a score.
func FailedCreditRisk(detail string) CreditRiskResult {
	return CreditRiskResult{Success: false, Detail: detail}
}

// CategoryOrDefault returns the risk category, defaulting to FAIR when the
// service did not report one.
func (r CreditRiskResult) CategoryOrDefault() string {
	if r.RiskCategory == "" {
		return RiskCategoryFair
	}
	return r.RiskCategory
}
