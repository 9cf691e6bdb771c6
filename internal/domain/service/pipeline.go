package service

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/casaflow/underwriting-service/internal/domain/model"
	"github.com/casaflow/underwriting-service/internal/domain/valueobject"
)

// Loan-to-income multiples for the externally-scored path.
var (
	rejectIncomeMultiple  = decimal.NewFromInt(60)
	offerIncomeMultiple   = decimal.NewFromInt(48)
	reducedIncomeMultiple = decimal.NewFromInt(36)
)

// Decision thresholds over the external risk score.
const (
	approveMinScore = 70
	reviewMinScore  = 50
	fallbackScore   = 50
)

// PipelineAssessor derives findings, the explanation and the final decision
// for applications scored by the external credit-risk service. Unlike the
// self-contained path it keys everything off the CreditRiskResult.
type PipelineAssessor struct{}

// RejectionReasons flags a failed assessment or a HIGH external risk level,
// plus a loan amount beyond sixty months of salary. The credit findings are
// mutually exclusive; the affordability finding is independent.
func (PipelineAssessor) RejectionReasons(app model.Application, result model.CreditRiskResult) []model.RejectionReason {
	var reasons []model.RejectionReason

	if !result.Success {
		reasons = append(reasons, model.RejectionReason{
			Factor:      "Credit Assessment",
			Severity:    valueobject.SeverityHigh,
			Description: "Unable to complete credit risk assessment",
			Impact:      "Cannot evaluate creditworthiness",
		})
	} else if result.RiskLevel.Equal(valueobject.RiskLevelHigh) {
		reasons = append(reasons, model.RejectionReason{
			Factor:      "Credit Risk",
			Severity:    valueobject.SeverityHigh,
			Description: fmt.Sprintf("High credit risk detected (Score: %d)", result.RiskScore),
			Impact:      "Increased default probability",
		})
	}

	profile := app.Profile()
	if profile.LoanAmount.GreaterThan(profile.MonthlySalary.Mul(rejectIncomeMultiple)) {
		reasons = append(reasons, model.RejectionReason{
			Factor:      "Loan Affordability",
			Severity:    valueobject.SeverityMedium,
			Description: "Loan amount exceeds affordable limit",
			Impact:      "High debt-to-income ratio",
		})
	}
	return reasons
}

// Recommendations suggests a manual review after a failed assessment and a
// credit-score improvement for verified sub-threshold scores.
func (PipelineAssessor) Recommendations(app model.Application, result model.CreditRiskResult) []model.Recommendation {
	var recs []model.Recommendation

	if !result.Success {
		recs = append(recs, model.Recommendation{
			Action:      "Manual Credit Review",
			Priority:    valueobject.PriorityHigh,
			Description: "System credit assessment failed - requires manual review",
			Timeline:    "Immediate",
		})
	}

	cibil := app.Profile().CibilScore
	if cibil != nil && *cibil > 0 && *cibil < 750 {
		recs = append(recs, model.Recommendation{
			Action:      "Improve Credit Score",
			Priority:    valueobject.PriorityMedium,
			Description: "Increase credit score above 750 for better rates",
			Timeline:    "3-6 months",
		})
	}
	return recs
}

// AlternativeOffers produces a reduced-amount offer, but only when at least
// one rejection reason exists and the request tops forty-eight months of
// salary. The reduced amount is three years of salary.
func (PipelineAssessor) AlternativeOffers(app model.Application, reasons []model.RejectionReason) []model.AlternativeOffer {
	if len(reasons) == 0 {
		return nil
	}
	profile := app.Profile()
	if !profile.LoanAmount.GreaterThan(profile.MonthlySalary.Mul(offerIncomeMultiple)) {
		return nil
	}
	return []model.AlternativeOffer{{
		Type:        "Reduced Loan Amount",
		Amount:      profile.MonthlySalary.Mul(reducedIncomeMultiple).Round(2),
		Tenure:      "60 months",
		Reason:      "Better aligned with income",
		Improvement: "Lower EMI burden",
	}}
}

// Explanation renders the processing-path narrative keyed off the external
// result's category and score rather than the internal health score.
func (PipelineAssessor) Explanation(result model.CreditRiskResult, reasons []model.RejectionReason) string {
	if len(reasons) == 0 {
		return "Application meets all criteria. Recommended for approval."
	}

	var b strings.Builder
	b.WriteString("Application analysis completed. Key findings:\n\n")
	if result.Success {
		fmt.Fprintf(&b, "Credit Risk: %s (Score: %d/100)\n", result.CategoryOrDefault(), result.RiskScore)
	} else {
		b.WriteString("Credit Risk: Assessment Failed - Manual Review Required\n")
	}

	b.WriteString("\nAreas needing improvement:\n")
	for _, reason := range reasons {
		fmt.Fprintf(&b, "- %s\n", reason.Description)
	}
	return b.String()
}

// HealthScore is the score recorded on the pipeline's report: the external
// risk score when available, a neutral fallback when the assessment failed.
func (PipelineAssessor) HealthScore(result model.CreditRiskResult) int {
	if !result.Success {
		return fallbackScore
	}
	return result.RiskScore
}

// ResolveDecision maps the external result to the final status: failures go
// to manual review, LOW risk with a strong score approves, MEDIUM risk with
// a passable score goes to manual review, everything else rejects.
func (PipelineAssessor) ResolveDecision(result model.CreditRiskResult) valueobject.ApplicationStatus {
	if !result.Success {
		return valueobject.StatusManualReview
	}
	switch {
	case result.RiskLevel.Equal(valueobject.RiskLevelLow) && result.RiskScore >= approveMinScore:
		return valueobject.StatusApproved
	case result.RiskLevel.Equal(valueobject.RiskLevelMedium) && result.RiskScore >= reviewMinScore:
		return valueobject.StatusManualReview
	default:
		return valueobject.StatusRejected
	}
}
