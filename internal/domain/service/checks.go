package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/casaflow/underwriting-service/internal/domain/model"
	"github.com/casaflow/underwriting-service/internal/domain/valueobject"
)

// Offer constants for the income-based fallback product.
var (
	smallLoanCap        = decimal.NewFromInt(500000)
	smallLoanMultiplier = decimal.NewFromInt(10)
)

// RuleCheck inspects an applicant profile and returns its findings. Checks
// never fail: missing or malformed numeric data counts as zero or
// "unverifiable" and surfaces as a finding, not an error.
type RuleCheck func(profile model.ApplicantProfile) model.Findings

// RuleEngine holds the independent risk checks. Checks do not see each
// other's results; the analyzer merges their findings in fixed order.
type RuleEngine struct {
	thresholds Thresholds
	emi        *EMICalculator
}

// NewRuleEngine creates an engine with the given limits.
func NewRuleEngine(thresholds Thresholds) *RuleEngine {
	return &RuleEngine{
		thresholds: thresholds,
		emi:        NewEMICalculator(thresholds.AnnualInterestRate, thresholds.TenureMonths),
	}
}

// Checks returns the rule checks in evaluation order: credit profile,
// affordability, loan-to-value, employment stability.
func (e *RuleEngine) Checks() []RuleCheck {
	return []RuleCheck{
		e.CheckCreditProfile,
		e.CheckAffordability,
		e.CheckLoanToValue,
		e.CheckEmploymentStability,
	}
}

// CheckCreditProfile verifies the CIBIL score. An absent or implausibly low
// score means the history cannot be verified at all; a present score below
// the minimum raises a softer finding.
func (e *RuleEngine) CheckCreditProfile(profile model.ApplicantProfile) model.Findings {
	var f model.Findings
	switch {
	case profile.CibilUnverifiable():
		f.Reasons = append(f.Reasons, model.RejectionReason{
			Factor:      "Credit History",
			Severity:    valueobject.SeverityHigh,
			Description: "Unable to verify credit history or insufficient credit data",
			Impact:      "Cannot assess repayment behavior",
		})
		f.Recommendations = append(f.Recommendations, model.Recommendation{
			Action:      "Build Credit History",
			Priority:    valueobject.PriorityHigh,
			Description: "Start with secured credit card and make timely payments",
			Timeline:    "6-12 months",
		})
	case *profile.CibilScore < e.thresholds.MinCibilScore:
		f.Reasons = append(f.Reasons, model.RejectionReason{
			Factor:      "Credit Score",
			Severity:    valueobject.SeverityMedium,
			Description: fmt.Sprintf("CIBIL score of %d below minimum requirement of %d", *profile.CibilScore, e.thresholds.MinCibilScore),
			Impact:      "Higher risk of default",
		})
		f.Recommendations = append(f.Recommendations, model.Recommendation{
			Action:      "Improve Credit Score",
			Priority:    valueobject.PriorityHigh,
			Description: "Pay existing debts on time and reduce credit utilization",
			Timeline:    "3-6 months",
		})
	}
	return f
}

// CheckAffordability compares the requested loan's estimated EMI against the
// income share left after existing obligations. When existing EMIs already
// swallow the affordable share the check stops there; otherwise an
// unaffordable request yields a reduced-amount offer sized by the inverse
// EMI formula.
func (e *RuleEngine) CheckAffordability(profile model.ApplicantProfile) model.Findings {
	var f model.Findings
	affordable := profile.MonthlySalary.Mul(e.thresholds.AffordabilityRatio)
	obligation := affordable.Sub(profile.ExistingEMI)

	if obligation.LessThanOrEqual(decimal.Zero) {
		f.Reasons = append(f.Reasons, model.RejectionReason{
			Factor:      "Debt Burden",
			Severity:    valueobject.SeverityHigh,
			Description: "Existing EMI obligations exceed affordable limits",
			Impact:      "No capacity for additional loan",
		})
		return f
	}

	estimated := e.emi.MonthlyInstallment(profile.LoanAmount)
	if estimated.GreaterThan(obligation) {
		f.Reasons = append(f.Reasons, model.RejectionReason{
			Factor:      "Loan Affordability",
			Severity:    valueobject.SeverityMedium,
			Description: fmt.Sprintf("Requested loan EMI (₹%s) exceeds affordable limit (₹%s)", wholeRupees(estimated), wholeRupees(obligation)),
			Impact:      "High debt burden ratio",
		})
		offerEMI := obligation.Round(2)
		f.Offers = append(f.Offers, model.AlternativeOffer{
			Type:         "Reduced Loan Amount",
			Amount:       e.emi.PrincipalForInstallment(obligation),
			Tenure:       fmt.Sprintf("%d months", e.thresholds.TenureMonths),
			EMI:          &offerEMI,
			InterestRate: e.thresholds.InterestRatePercent(),
			Reason:       "Better aligned with your income and existing obligations",
		})
	}
	return f
}

// CheckLoanToValue fires when the loan exceeds the allowed share of the
// property valuation. Skipped entirely when no valuation is present.
func (e *RuleEngine) CheckLoanToValue(profile model.ApplicantProfile) model.Findings {
	var f model.Findings
	if !profile.PropertyValuation.IsPositive() {
		return f
	}
	ratio := profile.LoanAmount.Div(profile.PropertyValuation)
	if ratio.GreaterThan(e.thresholds.MaxLoanToValue) {
		f.Reasons = append(f.Reasons, model.RejectionReason{
			Factor:      "Loan-to-Value Ratio",
			Severity:    valueobject.SeverityMedium,
			Description: fmt.Sprintf("LTV ratio of %s exceeds maximum allowed %s", ratioPercent(ratio), e.thresholds.MaxLoanToValuePercent()),
			Impact:      "Higher collateral risk",
		})
		f.Offers = append(f.Offers, model.AlternativeOffer{
			Type:   "LTV Adjusted Loan",
			Amount: e.thresholds.MaxLoanToValue.Mul(profile.PropertyValuation).Round(2),
			MaxLTV: e.thresholds.MaxLoanToValuePercent(),
			Reason: "Maintains healthy loan-to-value ratio",
		})
	}
	return f
}

// CheckEmploymentStability fires when the salary is below the product floor
// and proposes a smaller income-based loan instead.
func (e *RuleEngine) CheckEmploymentStability(profile model.ApplicantProfile) model.Findings {
	var f model.Findings
	if profile.MonthlySalary.GreaterThanOrEqual(e.thresholds.MinMonthlySalary) {
		return f
	}
	f.Reasons = append(f.Reasons, model.RejectionReason{
		Factor:      "Income Level",
		Severity:    valueobject.SeverityMedium,
		Description: "Monthly salary below minimum threshold for this loan type",
		Impact:      "Limited repayment capacity",
	})
	f.Offers = append(f.Offers, model.AlternativeOffer{
		Type:     "Smaller Personal Loan",
		Amount:   decimal.Min(smallLoanCap, profile.MonthlySalary.Mul(smallLoanMultiplier)),
		Tenure:   "36 months",
		Purpose:  "Income-based smaller loan",
		Features: []string{"Lower amount", "Shorter tenure"},
	})
	return f
}
