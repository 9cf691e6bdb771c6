package service

import "github.com/shopspring/decimal"

// Thresholds carries the tunable limits applied by the rule checks. All
// monetary comparisons use decimal arithmetic; ratios are expressed as
// fractions (0.8 means 80%).
type Thresholds struct {
	// MinCibilScore is the minimum acceptable CIBIL score.
	MinCibilScore int
	// MinMonthlySalary is the income floor for the standard product.
	MinMonthlySalary decimal.Decimal
	// AffordabilityRatio is the share of salary available for EMI payments.
	AffordabilityRatio decimal.Decimal
	// MaxLoanToValue caps the loan amount against the property valuation.
	MaxLoanToValue decimal.Decimal
	// AnnualInterestRate is the nominal yearly rate used for EMI estimates.
	AnnualInterestRate decimal.Decimal
	// TenureMonths is the default tenure used for EMI estimates.
	TenureMonths int
}

// DefaultThresholds returns the standard underwriting limits.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinCibilScore:      750,
		MinMonthlySalary:   decimal.NewFromInt(30000),
		AffordabilityRatio: decimal.NewFromFloat(0.5),
		MaxLoanToValue:     decimal.NewFromFloat(0.8),
		AnnualInterestRate: decimal.NewFromFloat(0.085),
		TenureMonths:       60,
	}
}

// InterestRatePercent renders the annual rate as a display string like "8.5%".
func (t Thresholds) InterestRatePercent() string {
	return t.AnnualInterestRate.Mul(decimal.NewFromInt(100)).String() + "%"
}

// MaxLoanToValuePercent renders the LTV cap as a display string like "80.0%".
func (t Thresholds) MaxLoanToValuePercent() string {
	return t.MaxLoanToValue.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
}
