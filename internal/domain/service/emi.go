package service

import (
	"math"

	"github.com/shopspring/decimal"
)

// EMICalculator computes equated monthly installments for a fixed rate and
// tenure, and the inverse (the principal a given installment can service).
// The compounding factor (1+r)^n is evaluated in float64; all money stays in
// decimals and is rounded half-up to paise at the boundary.
type EMICalculator struct {
	// AnnualRate is the nominal yearly interest rate as a fraction.
	AnnualRate decimal.Decimal
	// TenureMonths is the repayment period.
	TenureMonths int
}

// NewEMICalculator creates a calculator for the given rate and tenure.
func NewEMICalculator(annualRate decimal.Decimal, tenureMonths int) *EMICalculator {
	return &EMICalculator{AnnualRate: annualRate, TenureMonths: tenureMonths}
}

// MonthlyInstallment returns the EMI for a principal:
//
//	EMI = P * r * (1+r)^n / ((1+r)^n - 1)
//
// where r is the monthly rate and n the tenure in months. A zero rate
// degenerates to straight-line repayment.
func (c *EMICalculator) MonthlyInstallment(principal decimal.Decimal) decimal.Decimal {
	r := c.monthlyRate()
	if r.IsZero() {
		return principal.Div(decimal.NewFromInt(int64(c.TenureMonths))).Round(2)
	}
	factor := c.compoundingFactor()
	emi := principal.Mul(r).Mul(factor).Div(factor.Sub(decimal.NewFromInt(1)))
	return emi.Round(2)
}

// PrincipalForInstallment returns the loan principal whose EMI equals the
// given installment:
//
//	P = EMI * ((1+r)^n - 1) / (r * (1+r)^n)
//
// It is the exact inverse of MonthlyInstallment up to paise rounding.
func (c *EMICalculator) PrincipalForInstallment(installment decimal.Decimal) decimal.Decimal {
	r := c.monthlyRate()
	if r.IsZero() {
		return installment.Mul(decimal.NewFromInt(int64(c.TenureMonths))).Round(2)
	}
	factor := c.compoundingFactor()
	principal := installment.Mul(factor.Sub(decimal.NewFromInt(1))).Div(r.Mul(factor))
	return principal.Round(2)
}

func (c *EMICalculator) monthlyRate() decimal.Decimal {
	return c.AnnualRate.Div(decimal.NewFromInt(12))
}

func (c *EMICalculator) compoundingFactor() decimal.Decimal {
	r, _ := c.monthlyRate().Float64()
	return decimal.NewFromFloat(math.Pow(1+r, float64(c.TenureMonths)))
}
