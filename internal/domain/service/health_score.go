package service

import (
	"github.com/shopspring/decimal"

	"github.com/casaflow/underwriting-service/internal/domain/model"
)

// Ratio bands for the health score contributions.
var (
	dtiExcellent = decimal.NewFromFloat(0.2)
	dtiGood      = decimal.NewFromFloat(0.4)
	dtiPoor      = decimal.NewFromFloat(0.6)

	ltvExcellent = decimal.NewFromFloat(0.6)
	ltvGood      = decimal.NewFromFloat(0.8)
	ltvPoor      = decimal.NewFromFloat(0.9)
)

// HealthScoreCalculator derives the 0-100 financial health score from an
// applicant profile.
//
// Contributions on top of a base of 50:
//   - CIBIL: >=800 +30, >=750 +20, >=700 +10, <600 -20
//   - salary: >=100000 +20, >=50000 +15, >=30000 +10, below -10
//   - debt-to-income (salary > 0): <0.2 +15, <0.4 +10, >0.6 -15
//   - loan-to-value (valuation > 0): <0.6 +15, <0.8 +10, >0.9 -10
//   - non-agricultural property +10, owned residence +10
//
// A missing CIBIL score counts as zero. The sum is clamped to [0,100].
type HealthScoreCalculator struct{}

// Score computes the clamped financial health score.
func (HealthScoreCalculator) Score(profile model.ApplicantProfile) int {
	score := 50

	cibil := profile.CibilOrZero()
	switch {
	case cibil >= 800:
		score += 30
	case cibil >= 750:
		score += 20
	case cibil >= 700:
		score += 10
	case cibil < 600:
		score -= 20
	}

	salary := profile.MonthlySalary
	switch {
	case salary.GreaterThanOrEqual(decimal.NewFromInt(100000)):
		score += 20
	case salary.GreaterThanOrEqual(decimal.NewFromInt(50000)):
		score += 15
	case salary.GreaterThanOrEqual(decimal.NewFromInt(30000)):
		score += 10
	default:
		score -= 10
	}

	if salary.IsPositive() {
		dti := profile.ExistingEMI.Div(salary)
		switch {
		case dti.LessThan(dtiExcellent):
			score += 15
		case dti.LessThan(dtiGood):
			score += 10
		case dti.GreaterThan(dtiPoor):
			score -= 15
		}
	}

	if profile.PropertyValuation.IsPositive() {
		ltv := profile.LoanAmount.Div(profile.PropertyValuation)
		switch {
		case ltv.LessThan(ltvExcellent):
			score += 15
		case ltv.LessThan(ltvGood):
			score += 10
		case ltv.GreaterThan(ltvPoor):
			score -= 10
		}
	}

	if profile.IsNonAgricultural {
		score += 10
	}
	if !profile.IsRented {
		score += 10
	}

	return clampScore(score)
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
