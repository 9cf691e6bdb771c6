package service

import (
	"github.com/shopspring/decimal"

	"github.com/casaflow/underwriting-service/internal/domain/model"
)

// Profile-driven product limits.
var (
	creditBuilderAmount    = decimal.NewFromInt(50000)
	creditBuilderMaxCibil  = 700
	creditBuilderMinSalary = decimal.NewFromInt(40000)

	preferredCap        = decimal.NewFromInt(2000000)
	preferredMultiplier = decimal.NewFromInt(24)
	preferredMinCibil   = 750
	preferredMinSalary  = decimal.NewFromInt(80000)
)

// OfferStrategy proposes alternative products from a profile alone,
// independent of any rejection findings.
type OfferStrategy func(profile model.ApplicantProfile) []model.AlternativeOffer

// ProfileOfferGenerator suggests products keyed off income and credit
// standing rather than off a specific rejection. A missing CIBIL score
// counts as zero, so the credit-builder product can fire for applicants
// with no history at all.
type ProfileOfferGenerator struct{}

// Generate runs the strategies in fixed order: credit builder first,
// preferred customer second. Both may fire for the same profile.
func (ProfileOfferGenerator) Generate(profile model.ApplicantProfile) []model.AlternativeOffer {
	var offers []model.AlternativeOffer
	for _, strategy := range []OfferStrategy{creditBuilderOffer, preferredCustomerOffer} {
		offers = append(offers, strategy(profile)...)
	}
	return offers
}

func creditBuilderOffer(profile model.ApplicantProfile) []model.AlternativeOffer {
	if profile.CibilOrZero() >= creditBuilderMaxCibil || !profile.MonthlySalary.GreaterThan(creditBuilderMinSalary) {
		return nil
	}
	return []model.AlternativeOffer{{
		Type:         "Credit Builder Loan",
		Amount:       creditBuilderAmount,
		Tenure:       "12 months",
		InterestRate: "12%",
		Purpose:      "Build credit history",
		Features:     []string{"Low amount", "Short tenure", "Credit reporting"},
	}}
}

func preferredCustomerOffer(profile model.ApplicantProfile) []model.AlternativeOffer {
	if profile.CibilOrZero() <= preferredMinCibil || !profile.MonthlySalary.GreaterThan(preferredMinSalary) {
		return nil
	}
	return []model.AlternativeOffer{{
		Type:         "Preferred Customer Loan",
		Amount:       decimal.Min(preferredCap, profile.MonthlySalary.Mul(preferredMultiplier)),
		Tenure:       "84 months",
		InterestRate: "7.5%",
		Features:     []string{"Lower interest", "Longer tenure", "Flexible repayment"},
	}}
}
