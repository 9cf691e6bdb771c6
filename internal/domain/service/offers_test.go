package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casaflow/underwriting-service/internal/domain/service"
)

func TestProfileOffers_CreditBuilderForMissingCibil(t *testing.T) {
	profile := testProfile()
	profile.CibilScore = nil
	profile.MonthlySalary = decimal.NewFromInt(45000)

	offers := service.ProfileOfferGenerator{}.Generate(profile)

	require.Len(t, offers, 1)
	offer := offers[0]
	assert.Equal(t, "Credit Builder Loan", offer.Type)
	assert.True(t, decimal.NewFromInt(50000).Equal(offer.Amount))
	assert.Equal(t, "12 months", offer.Tenure)
	assert.Equal(t, "12%", offer.InterestRate)
	assert.Equal(t, "Build credit history", offer.Purpose)
	assert.Equal(t, []string{"Low amount", "Short tenure", "Credit reporting"}, offer.Features)
}

func TestProfileOffers_CreditBuilderBoundaries(t *testing.T) {
	generator := service.ProfileOfferGenerator{}

	// Salary must strictly exceed 40000.
	profile := testProfile()
	low := 650
	profile.CibilScore = &low
	profile.MonthlySalary = decimal.NewFromInt(40000)
	assert.Empty(t, generator.Generate(profile))

	profile.MonthlySalary = decimal.NewFromInt(40001)
	assert.Len(t, generator.Generate(profile), 1)

	// CIBIL 700 is out of the credit-builder range.
	edge := 700
	profile.CibilScore = &edge
	assert.Empty(t, generator.Generate(profile))
}

func TestProfileOffers_PreferredCustomer(t *testing.T) {
	profile := testProfile()
	good := 780
	profile.CibilScore = &good
	profile.MonthlySalary = decimal.NewFromInt(90000)

	offers := service.ProfileOfferGenerator{}.Generate(profile)

	require.Len(t, offers, 1)
	offer := offers[0]
	assert.Equal(t, "Preferred Customer Loan", offer.Type)
	// min(2000000, 24 * 90000) = 2000000.
	assert.True(t, decimal.NewFromInt(2000000).Equal(offer.Amount), "got %s", offer.Amount)
	assert.Equal(t, "84 months", offer.Tenure)
	assert.Equal(t, "7.5%", offer.InterestRate)
	assert.Equal(t, []string{"Lower interest", "Longer tenure", "Flexible repayment"}, offer.Features)
}

func TestProfileOffers_PreferredCustomerUncapped(t *testing.T) {
	profile := testProfile()
	good := 780
	profile.CibilScore = &good
	profile.MonthlySalary = decimal.NewFromInt(81000)

	offers := service.ProfileOfferGenerator{}.Generate(profile)

	require.Len(t, offers, 1)
	assert.True(t, decimal.NewFromInt(1944000).Equal(offers[0].Amount), "got %s", offers[0].Amount)
}

func TestProfileOffers_PreferredCustomerBoundaries(t *testing.T) {
	generator := service.ProfileOfferGenerator{}

	// CIBIL must strictly exceed 750.
	profile := testProfile()
	edge := 750
	profile.CibilScore = &edge
	profile.MonthlySalary = decimal.NewFromInt(90000)
	assert.Empty(t, generator.Generate(profile))

	// Salary must strictly exceed 80000.
	good := 780
	profile.CibilScore = &good
	profile.MonthlySalary = decimal.NewFromInt(80000)
	assert.Empty(t, generator.Generate(profile))
}

func TestProfileOffers_NoneForMidProfile(t *testing.T) {
	profile := testProfile()
	mid := 720
	profile.CibilScore = &mid
	profile.MonthlySalary = decimal.NewFromInt(60000)

	assert.Empty(t, service.ProfileOfferGenerator{}.Generate(profile))
}
