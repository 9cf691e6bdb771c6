package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casaflow/underwriting-service/internal/domain/service"
)

func TestEMICalculator_MonthlyInstallment(t *testing.T) {
	calc := service.NewEMICalculator(decimal.NewFromFloat(0.085), 60)

	// 200000 at 8.5% over 60 months lands just above 4103.
	emi := calc.MonthlyInstallment(decimal.NewFromInt(200000))
	assert.Equal(t, "4103", emi.Round(0).StringFixed(0), "got %s", emi)
	assert.Equal(t, int32(-2), emi.Exponent(), "EMI must be rounded to paise")
}

func TestEMICalculator_ScalesLinearly(t *testing.T) {
	calc := service.NewEMICalculator(decimal.NewFromFloat(0.085), 60)

	one := calc.MonthlyInstallment(decimal.NewFromInt(200000))
	five := calc.MonthlyInstallment(decimal.NewFromInt(1000000))

	diff := five.Sub(one.Mul(decimal.NewFromInt(5))).Abs()
	assert.True(t, diff.LessThanOrEqual(decimal.NewFromFloat(0.05)),
		"5x principal should give 5x EMI within rounding, diff %s", diff)
}

func TestEMICalculator_InverseRoundTrip(t *testing.T) {
	calc := service.NewEMICalculator(decimal.NewFromFloat(0.085), 60)

	installment := decimal.NewFromInt(12500)
	principal := calc.PrincipalForInstallment(installment)
	require.True(t, principal.IsPositive())

	// Re-running the reduced principal through the EMI formula must
	// reproduce the installment within paise rounding.
	back := calc.MonthlyInstallment(principal)
	diff := back.Sub(installment).Abs()
	assert.True(t, diff.LessThanOrEqual(decimal.NewFromFloat(0.02)),
		"expected EMI %s to round-trip, got %s", installment, back)
}

func TestEMICalculator_ZeroRate(t *testing.T) {
	calc := service.NewEMICalculator(decimal.Zero, 60)

	emi := calc.MonthlyInstallment(decimal.NewFromInt(60000))
	assert.True(t, decimal.NewFromInt(1000).Equal(emi), "got %s", emi)

	principal := calc.PrincipalForInstallment(decimal.NewFromInt(1000))
	assert.True(t, decimal.NewFromInt(60000).Equal(principal), "got %s", principal)
}

func TestEMICalculator_MonotoneInPrincipal(t *testing.T) {
	calc := service.NewEMICalculator(decimal.NewFromFloat(0.085), 60)

	prev := decimal.Zero
	for _, principal := range []int64{100000, 250000, 500000, 1000000, 5000000} {
		emi := calc.MonthlyInstallment(decimal.NewFromInt(principal))
		assert.True(t, emi.GreaterThan(prev), "EMI must grow with principal")
		prev = emi
	}
}
