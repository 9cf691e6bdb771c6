package service

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/casaflow/underwriting-service/internal/domain/model"
)

const approvalExplanation = "✅ Your application meets all our criteria! " +
	"Based on our analysis, your financial profile shows strong repayment capacity " +
	"and excellent creditworthiness. Congratulations!"

// ExplanationBuilder renders the applicant-facing narrative for an analysis.
// It must run after offer generation so the narrative lists every offer.
type ExplanationBuilder struct{}

// Build returns the narrative. Rejection reasons render in collection order;
// the recommendation and offer sections appear only when non-empty.
func (ExplanationBuilder) Build(analysis model.Analysis) string {
	if !analysis.HasRejectionReasons() {
		return approvalExplanation
	}

	var b strings.Builder
	b.WriteString("After careful review of your application, here's our assessment:\n\n")

	for _, reason := range analysis.RejectionReasons {
		fmt.Fprintf(&b, "🔴 %s (Severity: %s)\n", reason.Description, reason.Severity)
	}

	if len(analysis.Recommendations) > 0 {
		b.WriteString("\n💡 We recommend the following actions:\n")
		for _, rec := range analysis.Recommendations {
			fmt.Fprintf(&b, "• %s (Priority: %s)\n", rec.Description, rec.Priority)
		}
	}

	if len(analysis.AlternativeOffers) > 0 {
		b.WriteString("\n🎯 Alternative options available:\n")
		for _, offer := range analysis.AlternativeOffers {
			fmt.Fprintf(&b, "• %s: ₹%s\n", offer.Type, groupedRupees(offer.Amount))
		}
	}
	return b.String()
}

// ---------------------------------------------------------------------------
// amount formatting
// ---------------------------------------------------------------------------

// wholeRupees renders an amount rounded half-up to whole rupees, without
// grouping: 4103.36 -> "4103".
func wholeRupees(amount decimal.Decimal) string {
	return amount.Round(0).StringFixed(0)
}

// groupedRupees renders an amount rounded half-up to whole rupees with
// comma-grouped thousands: 2000000 -> "2,000,000".
func groupedRupees(amount decimal.Decimal) string {
	s := wholeRupees(amount)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
		if len(s) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(s); i += 3 {
		b.WriteString(s[i : i+3])
		if i+3 < len(s) {
			b.WriteByte(',')
		}
	}
	return b.String()
}

// ratioPercent renders a fraction as a one-decimal percentage: 0.9 -> "90.0%".
func ratioPercent(ratio decimal.Decimal) string {
	return ratio.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
}
