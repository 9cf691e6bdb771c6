package service_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casaflow/underwriting-service/internal/domain/model"
	"github.com/casaflow/underwriting-service/internal/domain/service"
	"github.com/casaflow/underwriting-service/internal/domain/valueobject"
)

func pipelineApplication(t *testing.T, salary, loan int64, cibil *int) model.Application {
	t.Helper()
	now := time.Now().UTC()
	profile := testProfile()
	profile.MonthlySalary = decimal.NewFromInt(salary)
	profile.LoanAmount = decimal.NewFromInt(loan)
	profile.CibilScore = cibil
	return model.ReconstructApplication(
		uuid.New(), profile, nil, "", "",
		valueobject.StatusSubmitted, 1, now, now,
	)
}

func successResult(score int, level valueobject.RiskLevel, category string) model.CreditRiskResult {
	return model.CreditRiskResult{
		Success:      true,
		RiskScore:    score,
		RiskLevel:    level,
		RiskCategory: category,
	}
}

func TestPipelineRejectionReasons_FailedAssessment(t *testing.T) {
	app := pipelineApplication(t, 60000, 1200000, nil)

	reasons := service.PipelineAssessor{}.RejectionReasons(app, model.FailedCreditRisk("bureau down"))

	require.Len(t, reasons, 1)
	assert.Equal(t, "Credit Assessment", reasons[0].Factor)
	assert.True(t, valueobject.SeverityHigh.Equal(reasons[0].Severity))
	assert.Equal(t, "Unable to complete credit risk assessment", reasons[0].Description)
	assert.Equal(t, "Cannot evaluate creditworthiness", reasons[0].Impact)
}

func TestPipelineRejectionReasons_HighRisk(t *testing.T) {
	app := pipelineApplication(t, 60000, 1200000, nil)

	reasons := service.PipelineAssessor{}.RejectionReasons(app, successResult(30, valueobject.RiskLevelHigh, model.RiskCategoryPoor))

	require.Len(t, reasons, 1)
	assert.Equal(t, "Credit Risk", reasons[0].Factor)
	assert.Equal(t, "High credit risk detected (Score: 30)", reasons[0].Description)
	assert.Equal(t, "Increased default probability", reasons[0].Impact)
}

func TestPipelineRejectionReasons_LoanBeyondIncome(t *testing.T) {
	// 61 months of salary: beyond the 60x cap.
	app := pipelineApplication(t, 50000, 3050000, nil)

	reasons := service.PipelineAssessor{}.RejectionReasons(app, successResult(80, valueobject.RiskLevelLow, model.RiskCategoryGood))

	require.Len(t, reasons, 1)
	assert.Equal(t, "Loan Affordability", reasons[0].Factor)
	assert.True(t, valueobject.SeverityMedium.Equal(reasons[0].Severity))
	assert.Equal(t, "Loan amount exceeds affordable limit", reasons[0].Description)
}

func TestPipelineRejectionReasons_FailureAndUnaffordableStack(t *testing.T) {
	app := pipelineApplication(t, 50000, 3050000, nil)

	reasons := service.PipelineAssessor{}.RejectionReasons(app, model.FailedCreditRisk("timeout"))

	require.Len(t, reasons, 2)
	assert.Equal(t, "Credit Assessment", reasons[0].Factor)
	assert.Equal(t, "Loan Affordability", reasons[1].Factor)
}

func TestPipelineRejectionReasons_CleanResult(t *testing.T) {
	app := pipelineApplication(t, 60000, 1200000, nil)

	reasons := service.PipelineAssessor{}.RejectionReasons(app, successResult(85, valueobject.RiskLevelLow, model.RiskCategoryExcellent))

	assert.Empty(t, reasons)
}

func TestPipelineRecommendations(t *testing.T) {
	assessor := service.PipelineAssessor{}

	t.Run("failed assessment asks for manual review", func(t *testing.T) {
		app := pipelineApplication(t, 60000, 1200000, nil)
		recs := assessor.Recommendations(app, model.FailedCreditRisk("down"))

		require.Len(t, recs, 1)
		assert.Equal(t, "Manual Credit Review", recs[0].Action)
		assert.True(t, valueobject.PriorityHigh.Equal(recs[0].Priority))
		assert.Equal(t, "System credit assessment failed - requires manual review", recs[0].Description)
		assert.Equal(t, "Immediate", recs[0].Timeline)
	})

	t.Run("verified low cibil suggests improvement", func(t *testing.T) {
		low := 700
		app := pipelineApplication(t, 60000, 1200000, &low)
		recs := assessor.Recommendations(app, successResult(60, valueobject.RiskLevelMedium, model.RiskCategoryFair))

		require.Len(t, recs, 1)
		assert.Equal(t, "Improve Credit Score", recs[0].Action)
		assert.True(t, valueobject.PriorityMedium.Equal(recs[0].Priority))
		assert.Equal(t, "Increase credit score above 750 for better rates", recs[0].Description)
		assert.Equal(t, "3-6 months", recs[0].Timeline)
	})

	t.Run("missing cibil adds nothing", func(t *testing.T) {
		app := pipelineApplication(t, 60000, 1200000, nil)
		recs := assessor.Recommendations(app, successResult(60, valueobject.RiskLevelMedium, model.RiskCategoryFair))
		assert.Empty(t, recs)
	})

	t.Run("failure and low cibil stack", func(t *testing.T) {
		low := 650
		app := pipelineApplication(t, 60000, 1200000, &low)
		recs := assessor.Recommendations(app, model.FailedCreditRisk("down"))
		require.Len(t, recs, 2)
		assert.Equal(t, "Manual Credit Review", recs[0].Action)
		assert.Equal(t, "Improve Credit Score", recs[1].Action)
	})
}

func TestPipelineAlternativeOffers(t *testing.T) {
	assessor := service.PipelineAssessor{}
	someReason := []model.RejectionReason{{Factor: "Credit Risk", Severity: valueobject.SeverityHigh}}

	t.Run("reduced offer above 48x salary", func(t *testing.T) {
		app := pipelineApplication(t, 50000, 2450000, nil)
		offers := assessor.AlternativeOffers(app, someReason)

		require.Len(t, offers, 1)
		offer := offers[0]
		assert.Equal(t, "Reduced Loan Amount", offer.Type)
		// 36 months of salary.
		assert.True(t, decimal.NewFromInt(1800000).Equal(offer.Amount), "got %s", offer.Amount)
		assert.Equal(t, "60 months", offer.Tenure)
		assert.Equal(t, "Better aligned with income", offer.Reason)
		assert.Equal(t, "Lower EMI burden", offer.Improvement)
	})

	t.Run("no offer without rejection reasons", func(t *testing.T) {
		app := pipelineApplication(t, 50000, 2450000, nil)
		assert.Empty(t, assessor.AlternativeOffers(app, nil))
	})

	t.Run("no offer at exactly 48x salary", func(t *testing.T) {
		app := pipelineApplication(t, 50000, 2400000, nil)
		assert.Empty(t, assessor.AlternativeOffers(app, someReason))
	})
}

func TestPipelineExplanation(t *testing.T) {
	assessor := service.PipelineAssessor{}

	t.Run("clean", func(t *testing.T) {
		got := assessor.Explanation(successResult(85, valueobject.RiskLevelLow, model.RiskCategoryExcellent), nil)
		assert.Equal(t, "Application meets all criteria. Recommended for approval.", got)
	})

	t.Run("successful assessment with findings", func(t *testing.T) {
		reasons := []model.RejectionReason{
			{Description: "High credit risk detected (Score: 30)"},
			{Description: "Loan amount exceeds affordable limit"},
		}
		got := assessor.Explanation(successResult(30, valueobject.RiskLevelHigh, model.RiskCategoryPoor), reasons)

		want := "Application analysis completed. Key findings:\n\n" +
			"Credit Risk: POOR (Score: 30/100)\n" +
			"\nAreas needing improvement:\n" +
			"- High credit risk detected (Score: 30)\n" +
			"- Loan amount exceeds affordable limit\n"
		assert.Equal(t, want, got)
	})

	t.Run("failed assessment", func(t *testing.T) {
		reasons := []model.RejectionReason{{Description: "Unable to complete credit risk assessment"}}
		got := assessor.Explanation(model.FailedCreditRisk("down"), reasons)

		assert.Contains(t, got, "Credit Risk: Assessment Failed - Manual Review Required\n")
		assert.Contains(t, got, "- Unable to complete credit risk assessment\n")
	})
}

func TestPipelineHealthScore(t *testing.T) {
	assessor := service.PipelineAssessor{}

	assert.Equal(t, 72, assessor.HealthScore(successResult(72, valueobject.RiskLevelLow, model.RiskCategoryGood)))
	assert.Equal(t, 50, assessor.HealthScore(model.FailedCreditRisk("down")))
}

func TestPipelineResolveDecision(t *testing.T) {
	tests := []struct {
		name   string
		result model.CreditRiskResult
		want   valueobject.ApplicationStatus
	}{
		{
			name:   "failure goes to manual review",
			result: model.FailedCreditRisk("down"),
			want:   valueobject.StatusManualReview,
		},
		{
			name:   "low risk strong score approves",
			result: successResult(70, valueobject.RiskLevelLow, model.RiskCategoryGood),
			want:   valueobject.StatusApproved,
		},
		{
			name:   "low risk weak score rejects",
			result: successResult(69, valueobject.RiskLevelLow, model.RiskCategoryGood),
			want:   valueobject.StatusRejected,
		},
		{
			name:   "medium risk passable score reviews",
			result: successResult(50, valueobject.RiskLevelMedium, model.RiskCategoryFair),
			want:   valueobject.StatusManualReview,
		},
		{
			name:   "medium risk weak score rejects",
			result: successResult(49, valueobject.RiskLevelMedium, model.RiskCategoryFair),
			want:   valueobject.StatusRejected,
		},
		{
			name:   "high risk rejects",
			result: successResult(90, valueobject.RiskLevelHigh, model.RiskCategoryPoor),
			want:   valueobject.StatusRejected,
		},
	}

	assessor := service.PipelineAssessor{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := assessor.ResolveDecision(tt.result)
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
		})
	}
}
