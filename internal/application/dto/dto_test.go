package dto_test

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casaflow/underwriting-service/internal/application/dto"
	"github.com/casaflow/underwriting-service/internal/domain/model"
	"github.com/casaflow/underwriting-service/internal/domain/valueobject"
)

// The service renders decimals as bare JSON numbers; main sets the same flag
// at startup.
func TestMain(m *testing.M) {
	decimal.MarshalJSONWithoutQuotes = true
	os.Exit(m.Run())
}

func TestApplicantDecoding(t *testing.T) {
	t.Run("full payload", func(t *testing.T) {
		payload := `{
			"first_name": "Asha",
			"last_name": "Verma",
			"company_name": "Acme Industries",
			"monthly_salary": 90000,
			"existing_emi": 5000,
			"loan_amount": 1200000,
			"property_valuation": 2000000,
			"cibil_score": 780,
			"is_non_agricultural": true,
			"is_rented": false
		}`

		var req dto.SubmitApplicationRequest
		require.NoError(t, json.Unmarshal([]byte(payload), &req))

		profile := req.ToProfile()
		assert.Equal(t, "Asha Verma", profile.FullName())
		assert.True(t, decimal.NewFromInt(90000).Equal(profile.MonthlySalary))
		require.NotNil(t, profile.CibilScore)
		assert.Equal(t, 780, *profile.CibilScore)
		assert.True(t, profile.IsNonAgricultural)
	})

	t.Run("absent fields default to zero and nil cibil", func(t *testing.T) {
		var req dto.AnalyzeApplicationRequest
		require.NoError(t, json.Unmarshal([]byte(`{"first_name":"Ravi","last_name":"Iyer"}`), &req))

		profile := req.ToProfile()
		assert.Nil(t, profile.CibilScore)
		assert.True(t, profile.CibilUnverifiable())
		assert.True(t, profile.MonthlySalary.IsZero())
		assert.True(t, profile.LoanAmount.IsZero())
		assert.False(t, profile.IsNonAgricultural)
	})
}

func TestAnalysisResponseWireShape(t *testing.T) {
	analysis := model.NewAnalysis()
	analysis.GeneratedExplanation = "ok"
	analysis.FinancialHealthScore = 95
	analysis.Status = valueobject.StatusApproved
	analysis.RiskLevel = valueobject.RiskLevelLow
	analysis.AlternativeOffers = append(analysis.AlternativeOffers, model.AlternativeOffer{
		Type:   "Smaller Personal Loan",
		Amount: decimal.NewFromInt(250000),
		Tenure: "36 months",
	})

	raw, err := json.Marshal(dto.AnalysisResponse{Analysis: analysis})
	require.NoError(t, err)

	// The embedded analysis flattens into the envelope; decimals are numbers,
	// empty finding lists are [] rather than null.
	assert.JSONEq(t, `{
		"rejection_reasons": [],
		"recommendations": [],
		"alternative_offers": [{"type":"Smaller Personal Loan","amount":250000,"tenure":"36 months"}],
		"financial_health_score": 95,
		"generated_explanation": "ok",
		"status": "APPROVED",
		"risk_level": "LOW"
	}`, string(raw))
}

func TestProcessApplicationResponseShapes(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		id := uuid.MustParse("9b4f3f0e-8f6a-4a1d-9a1b-0c5b8a3d2e10")
		resp := dto.ProcessApplicationResponse{
			Success:       true,
			ApplicationID: id,
			Decision:      "APPROVED",
			CreditRisk:    &dto.CreditRiskSummary{Success: true, Score: 85, Level: "LOW", Category: "EXCELLENT"},
			ReportID:      "r-1",
		}

		raw, err := json.Marshal(resp)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"success": true,
			"application_id": "9b4f3f0e-8f6a-4a1d-9a1b-0c5b8a3d2e10",
			"decision": "APPROVED",
			"credit_risk": {"success":true,"score":85,"level":"LOW","category":"EXCELLENT"},
			"ai_report_id": "r-1"
		}`, string(raw))
	})

	t.Run("failure carries only the error", func(t *testing.T) {
		raw, err := json.Marshal(dto.ProcessApplicationResponse{Success: false, Error: "Application not found"})
		require.NoError(t, err)
		assert.JSONEq(t, `{"success": false, "error": "Application not found"}`, string(raw))
	})
}

func TestFromCreditRisk(t *testing.T) {
	t.Run("successful assessment carries the score", func(t *testing.T) {
		summary := dto.FromCreditRisk(model.CreditRiskResult{
			Success:      true,
			RiskScore:    72,
			RiskLevel:    valueobject.RiskLevelMedium,
			RiskCategory: model.RiskCategoryGood,
		})

		assert.True(t, summary.Success)
		assert.Equal(t, 72, summary.Score)
		assert.Equal(t, "MEDIUM", summary.Level)
		assert.Empty(t, summary.Error)
	})

	t.Run("failed assessment carries the detail and drops score fields", func(t *testing.T) {
		summary := dto.FromCreditRisk(model.FailedCreditRisk("risk service unavailable"))

		raw, err := json.Marshal(summary)
		require.NoError(t, err)
		assert.JSONEq(t, `{"success": false, "error": "risk service unavailable"}`, string(raw))
	})
}

func TestFromApplication(t *testing.T) {
	score := 72
	cibil := 740
	now := time.Now().UTC()
	app := model.ReconstructApplication(
		uuid.New(),
		model.ApplicantProfile{
			FirstName:         "Meera",
			LastName:          "Nair",
			CompanyName:       "Coastal Exports",
			MonthlySalary:     decimal.NewFromInt(65000),
			LoanAmount:        decimal.NewFromInt(800000),
			CibilScore:        &cibil,
			IsNonAgricultural: true,
		},
		&score, model.RiskCategoryGood, model.FraudRiskLow,
		valueobject.StatusUnderReview, 2, now, now,
	)

	resp := dto.FromApplication(app)

	assert.Equal(t, app.ID(), resp.ID)
	assert.Equal(t, "Meera", resp.FirstName)
	assert.Equal(t, "UNDER_REVIEW", resp.Status)
	require.NotNil(t, resp.CreditRiskScore)
	assert.Equal(t, 72, *resp.CreditRiskScore)
	assert.Equal(t, "GOOD", resp.BankingBehavior)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"monthly_salary":65000`)
	assert.Contains(t, string(raw), `"cibil_score":740`)
}

func TestFromApplicationOmitsUnsetRiskFields(t *testing.T) {
	now := time.Now().UTC()
	app := model.ReconstructApplication(
		uuid.New(),
		model.ApplicantProfile{FirstName: "Dev", LastName: "Sharma", MonthlySalary: decimal.NewFromInt(30000)},
		nil, "", "",
		valueobject.StatusSubmitted, 1, now, now,
	)

	raw, err := json.Marshal(dto.FromApplication(app))
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "credit_risk_score")
	assert.NotContains(t, string(raw), "banking_behavior")
	assert.NotContains(t, string(raw), "cibil_score")
}
