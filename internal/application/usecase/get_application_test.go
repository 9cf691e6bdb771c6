package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casaflow/underwriting-service/internal/application/dto"
	"github.com/casaflow/underwriting-service/internal/application/usecase"
	"github.com/casaflow/underwriting-service/internal/domain/model"
	"github.com/casaflow/underwriting-service/internal/domain/port"
	"github.com/casaflow/underwriting-service/internal/domain/valueobject"
)

func TestGetApplication_Execute(t *testing.T) {
	t.Run("returns the stored application", func(t *testing.T) {
		id := uuid.New()
		score := 85
		now := time.Now().UTC()
		stored := model.ReconstructApplication(
			id, applicantPayload().ToProfile(), &score,
			model.RiskCategoryExcellent, model.FraudRiskLow,
			valueobject.StatusApproved, 4, now.Add(-time.Hour), now,
		)
		appRepo := &mockApplicationRepository{
			findByIDFunc: func(_ context.Context, got uuid.UUID) (model.Application, error) {
				assert.Equal(t, id, got)
				return stored, nil
			},
		}

		uc := usecase.NewGetApplicationUseCase(appRepo)
		resp, err := uc.Execute(context.Background(), dto.GetApplicationRequest{ApplicationID: id})

		require.NoError(t, err)
		assert.Equal(t, id, resp.ID)
		assert.Equal(t, "APPROVED", resp.Status)
		assert.Equal(t, "Acme Industries", resp.CompanyName)
		require.NotNil(t, resp.CreditRiskScore)
		assert.Equal(t, 85, *resp.CreditRiskScore)
		assert.Equal(t, "EXCELLENT", resp.BankingBehavior)
		assert.Equal(t, "LOW", resp.FraudRisk)
		assert.Equal(t, now, resp.UpdatedAt)
	})

	t.Run("propagates not found", func(t *testing.T) {
		uc := usecase.NewGetApplicationUseCase(&mockApplicationRepository{})
		_, err := uc.Execute(context.Background(), dto.GetApplicationRequest{ApplicationID: uuid.New()})

		require.Error(t, err)
		assert.ErrorIs(t, err, port.ErrApplicationNotFound)
	})
}

func TestGetAnalysisReport_Execute(t *testing.T) {
	t.Run("returns the stored report", func(t *testing.T) {
		appID := uuid.New()
		reportID := uuid.New()
		now := time.Now().UTC()
		stored := model.ReconstructAnalysisReport(
			reportID, appID,
			[]model.RejectionReason{{
				Factor:      "Credit Risk",
				Severity:    valueobject.SeverityHigh,
				Description: "High credit risk detected (Score: 30)",
				Impact:      "Increased default probability",
			}},
			[]model.Recommendation{{
				Action:   "Improve Credit Score",
				Priority: valueobject.PriorityMedium,
			}},
			nil, 30, "Application analysis completed.", 2, now, now,
		)
		reportRepo := &mockReportRepository{
			findByApplicationIDFunc: func(_ context.Context, got uuid.UUID) (model.AnalysisReport, error) {
				assert.Equal(t, appID, got)
				return stored, nil
			},
		}

		uc := usecase.NewGetAnalysisReportUseCase(reportRepo)
		resp, err := uc.Execute(context.Background(), dto.GetAnalysisReportRequest{ApplicationID: appID})

		require.NoError(t, err)
		assert.Equal(t, reportID, resp.ID)
		assert.Equal(t, appID, resp.ApplicationID)
		require.Len(t, resp.RejectionReasons, 1)
		assert.Equal(t, "Credit Risk", resp.RejectionReasons[0].Factor)
		require.Len(t, resp.Recommendations, 1)
		assert.Equal(t, 30, resp.FinancialHealthScore)
		assert.Equal(t, "Application analysis completed.", resp.GeneratedExplanation)
	})

	t.Run("propagates not found", func(t *testing.T) {
		uc := usecase.NewGetAnalysisReportUseCase(&mockReportRepository{})
		_, err := uc.Execute(context.Background(), dto.GetAnalysisReportRequest{ApplicationID: uuid.New()})

		require.Error(t, err)
		assert.ErrorIs(t, err, port.ErrReportNotFound)
	})
}
