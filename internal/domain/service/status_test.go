package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/casaflow/underwriting-service/internal/domain/model"
	"github.com/casaflow/underwriting-service/internal/domain/service"
	"github.com/casaflow/underwriting-service/internal/domain/valueobject"
)

func analysisWithSeverities(severities ...valueobject.Severity) model.Analysis {
	analysis := model.NewAnalysis()
	for _, sev := range severities {
		analysis = analysis.Merge(model.Findings{
			Reasons: []model.RejectionReason{{Factor: "x", Severity: sev}},
		})
	}
	return analysis
}

func TestStatusResolver_Cascade(t *testing.T) {
	tests := []struct {
		name       string
		severities []valueobject.Severity
		status     valueobject.ApplicationStatus
		risk       valueobject.RiskLevel
	}{
		{
			name:   "no reasons approves at low risk",
			status: valueobject.StatusApproved,
			risk:   valueobject.RiskLevelLow,
		},
		{
			name:       "low severity routes to review",
			severities: []valueobject.Severity{valueobject.SeverityLow},
			status:     valueobject.StatusUnderReview,
			risk:       valueobject.RiskLevelMedium,
		},
		{
			name:       "medium severity routes to review",
			severities: []valueobject.Severity{valueobject.SeverityMedium, valueobject.SeverityMedium},
			status:     valueobject.StatusUnderReview,
			risk:       valueobject.RiskLevelMedium,
		},
		{
			name:       "high severity rejects",
			severities: []valueobject.Severity{valueobject.SeverityMedium, valueobject.SeverityHigh},
			status:     valueobject.StatusRejected,
			risk:       valueobject.RiskLevelHigh,
		},
		{
			name:       "critical severity rejects at very high risk",
			severities: []valueobject.Severity{valueobject.SeverityHigh, valueobject.SeverityCritical},
			status:     valueobject.StatusRejected,
			risk:       valueobject.RiskLevelVeryHigh,
		},
	}

	resolver := service.StatusResolver{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, risk := resolver.Resolve(analysisWithSeverities(tt.severities...))
			assert.True(t, tt.status.Equal(status), "want %s got %s", tt.status, status)
			assert.True(t, tt.risk.Equal(risk), "want %s got %s", tt.risk, risk)
		})
	}
}

func TestStatusResolver_CriticalDominatesRegardlessOfOrder(t *testing.T) {
	resolver := service.StatusResolver{}
	orders := [][]valueobject.Severity{
		{valueobject.SeverityCritical, valueobject.SeverityLow, valueobject.SeverityMedium},
		{valueobject.SeverityLow, valueobject.SeverityCritical, valueobject.SeverityMedium},
		{valueobject.SeverityMedium, valueobject.SeverityLow, valueobject.SeverityCritical},
	}

	for _, severities := range orders {
		status, risk := resolver.Resolve(analysisWithSeverities(severities...))
		assert.True(t, valueobject.StatusRejected.Equal(status))
		assert.True(t, valueobject.RiskLevelVeryHigh.Equal(risk))
	}
}
