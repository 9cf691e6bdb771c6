package service

import (
	"github.com/casaflow/underwriting-service/internal/domain/model"
	"github.com/casaflow/underwriting-service/internal/domain/valueobject"
)

// StatusResolver maps accumulated findings onto a final status and risk
// level. It must run after every check has contributed its findings.
type StatusResolver struct{}

// Resolve applies the severity cascade: any Critical reason rejects at
// VERY_HIGH risk, any High reason rejects at HIGH risk, any remaining reason
// routes to review at MEDIUM risk, and a clean slate approves at LOW risk.
func (StatusResolver) Resolve(analysis model.Analysis) (valueobject.ApplicationStatus, valueobject.RiskLevel) {
	max := analysis.MaxSeverity()
	switch {
	case max.Equal(valueobject.SeverityCritical):
		return valueobject.StatusRejected, valueobject.RiskLevelVeryHigh
	case max.Equal(valueobject.SeverityHigh):
		return valueobject.StatusRejected, valueobject.RiskLevelHigh
	case analysis.HasRejectionReasons():
		return valueobject.StatusUnderReview, valueobject.RiskLevelMedium
	default:
		return valueobject.StatusApproved, valueobject.RiskLevelLow
	}
}
