package model

import (
	"github.com/shopspring/decimal"

	"github.com/casaflow/underwriting-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Analysis accumulator
// ---------------------------------------------------------------------------

// Analysis collects the outcome of one rule engine evaluation: findings in
// evaluation order, then the finalized score, explanation, status and risk
// level. It is not persisted by the engine itself.
type Analysis struct {
	RejectionReasons     []RejectionReason             `json:"rejection_reasons"`
	Recommendations      []Recommendation              `json:"recommendations"`
	AlternativeOffers    []AlternativeOffer            `json:"alternative_offers"`
	FinancialHealthScore int                           `json:"financial_health_score"`
	GeneratedExplanation string                        `json:"generated_explanation"`
	Status               valueobject.ApplicationStatus `json:"status"`
	RiskLevel            valueobject.RiskLevel         `json:"risk_level"`
}

// NewAnalysis returns an empty accumulator. The finding lists are non-nil so
// an all-clear result serializes with empty arrays rather than nulls.
func NewAnalysis() Analysis {
	return Analysis{
		RejectionReasons:  []RejectionReason{},
		Recommendations:   []Recommendation{},
		AlternativeOffers: []AlternativeOffer{},
	}
}

// Merge returns a copy with one check's findings appended, preserving
// evaluation order.
func (a Analysis) Merge(f Findings) Analysis {
	next := a
	next.RejectionReasons = appendReasons(a.RejectionReasons, f.Reasons)
	next.Recommendations = appendRecommendations(a.Recommendations, f.Recommendations)
	next.AlternativeOffers = appendOffers(a.AlternativeOffers, f.Offers)
	return next
}

// HasRejectionReasons reports whether any check raised a concern.
func (a Analysis) HasRejectionReasons() bool {
	return len(a.RejectionReasons) > 0
}

// MaxSeverity returns the highest severity across all rejection reasons, or
// the zero Severity when there are none.
func (a Analysis) MaxSeverity() valueobject.Severity {
	var max valueobject.Severity
	for _, reason := range a.RejectionReasons {
		if reason.Severity.Rank() > max.Rank() {
			max = reason.Severity
		}
	}
	return max
}

func appendReasons(dst, src []RejectionReason) []RejectionReason {
	out := make([]RejectionReason, 0, len(dst)+len(src))
	out = append(out, dst...)
	return append(out, src...)
}

func appendRecommendations(dst, src []Recommendation) []Recommendation {
	out := make([]Recommendation, 0, len(dst)+len(src))
	out = append(out, dst...)
	return append(out, src...)
}

func appendOffers(dst, src []AlternativeOffer) []AlternativeOffer {
	out := make([]AlternativeOffer, 0, len(dst)+len(src))
	out = append(out, dst...)
	return append(out, src...)
}

// ---------------------------------------------------------------------------
// Reporting projection
// ---------------------------------------------------------------------------

// ApplicationSummary identifies the application a detailed assessment covers.
type ApplicationSummary struct {
	ApplicantName   string          `json:"applicant_name"`
	AppliedAmount   decimal.Decimal `json:"applied_amount"`
	PropertyValue   decimal.Decimal `json:"property_value"`
	ApplicationDate string          `json:"application_date"`
}

// RiskSnapshot carries the headline risk numbers of an assessment.
type RiskSnapshot struct {
	FinancialHealthScore int                           `json:"financial_health_score"`
	RiskLevel            valueobject.RiskLevel         `json:"risk_level"`
	Status               valueobject.ApplicationStatus `json:"status"`
}

// KeyFindings lists concern descriptions and opportunity types extracted from
// an analysis.
type KeyFindings struct {
	Concerns      []string `json:"concerns"`
	Opportunities []string `json:"opportunities"`
}

// DetailedAssessment is the reporting projection wrapped around a full
// analysis. It adds no new findings, only a summary view.
type DetailedAssessment struct {
	Summary          ApplicationSummary `json:"application_summary"`
	RiskAssessment   RiskSnapshot       `json:"risk_assessment"`
	KeyFindings      KeyFindings        `json:"key_findings"`
	DetailedAnalysis Analysis           `json:"detailed_analysis"`
}
