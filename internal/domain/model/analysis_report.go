package model

import (
	"time"

	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// AnalysisReport aggregate root
// ---------------------------------------------------------------------------

// AnalysisReport is the persisted record of one underwriting analysis for an
// application. Like Application it is immutable; updates return a new copy.
type AnalysisReport struct {
	id                   uuid.UUID
	applicationID        uuid.UUID
	rejectionReasons     []RejectionReason
	recommendations      []Recommendation
	alternativeOffers    []AlternativeOffer
	financialHealthScore int
	generatedExplanation string
	version              int
	createdAt            time.Time
	updatedAt            time.Time
}

// NewAnalysisReport creates an empty report for an application.
func NewAnalysisReport(applicationID uuid.UUID, now time.Time) AnalysisReport {
	return AnalysisReport{
		id:            uuid.New(),
		applicationID: applicationID,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
	}
}

// ReconstructAnalysisReport rebuilds a report from persistence.
func ReconstructAnalysisReport(
	id, applicationID uuid.UUID,
	rejectionReasons []RejectionReason,
	recommendations []Recommendation,
	alternativeOffers []AlternativeOffer,
	financialHealthScore int,
	generatedExplanation string,
	version int,
	createdAt, updatedAt time.Time,
) AnalysisReport {
	return AnalysisReport{
		id:                   id,
		applicationID:        applicationID,
		rejectionReasons:     rejectionReasons,
		recommendations:      recommendations,
		alternativeOffers:    alternativeOffers,
		financialHealthScore: financialHealthScore,
		generatedExplanation: generatedExplanation,
		version:              version,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
	}
}

// WithFindings returns a copy carrying the given findings, replacing any
// previous ones.
func (r AnalysisReport) WithFindings(
	reasons []RejectionReason,
	recommendations []Recommendation,
	offers []AlternativeOffer,
	now time.Time,
) AnalysisReport {
	next := r
	next.rejectionReasons = appendReasons(nil, reasons)
	next.recommendations = appendRecommendations(nil, recommendations)
	next.alternativeOffers = appendOffers(nil, offers)
	next.updatedAt = now
	return next
}

// WithAssessment returns a copy carrying the final score and explanation.
func (r AnalysisReport) WithAssessment(score int, explanation string, now time.Time) AnalysisReport {
	next := r
	next.financialHealthScore = score
	next.generatedExplanation = explanation
	next.updatedAt = now
	return next
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (r AnalysisReport) ID() uuid.UUID                         { return r.id }
func (r AnalysisReport) ApplicationID() uuid.UUID              { return r.applicationID }
func (r AnalysisReport) RejectionReasons() []RejectionReason   { return r.rejectionReasons }
func (r AnalysisReport) Recommendations() []Recommendation     { return r.recommendations }
func (r AnalysisReport) AlternativeOffers() []AlternativeOffer { return r.alternativeOffers }
func (r AnalysisReport) FinancialHealthScore() int             { return r.financialHealthScore }
func (r AnalysisReport) GeneratedExplanation() string          { return r.generatedExplanation }
func (r AnalysisReport) Version() int                          { return r.version }
func (r AnalysisReport) CreatedAt() time.Time                  { return r.createdAt }
func (r AnalysisReport) UpdatedAt() time.Time                  { return r.updatedAt }
