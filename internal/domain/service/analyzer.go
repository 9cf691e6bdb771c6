package service

import (
	"time"

	"github.com/casaflow/underwriting-service/internal/domain/model"
)

// Analyzer is the self-contained evaluation path: it runs every rule check
// over a profile, generates profile-driven offers, and finalizes the
// explanation, health score and status.
type Analyzer struct {
	engine      *RuleEngine
	profileGen  ProfileOfferGenerator
	explanation ExplanationBuilder
	health      HealthScoreCalculator
	status      StatusResolver
}

// NewAnalyzer creates an analyzer with the given limits.
func NewAnalyzer(thresholds Thresholds) *Analyzer {
	return &Analyzer{engine: NewRuleEngine(thresholds)}
}

// Analyze evaluates a profile. Order matters: checks run first in fixed
// order, then profile offers, then the explanation (so it reflects every
// offer already collected), then the score, then the status cascade. The
// result is deterministic for identical input.
func (a *Analyzer) Analyze(profile model.ApplicantProfile) model.Analysis {
	analysis := model.NewAnalysis()
	for _, check := range a.engine.Checks() {
		analysis = analysis.Merge(check(profile))
	}
	analysis = analysis.Merge(model.Findings{Offers: a.profileGen.Generate(profile)})

	analysis.GeneratedExplanation = a.explanation.Build(analysis)
	analysis.FinancialHealthScore = a.health.Score(profile)
	analysis.Status, analysis.RiskLevel = a.status.Resolve(analysis)
	return analysis
}

// DetailedReport evaluates a profile and wraps the analysis with its summary
// projection. asOf stamps the application date; the analysis itself carries
// no timestamps.
func (a *Analyzer) DetailedReport(profile model.ApplicantProfile, asOf time.Time) model.DetailedAssessment {
	analysis := a.Analyze(profile)

	concerns := make([]string, 0, len(analysis.RejectionReasons))
	for _, reason := range analysis.RejectionReasons {
		concerns = append(concerns, reason.Description)
	}
	opportunities := make([]string, 0, len(analysis.AlternativeOffers))
	for _, offer := range analysis.AlternativeOffers {
		opportunities = append(opportunities, offer.Type)
	}

	return model.DetailedAssessment{
		Summary: model.ApplicationSummary{
			ApplicantName:   profile.FullName(),
			AppliedAmount:   profile.LoanAmount,
			PropertyValue:   profile.PropertyValuation,
			ApplicationDate: asOf.Format("2006-01-02"),
		},
		RiskAssessment: model.RiskSnapshot{
			FinancialHealthScore: analysis.FinancialHealthScore,
			RiskLevel:            analysis.RiskLevel,
			Status:               analysis.Status,
		},
		KeyFindings: model.KeyFindings{
			Concerns:      concerns,
			Opportunities: opportunities,
		},
		DetailedAnalysis: analysis,
	}
}
